package symbolgen_test

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"

	// Register all format writers.
	_ "github.com/yeetcard/symbolgen/aztec"
	_ "github.com/yeetcard/symbolgen/oned"
	_ "github.com/yeetcard/symbolgen/pdf417"
	_ "github.com/yeetcard/symbolgen/qrcode"
)

func isInk(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 0x80
}

// requireInkAndBackground checks that img is neither blank nor solid ink.
func requireInkAndBackground(t *testing.T, img image.Image) {
	t.Helper()
	var inked, blank int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isInk(img, x, y) {
				inked++
			} else {
				blank++
			}
		}
	}
	require.Positive(t, inked, "no ink pixels")
	require.Positive(t, blank, "no background pixels")
}

// requireCrispColumns checks that every column of a linear symbol is a
// single colour from top to bottom.
func requireCrispColumns(t *testing.T, img image.Image) {
	t.Helper()
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		top := isInk(img, x, b.Min.Y)
		for y := b.Min.Y + 1; y < b.Max.Y; y++ {
			require.Equal(t, top, isInk(img, x, y), "column %d row %d", x, y)
		}
	}
}

func TestGenerateLinearSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		data   string
		format symbolgen.Symbology
		width  int
		height int
	}{
		{"ean13", "5901234123457", symbolgen.SymbologyEAN13, 300, 212},
		{"code39", "abc", symbolgen.SymbologyCode39, 300, 242},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			img, err := symbolgen.Generate(tc.data, tc.format, 300, 300)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, tc.width, tc.height), img.Bounds())
			requireCrispColumns(t, img)
			requireInkAndBackground(t, img)
			assert.False(t, isInk(img, 0, 0), "left quiet zone")
			assert.False(t, isInk(img, tc.width-1, 0), "right quiet zone")
		})
	}
}

func TestGeneratePlatformSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		data   string
		format symbolgen.Symbology
	}{
		{"Hello World", symbolgen.SymbologyQR},
		{"12345", symbolgen.SymbologyCode128},
		{"Test Data", symbolgen.SymbologyPDF417},
		{"Aztec Test", symbolgen.SymbologyAztec},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.format.String(), func(t *testing.T) {
			t.Parallel()
			img, err := symbolgen.Generate(tc.data, tc.format, 300, 300)
			require.NoError(t, err)
			b := img.Bounds()
			assert.Positive(t, b.Dx())
			assert.Positive(t, b.Dy())
			assert.LessOrEqual(t, b.Dx(), 300)
			assert.LessOrEqual(t, b.Dy(), 300)
			assert.True(t, b.Dx() == 300 || b.Dy() == 300, "one edge fills the target: %v", b)
			requireInkAndBackground(t, img)
			assert.False(t, isInk(img, 0, 0), "top-left quiet zone")
			assert.False(t, isInk(img, b.Dx()-1, b.Dy()-1), "bottom-right quiet zone")
		})
	}
}

func TestGenerateQRIsSquare(t *testing.T) {
	t.Parallel()
	img, err := symbolgen.Generate("Test", symbolgen.SymbologyQR, 500, 500)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 500, 500), img.Bounds())
	requireInkAndBackground(t, img)
}

func TestGenerateDefaultSize(t *testing.T) {
	t.Parallel()
	img, err := symbolgen.Generate("Test", symbolgen.SymbologyQR, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, symbolgen.DefaultSize, symbolgen.DefaultSize), img.Bounds())
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	t.Parallel()
	for _, format := range []symbolgen.Symbology{
		symbolgen.SymbologyEAN8,
		symbolgen.SymbologyUPCA,
		symbolgen.SymbologyUPCE,
		symbolgen.SymbologyDataMatrix,
	} {
		img, err := symbolgen.Generate("12345678", format, 300, 300)
		assert.ErrorIs(t, err, symbolgen.ErrUnsupportedFormat, format.String())
		assert.Nil(t, img)
	}
}

func TestGenerateInvalidContents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		data   string
		format symbolgen.Symbology
	}{
		{"hello!", symbolgen.SymbologyCode39},
		{"12345", symbolgen.SymbologyEAN13},
		{"abcdefghijklm", symbolgen.SymbologyEAN13},
		{"", symbolgen.SymbologyQR},
		{"", symbolgen.SymbologyCode128},
	}
	for _, tc := range tests {
		img, err := symbolgen.Generate(tc.data, tc.format, 300, 300)
		assert.ErrorIs(t, err, symbolgen.ErrInvalidContents, "%s %q", tc.format, tc.data)
		assert.Nil(t, img)
	}
}

func TestValidatorAndEncoderDisagreeOnCode39(t *testing.T) {
	t.Parallel()
	// The shape check passes but the encoder still rejects the payload.
	require.True(t, symbolgen.ValidateBarcodeData("hello!", symbolgen.SymbologyCode39))
	_, err := symbolgen.Generate("hello!", symbolgen.SymbologyCode39, 300, 300)
	assert.ErrorIs(t, err, symbolgen.ErrInvalidContents)
}

func TestGeneratorOptions(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := symbolgen.NewGenerator(symbolgen.WithLogger(logger), symbolgen.WithBarHeight(10))

	// 99 x 10 native: width limits the scale to 2.
	img, err := g.Generate("ABC", symbolgen.SymbologyCode39, 198, 1000)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 198, 20), img.Bounds())

	_, err = g.Generate("secret!", symbolgen.SymbologyCode39, 100, 100)
	require.Error(t, err)
	assert.Contains(t, logs.String(), "barcode generation failed")
	assert.Contains(t, logs.String(), "format=Code39")
	assert.NotContains(t, logs.String(), "secret!", "payloads are never logged")

	// Nil loggers and non-positive heights are ignored.
	g = symbolgen.NewGenerator(symbolgen.WithLogger(nil), symbolgen.WithBarHeight(0))
	img, err = g.Generate("ABC", symbolgen.SymbologyCode39, 99, 1000)
	require.NoError(t, err)
	assert.Equal(t, symbolgen.DefaultBarHeight, img.Bounds().Dy())
}

func TestScaleToFit(t *testing.T) {
	t.Parallel()
	src := bitutil.NewBitMatrixWithSize(3, 2)
	src.Set(1, 0)
	src.Set(1, 1)

	t.Run("uniform integer scale", func(t *testing.T) {
		t.Parallel()
		dst := symbolgen.ScaleToFit(src, 9, 100)
		require.Equal(t, image.Rect(0, 0, 9, 6), dst.Bounds())
		for y := 0; y < 6; y++ {
			for x := 0; x < 9; x++ {
				assert.Equal(t, x >= 3 && x < 6, isInk(dst, x, y), "(%d,%d)", x, y)
			}
		}
	})

	t.Run("height limited", func(t *testing.T) {
		t.Parallel()
		dst := symbolgen.ScaleToFit(src, 100, 4)
		require.Equal(t, image.Rect(0, 0, 6, 4), dst.Bounds())
		assert.Equal(t, []uint8{0xff, 0xff, 0, 0, 0xff, 0xff}, dst.Pix[:6])
	})

	t.Run("any image source", func(t *testing.T) {
		t.Parallel()
		// Embedding hides every method but image.Image's.
		plain := struct{ image.Image }{src}
		dst := symbolgen.ScaleToFit(plain, 6, 4)
		require.Equal(t, image.Rect(0, 0, 6, 4), dst.Bounds())
		for y := 0; y < 4; y++ {
			for x := 0; x < 6; x++ {
				assert.Equal(t, x >= 2 && x < 4, isInk(dst, x, y), "(%d,%d)", x, y)
			}
		}
	})

	t.Run("offset source bounds", func(t *testing.T) {
		t.Parallel()
		gray := image.NewGray(image.Rect(10, 10, 12, 11))
		gray.Pix[0], gray.Pix[1] = 0x00, 0xff
		dst := symbolgen.ScaleToFit(gray, 4, 2)
		require.Equal(t, image.Rect(0, 0, 4, 2), dst.Bounds())
		assert.Equal(t, []uint8{0, 0, 0xff, 0xff}, dst.Pix[:4])
	})

	t.Run("downscale never collapses to zero", func(t *testing.T) {
		t.Parallel()
		dst := symbolgen.ScaleToFit(src, 1, 1)
		assert.Equal(t, 1, dst.Bounds().Dx())
		assert.Equal(t, 1, dst.Bounds().Dy())
	})
}
