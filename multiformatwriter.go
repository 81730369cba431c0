package symbolgen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// DefaultSize is the output edge length used when a requested dimension is not positive.
const DefaultSize = 300

// writerFactory is a function that creates a Writer.
type writerFactory func() Writer

var writerFactories = map[Symbology]writerFactory{}

// RegisterWriter registers a writer factory for the given symbology.
// It is meant to be called from package init functions.
func RegisterWriter(format Symbology, factory func() Writer) {
	writerFactories[format] = factory
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report generation failures.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithBarHeight sets the native pixel height of linear symbols before scaling.
func WithBarHeight(h int) Option {
	return func(g *Generator) {
		if h > 0 {
			g.opts.BarHeight = h
		}
	}
}

// Generator selects the registered Writer for a symbology and scales its
// output to the requested size.
type Generator struct {
	logger *slog.Logger
	opts   EncodeOptions
}

// NewGenerator creates a generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		opts:   EncodeOptions{BarHeight: DefaultBarHeight},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders data as format and scales it to fit width x height.
//
// ErrUnsupportedFormat is returned for symbologies that cannot be generated
// or have no writer registered. ErrInvalidContents is returned when the
// writer rejects data; callers should show an empty state in that case.
func (g *Generator) Generate(data string, format Symbology, width, height int) (image.Image, error) {
	matrix, err := g.encode(data, format)
	if err != nil {
		g.logger.LogAttrs(context.Background(), slog.LevelDebug, "barcode generation failed",
			slog.String("format", format.String()),
			slog.Int("length", len(data)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}
	return ScaleToFit(matrix, width, height), nil
}

func (g *Generator) encode(data string, format Symbology) (image.Image, error) {
	if !format.CanGenerate() {
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
	factory, ok := writerFactories[format]
	if !ok {
		return nil, fmt.Errorf("no writer registered for format %s: %w", format, ErrUnsupportedFormat)
	}
	opts := g.opts
	matrix, err := factory().Encode(data, format, &opts)
	if err != nil {
		if errors.Is(err, ErrInvalidContents) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidContents, err)
	}
	return matrix, nil
}

// ScaleToFit scales img by the uniform factor min(width/w, height/h) using
// nearest-neighbour sampling. The result keeps the source aspect ratio and
// is anchored at the origin, so it may be smaller than width x height.
func ScaleToFit(img image.Image, width, height int) *image.Gray {
	sb := img.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	scale := math.Min(float64(width)/float64(sw), float64(height)/float64(sh))
	dw := max(int(math.Round(float64(sw)*scale)), 1)
	dh := max(int(math.Round(float64(sh)*scale)), 1)

	// The scaler only samples sources that implement image.RGBA64Image
	// when the destination does, so other images are copied to gray first.
	src := img
	if _, ok := img.(image.RGBA64Image); !ok {
		gray := image.NewGray(sb)
		draw.Copy(gray, sb.Min, img, sb, draw.Src, nil)
		src = gray
	}

	dst := image.NewGray(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

var defaultGenerator = NewGenerator()

// Generate is a top-level convenience function that renders data with a
// default Generator.
func Generate(data string, format Symbology, width, height int) (image.Image, error) {
	return defaultGenerator.Generate(data, format, width, height)
}
