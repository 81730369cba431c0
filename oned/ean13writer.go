package oned

import (
	"fmt"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

const (
	ean13CodeWidth      = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95
	ean13LeftQuietZone  = 11
	ean13RightQuietZone = 7

	// EAN13SymbolWidth is the module count of every encoded EAN-13 symbol,
	// quiet zones included.
	EAN13SymbolWidth = ean13LeftQuietZone + ean13CodeWidth + ean13RightQuietZone // = 113
)

var (
	upceanStartEndPattern = []int{1, 1, 1}
	upceanMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// The digit tables are 7-bit module patterns, most significant bit first,
// with a one bit meaning bar.
var (
	ean13LCodes = [10]uint8{
		0b0001101, 0b0011001, 0b0010011, 0b0111101, 0b0100011,
		0b0110001, 0b0101111, 0b0111011, 0b0110111, 0b0001011,
	}
	ean13GCodes = [10]uint8{
		0b0100111, 0b0110011, 0b0011011, 0b0100001, 0b0011101,
		0b0111001, 0b0000101, 0b0010001, 0b0001001, 0b0010111,
	}
	ean13RCodes = [10]uint8{
		0b1110010, 0b1100110, 0b1101100, 0b1000010, 0b1011100,
		0b1001110, 0b1010000, 0b1000100, 0b1001000, 0b1110100,
	}
)

// ean13FirstDigitEncodings selects L (0) or G (1) for each left-hand digit.
// Bit 5 is the first left-hand digit.
var ean13FirstDigitEncodings = [10]uint8{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// EAN13Writer encodes EAN-13 barcodes.
type EAN13Writer struct{}

// NewEAN13Writer creates a new EAN-13 writer.
func NewEAN13Writer() *EAN13Writer {
	return &EAN13Writer{}
}

// Encode encodes contents into an EAN-13 bitmap, one pixel per module.
func (w *EAN13Writer) Encode(contents string, format symbolgen.Symbology, opts *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != symbolgen.SymbologyEAN13 {
		return nil, fmt.Errorf("can only encode EAN-13, but got %s", format)
	}
	code, ok := EncodeEAN13(contents)
	if !ok {
		return nil, fmt.Errorf("%w: EAN-13 contents must be exactly 13 digits, got %d bytes", symbolgen.ErrInvalidContents, len(contents))
	}
	return Rasterize(code, opts.BarHeightOrDefault()), nil
}

// GenerateEAN13 encodes data and rasterizes it at DefaultBarHeight.
// It reports false unless data is exactly 13 decimal digits.
func GenerateEAN13(data string) (*bitutil.BitMatrix, bool) {
	code, ok := EncodeEAN13(data)
	if !ok {
		return nil, false
	}
	return Rasterize(code, DefaultBarHeight), true
}

// EncodeEAN13 returns the 113-module sequence for a 13-digit payload. The
// first digit selects the L/G parity of the left half; the last digit is
// encoded as given and is not checked against the others (see
// ValidEAN13CheckDigit).
func EncodeEAN13(payload string) ([]bool, bool) {
	if len(payload) != 13 || CheckNumeric(payload) != nil {
		return nil, false
	}

	parities := ean13FirstDigitEncodings[payload[0]-'0']
	code := make([]bool, ean13CodeWidth)
	pos := 0

	pos += AppendPattern(code, pos, upceanStartEndPattern, true)

	for i := 1; i <= 6; i++ {
		digit := payload[i] - '0'
		pattern := ean13LCodes[digit]
		if (parities>>uint(6-i))&1 == 1 {
			pattern = ean13GCodes[digit]
		}
		pos += appendBits(code, pos, pattern, 7)
	}

	pos += AppendPattern(code, pos, upceanMiddlePattern, false)

	for i := 7; i <= 12; i++ {
		pos += appendBits(code, pos, ean13RCodes[payload[i]-'0'], 7)
	}

	AppendPattern(code, pos, upceanStartEndPattern, true)
	return withQuietZones(code, ean13LeftQuietZone, ean13RightQuietZone), true
}
