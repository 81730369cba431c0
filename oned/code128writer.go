package oned

import (
	"errors"
	"fmt"

	"github.com/boombuler/barcode/code128"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

// code128QuietZone is the space run added on each side of a Code 128 symbol.
const code128QuietZone = 10

// Code128Writer encodes Code 128 barcodes through github.com/boombuler/barcode.
type Code128Writer struct{}

// NewCode128Writer creates a new Code 128 writer.
func NewCode128Writer() *Code128Writer {
	return &Code128Writer{}
}

// Encode encodes contents into a Code 128 bitmap, one pixel per module.
func (w *Code128Writer) Encode(contents string, format symbolgen.Symbology, opts *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != symbolgen.SymbologyCode128 {
		return nil, fmt.Errorf("can only encode Code128, but got %s", format)
	}
	code, err := encodeCode128(contents)
	if err != nil {
		return nil, err
	}
	return Rasterize(code, opts.BarHeightOrDefault()), nil
}

// encodeCode128 returns the Code 128 module sequence with quiet zones.
func encodeCode128(contents string) ([]bool, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: found empty contents", symbolgen.ErrInvalidContents)
	}
	bc, err := code128.Encode(contents)
	if err != nil {
		return nil, errors.Join(symbolgen.ErrInvalidContents, err)
	}
	bm := bitutil.FromImage(bc)
	code := make([]bool, bm.Width())
	for x := range code {
		code[x] = bm.Get(x, 0)
	}
	return withQuietZones(code, code128QuietZone, code128QuietZone), nil
}
