// Package aztec renders Aztec symbols through github.com/boombuler/barcode.
package aztec

import (
	"errors"
	"fmt"

	bbaztec "github.com/boombuler/barcode/aztec"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

const (
	minECCPercent = 23
	quietZone     = 1
)

// Writer encodes Aztec barcodes.
type Writer struct{}

// NewWriter creates a new Aztec Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into an Aztec BitMatrix with a
// 1-module quiet zone. The layer count is chosen automatically.
func (w *Writer) Encode(contents string, format symbolgen.Symbology, _ *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: found empty contents", symbolgen.ErrInvalidContents)
	}
	if format != symbolgen.SymbologyAztec {
		return nil, fmt.Errorf("can only encode Aztec, but got %s", format)
	}
	code, err := bbaztec.Encode([]byte(contents), minECCPercent, 0)
	if err != nil {
		return nil, errors.Join(symbolgen.ErrInvalidContents, err)
	}
	return bitutil.FromImage(code).Pad(quietZone), nil
}
