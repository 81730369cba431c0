// Package pdf417 renders PDF417 symbols through github.com/boombuler/barcode.
package pdf417

import (
	"errors"
	"fmt"

	bbpdf417 "github.com/boombuler/barcode/pdf417"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

const (
	defaultQuietZone            = 2
	defaultErrorCorrectionLevel = 2
)

// PDF417Writer encodes PDF417 barcodes.
type PDF417Writer struct{}

// NewPDF417Writer creates a new PDF417 writer.
func NewPDF417Writer() *PDF417Writer {
	return &PDF417Writer{}
}

// Encode encodes the given contents into a PDF417 BitMatrix surrounded by a
// 2-module quiet zone.
func (w *PDF417Writer) Encode(contents string, format symbolgen.Symbology, _ *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: found empty contents", symbolgen.ErrInvalidContents)
	}
	if format != symbolgen.SymbologyPDF417 {
		return nil, fmt.Errorf("can only encode PDF417, but got %s", format)
	}
	code, err := bbpdf417.Encode(contents, defaultErrorCorrectionLevel)
	if err != nil {
		return nil, errors.Join(symbolgen.ErrInvalidContents, err)
	}
	return bitutil.FromImage(code).Pad(defaultQuietZone), nil
}
