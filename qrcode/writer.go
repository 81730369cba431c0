// Package qrcode renders QR codes through github.com/skip2/go-qrcode.
package qrcode

import (
	"errors"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

// Writer encodes QR codes at error correction level M with a 4-module quiet zone.
type Writer struct{}

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a QR code BitMatrix, one pixel per module.
func (w *Writer) Encode(contents string, format symbolgen.Symbology, _ *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: found empty contents", symbolgen.ErrInvalidContents)
	}
	if format != symbolgen.SymbologyQR {
		return nil, fmt.Errorf("can only encode QR, but got %s", format)
	}
	code, err := skipqrcode.New(contents, skipqrcode.Medium)
	if err != nil {
		return nil, errors.Join(symbolgen.ErrInvalidContents, err)
	}
	return bitutil.ParseBoolMatrix(code.Bitmap()), nil
}
