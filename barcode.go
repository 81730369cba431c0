// Package symbolgen renders membership, loyalty and ticket card barcodes.
//
// Code 39 and EAN-13 are encoded bit by bit in package oned. QR, Code 128,
// PDF417 and Aztec are delegated to third-party encoders wrapped by the
// qrcode, oned, pdf417 and aztec packages. Each format package registers its
// writer on import.
package symbolgen

import "fmt"

// Symbology identifies a barcode encoding standard.
type Symbology int

const (
	SymbologyQR Symbology = iota
	SymbologyCode128
	SymbologyCode39
	SymbologyEAN13
	SymbologyEAN8
	SymbologyUPCA
	SymbologyUPCE
	SymbologyPDF417
	SymbologyAztec
	SymbologyDataMatrix
)

var symbologies = []Symbology{
	SymbologyQR,
	SymbologyCode128,
	SymbologyCode39,
	SymbologyEAN13,
	SymbologyEAN8,
	SymbologyUPCA,
	SymbologyUPCE,
	SymbologyPDF417,
	SymbologyAztec,
	SymbologyDataMatrix,
}

// Symbologies returns every known symbology in declaration order.
func Symbologies() []Symbology {
	out := make([]Symbology, len(symbologies))
	copy(out, symbologies)
	return out
}

// String returns the raw value stored alongside a card.
func (s Symbology) String() string {
	switch s {
	case SymbologyQR:
		return "QR"
	case SymbologyCode128:
		return "Code128"
	case SymbologyCode39:
		return "Code39"
	case SymbologyEAN13:
		return "EAN-13"
	case SymbologyEAN8:
		return "EAN-8"
	case SymbologyUPCA:
		return "UPC-A"
	case SymbologyUPCE:
		return "UPC-E"
	case SymbologyPDF417:
		return "PDF417"
	case SymbologyAztec:
		return "Aztec"
	case SymbologyDataMatrix:
		return "DataMatrix"
	default:
		return "UNKNOWN"
	}
}

// DisplayName returns a human readable label.
func (s Symbology) DisplayName() string {
	switch s {
	case SymbologyQR:
		return "QR Code"
	case SymbologyCode128:
		return "Code 128"
	case SymbologyCode39:
		return "Code 39"
	case SymbologyDataMatrix:
		return "Data Matrix"
	default:
		return s.String()
	}
}

// IsWalletCompatible reports whether a Wallet pass can carry the symbology.
func (s Symbology) IsWalletCompatible() bool {
	switch s {
	case SymbologyQR, SymbologyCode128, SymbologyPDF417, SymbologyAztec:
		return true
	default:
		return false
	}
}

// CanGenerate reports whether an image can be rendered for the symbology.
func (s Symbology) CanGenerate() bool {
	switch s {
	case SymbologyQR, SymbologyCode128, SymbologyPDF417, SymbologyAztec,
		SymbologyCode39, SymbologyEAN13:
		return true
	default:
		return false
	}
}

// ParseSymbology returns the symbology whose raw value is raw.
func ParseSymbology(raw string) (Symbology, error) {
	for _, s := range symbologies {
		if s.String() == raw {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", raw, ErrUnknownSymbology)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbology) MarshalText() ([]byte, error) {
	if s < SymbologyQR || s > SymbologyDataMatrix {
		return nil, fmt.Errorf("symbology %d: %w", int(s), ErrUnknownSymbology)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbology) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbology(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
