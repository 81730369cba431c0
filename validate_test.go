package symbolgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBarcodeData(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		data   string
		format Symbology
		want   bool
	}{
		{"ean13 valid", "1234567890123", SymbologyEAN13, true},
		{"ean13 short", "123456789012", SymbologyEAN13, false},
		{"ean13 letter", "123456789012a", SymbologyEAN13, false},
		{"ean13 bad check digit is still valid", "5901234123458", SymbologyEAN13, true},
		{"ean8 valid", "12345678", SymbologyEAN8, true},
		{"ean8 short", "1234567", SymbologyEAN8, false},
		{"upca valid", "123456789012", SymbologyUPCA, true},
		{"upca short", "12345678901", SymbologyUPCA, false},
		{"upce valid", "12345678", SymbologyUPCE, true},
		{"upce short", "1234567", SymbologyUPCE, false},
		{"non ascii digits", "١٢٣٤٥٦٧٨", SymbologyEAN8, false},
		{"code39 accepts unsupported characters", "hello!", SymbologyCode39, true},
		{"unknown symbology", "data", Symbology(99), false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidateBarcodeData(tc.data, tc.format))
		})
	}
}

func TestValidateBarcodeDataRejectsEmpty(t *testing.T) {
	t.Parallel()
	for _, s := range Symbologies() {
		assert.False(t, ValidateBarcodeData("", s), s.String())
	}
}

func TestValidateBarcodeDataFlexibleFormats(t *testing.T) {
	t.Parallel()
	for _, s := range []Symbology{
		SymbologyQR, SymbologyCode128, SymbologyCode39,
		SymbologyPDF417, SymbologyAztec, SymbologyDataMatrix,
	} {
		assert.True(t, ValidateBarcodeData("anything", s), s.String())
	}
}
