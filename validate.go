package symbolgen

import "unicode/utf8"

// ValidateBarcodeData performs the cheap shape check used before attempting
// generation. It is deliberately looser than the encoders: Code 39 accepts
// any non-empty string here even though the encoder rejects characters
// outside its alphabet, so callers must still check the encoder's result.
func ValidateBarcodeData(data string, format Symbology) bool {
	if data == "" {
		return false
	}
	switch format {
	case SymbologyEAN13:
		return isDigits(data, 13)
	case SymbologyEAN8, SymbologyUPCE:
		return isDigits(data, 8)
	case SymbologyUPCA:
		return isDigits(data, 12)
	case SymbologyQR, SymbologyCode128, SymbologyCode39, SymbologyPDF417,
		SymbologyAztec, SymbologyDataMatrix:
		return true
	default:
		return false
	}
}

// isDigits reports whether s is exactly n ASCII decimal digits.
func isDigits(s string, n int) bool {
	if utf8.RuneCountInString(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
