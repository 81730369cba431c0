package oned

import "fmt"

// CheckNumeric validates that a string contains only digits.
func CheckNumeric(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("contents contain non-digit character: %c", s[i])
		}
	}
	return nil
}

// EAN13CheckDigit computes the check digit for the first 12 digits of an
// EAN-13 code. It reports false if first12 is not exactly 12 digits.
func EAN13CheckDigit(first12 string) (int, bool) {
	if len(first12) != 12 || CheckNumeric(first12) != nil {
		return 0, false
	}
	return standardUPCEANChecksum(first12), true
}

// ValidEAN13CheckDigit reports whether code is 13 digits whose last digit
// matches the checksum of the first 12. The encoders never call it.
func ValidEAN13CheckDigit(code string) bool {
	if len(code) != 13 {
		return false
	}
	check, ok := EAN13CheckDigit(code[:12])
	return ok && int(code[12]-'0') == check
}

// standardUPCEANChecksum computes the UPC/EAN check digit for a string of
// digits without the check digit itself. Digits are weighted 3 and 1
// alternately from the right.
func standardUPCEANChecksum(s string) int {
	length := len(s)
	sum := 0
	for i := length - 1; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	sum *= 3
	for i := length - 2; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	return (1000 - sum) % 10
}
