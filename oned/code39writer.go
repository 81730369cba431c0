package oned

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39CharacterEncodings holds one 9-bit mask per alphabet character.
// Bit 8 is the first element (a bar); a set bit marks a wide element.
var code39CharacterEncodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39AsteriskEncoding = 0x094

const (
	code39Narrow    = 1
	code39Wide      = 3
	code39QuietZone = 10
	// Every character has three wide and six narrow elements.
	code39CharWidth = 3*code39Wide + 6*code39Narrow
)

// Code39Writer encodes Code 39 barcodes.
type Code39Writer struct{}

// NewCode39Writer creates a new Code 39 writer.
func NewCode39Writer() *Code39Writer {
	return &Code39Writer{}
}

// Encode encodes contents into a Code 39 bitmap, one pixel per module.
func (w *Code39Writer) Encode(contents string, format symbolgen.Symbology, opts *symbolgen.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != symbolgen.SymbologyCode39 {
		return nil, fmt.Errorf("can only encode Code39, but got %s", format)
	}
	code, ok := EncodeCode39(contents)
	if !ok {
		return nil, fmt.Errorf("%w: contents contain characters outside the Code 39 alphabet", symbolgen.ErrInvalidContents)
	}
	return Rasterize(code, opts.BarHeightOrDefault()), nil
}

// GenerateCode39 encodes data and rasterizes it at DefaultBarHeight.
// It reports false when data contains an unsupported character.
func GenerateCode39(data string) (*bitutil.BitMatrix, bool) {
	code, ok := EncodeCode39(data)
	if !ok {
		return nil, false
	}
	return Rasterize(code, DefaultBarHeight), true
}

// EncodeCode39 returns the module sequence for payload wrapped in '*'
// start/stop characters, with 10-module quiet zones on both sides. The
// payload is upper-cased first. No check character is added.
//
// It reports false, and returns no modules, if any character is outside
// 0-9, A-Z, '-', '.', ' ', '$', '/', '+', '%' and '*'.
func EncodeCode39(payload string) ([]bool, bool) {
	upper := cases.Upper(language.Und).String(payload)

	encodings := make([]int, 0, len(upper)+2)
	encodings = append(encodings, code39AsteriskEncoding)
	for _, r := range upper {
		enc, ok := code39Encoding(r)
		if !ok {
			return nil, false
		}
		encodings = append(encodings, enc)
	}
	encodings = append(encodings, code39AsteriskEncoding)

	n := len(encodings)
	result := make([]bool, 2*code39QuietZone+n*code39CharWidth+n-1)
	widths := make([]int, 9)
	narrowWhite := []int{code39Narrow}
	pos := code39QuietZone
	for i, enc := range encodings {
		code39ToIntArray(enc, widths)
		pos += AppendPattern(result, pos, widths, true)
		if i < n-1 {
			pos += AppendPattern(result, pos, narrowWhite, false)
		}
	}
	return result, true
}

func code39Encoding(r rune) (int, bool) {
	if r == '*' {
		return code39AsteriskEncoding, true
	}
	if r > 0x7f {
		return 0, false
	}
	idx := strings.IndexRune(code39Alphabet, r)
	if idx < 0 {
		return 0, false
	}
	return code39CharacterEncodings[idx], true
}

func code39ToIntArray(a int, toReturn []int) {
	for i := 0; i < 9; i++ {
		if a&(1<<uint(8-i)) != 0 {
			toReturn[i] = code39Wide
		} else {
			toReturn[i] = code39Narrow
		}
	}
}
