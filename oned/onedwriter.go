// Package oned encodes linear barcodes: Code 39 and EAN-13 from first
// principles, and Code 128 through github.com/boombuler/barcode.
package oned

import (
	symbolgen "github.com/yeetcard/symbolgen"
	"github.com/yeetcard/symbolgen/bitutil"
)

// DefaultBarHeight is the pixel height used by GenerateCode39 and GenerateEAN13.
const DefaultBarHeight = symbolgen.DefaultBarHeight

// Rasterize renders a module sequence as a bitmap one pixel per module wide
// and height pixels tall. Bar modules become full-height ink columns; all
// other pixels are background. Heights below 1 are clamped to 1, and an
// empty sequence yields a single blank column.
func Rasterize(modules []bool, height int) *bitutil.BitMatrix {
	if height < 1 {
		height = 1
	}
	output := bitutil.NewBitMatrixWithSize(max(len(modules), 1), height)
	for x, bar := range modules {
		if bar {
			output.SetRegion(x, 0, 1, height)
		}
	}
	return output
}

// AppendPattern appends a pattern of bars/spaces to a boolean array.
// If startColor is true, the first element is a bar (black); otherwise space (white).
// Returns the total width appended.
func AppendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	numAdded := 0
	for _, p := range pattern {
		for j := 0; j < p; j++ {
			target[pos] = color
			pos++
			numAdded++
		}
		color = !color
	}
	return numAdded
}

// appendBits writes the n low bits of bits, most significant first, as
// modules. A one bit is a bar.
func appendBits(target []bool, pos int, bits uint8, n int) int {
	for i := n - 1; i >= 0; i-- {
		target[pos] = bits&(1<<uint(i)) != 0
		pos++
	}
	return n
}

// withQuietZones returns code surrounded by left and right runs of space modules.
func withQuietZones(code []bool, left, right int) []bool {
	out := make([]bool, left+len(code)+right)
	copy(out[left:], code)
	return out
}
