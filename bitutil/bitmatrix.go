// Package bitutil provides the 1-bit bitmap used for rendered barcode symbols.
package bitutil

import (
	"image"
	"image/color"
	"strings"
)

var (
	ink        = color.Gray{Y: 0x00}
	background = color.Gray{Y: 0xff}

	ink64        = color.RGBA64{A: 0xffff}
	background64 = color.RGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff}
)

// BitMatrix represents a 2D matrix of bits. A set bit is ink (black), an
// unset bit is background (white).
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from rows of booleans.
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	height := len(image)
	width := len(image[0])
	bm := NewBitMatrixWithSize(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if image[y][x] {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// FromImage thresholds img into a BitMatrix. Pixels darker than mid-gray are ink.
func FromImage(img image.Image) *BitMatrix {
	b := img.Bounds()
	bm := NewBitMatrixWithSize(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 0x80 {
				bm.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return bm
}

// Pad returns a copy of bm surrounded by margin unset bits on every side.
func (bm *BitMatrix) Pad(margin int) *BitMatrix {
	if margin <= 0 {
		return bm.Clone()
	}
	out := NewBitMatrixWithSize(bm.width+2*margin, bm.height+2*margin)
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				out.Set(x+margin, y+margin)
			}
		}
	}
	return out
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// SetRegion sets a rectangular region of bits.
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// ColorModel implements image.Image.
func (bm *BitMatrix) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (bm *BitMatrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.width, bm.height)
}

// At implements image.Image. Points outside the matrix are background.
func (bm *BitMatrix) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return background
	}
	if bm.Get(x, y) {
		return ink
	}
	return background
}

// RGBA64At implements image.RGBA64Image, which scalers use as their fast path.
func (bm *BitMatrix) RGBA64At(x, y int) color.RGBA64 {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height || !bm.Get(x, y) {
		return background64
	}
	return ink64
}

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowSize != other.rowSize {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
