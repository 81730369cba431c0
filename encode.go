package symbolgen

import "github.com/yeetcard/symbolgen/bitutil"

// DefaultBarHeight is the pixel height of rasterized linear symbols.
const DefaultBarHeight = 80

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// BarHeight is the height in pixels of linear (1D) symbols.
	// Values below 1 select DefaultBarHeight.
	BarHeight int
}

// BarHeightOrDefault returns the configured bar height, or DefaultBarHeight.
func (o *EncodeOptions) BarHeightOrDefault() int {
	if o == nil || o.BarHeight < 1 {
		return DefaultBarHeight
	}
	return o.BarHeight
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode renders contents at native resolution, one pixel per module.
	Encode(contents string, format Symbology, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
