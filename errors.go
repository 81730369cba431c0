package symbolgen

import "errors"

var (
	// ErrUnsupportedFormat is returned when no image can be generated for a symbology.
	ErrUnsupportedFormat = errors.New("unsupported barcode format")

	// ErrInvalidContents is returned when the data cannot be encoded in the requested symbology.
	ErrInvalidContents = errors.New("invalid barcode contents")

	// ErrUnknownSymbology is returned when a raw symbology value is not recognized.
	ErrUnknownSymbology = errors.New("unknown symbology")
)
