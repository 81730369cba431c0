package aztec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	symbolgen "github.com/yeetcard/symbolgen"
)

func TestWriterEncode(t *testing.T) {
	t.Parallel()
	bm, err := NewWriter().Encode("Aztec Test", symbolgen.SymbologyAztec, nil)
	require.NoError(t, err)

	require.Equal(t, bm.Width(), bm.Height(), "Aztec symbols are square")
	assert.Equal(t, 1, bm.Width()%2, "Aztec symbols have a center module")
	assert.True(t, bm.Get(bm.Width()/2, bm.Height()/2), "bullseye center is dark")
	for x := 0; x < bm.Width(); x++ {
		assert.False(t, bm.Get(x, 0), "quiet zone column %d", x)
	}
}

func TestWriterEncodeErrors(t *testing.T) {
	t.Parallel()
	_, err := NewWriter().Encode("", symbolgen.SymbologyAztec, nil)
	assert.ErrorIs(t, err, symbolgen.ErrInvalidContents)

	_, err = NewWriter().Encode("Aztec", symbolgen.SymbologyPDF417, nil)
	assert.Error(t, err)
}
