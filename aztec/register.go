package aztec

import symbolgen "github.com/yeetcard/symbolgen"

func init() {
	symbolgen.RegisterWriter(symbolgen.SymbologyAztec, func() symbolgen.Writer {
		return NewWriter()
	})
}
