package pdf417

import symbolgen "github.com/yeetcard/symbolgen"

func init() {
	symbolgen.RegisterWriter(symbolgen.SymbologyPDF417, func() symbolgen.Writer {
		return NewPDF417Writer()
	})
}
