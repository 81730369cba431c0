package oned

import symbolgen "github.com/yeetcard/symbolgen"

func init() {
	symbolgen.RegisterWriter(symbolgen.SymbologyCode128, func() symbolgen.Writer { return NewCode128Writer() })
	symbolgen.RegisterWriter(symbolgen.SymbologyCode39, func() symbolgen.Writer { return NewCode39Writer() })
	symbolgen.RegisterWriter(symbolgen.SymbologyEAN13, func() symbolgen.Writer { return NewEAN13Writer() })
}
