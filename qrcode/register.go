package qrcode

import symbolgen "github.com/yeetcard/symbolgen"

func init() {
	symbolgen.RegisterWriter(symbolgen.SymbologyQR, func() symbolgen.Writer {
		return NewWriter()
	})
}
