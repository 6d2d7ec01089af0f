package codegen

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDefines emits the macro-alias include: one line per overload
// stanza mapping its ABI-visible external name to the back-end
// internal name, in definition order.
func (g *Generator) WriteDefines(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range g.m.OvldStanzas {
		fmt.Fprintf(bw, "#define %s %s\n", s.ExternName, s.InternName)
	}
	return bw.Flush()
}
