package codegen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ppctools/bifgen/pkg/ast"
)

// WriteInit emits the initialization file: storage and initializers
// for the builtin and overload tables, and the autoinit function that
// builds the function type values, populates the name-keyed lookups,
// and conditionally registers each builtin under its enable tag.
func (g *Generator) WriteInit(w io.Writer) error {
	bw := bufio.NewWriter(w)
	g.banner(bw)

	for _, id := range g.m.TypeIDs.InOrder() {
		fmt.Fprintf(bw, "tree %s;\n", id)
	}
	fmt.Fprintf(bw, "\n")

	g.writeBifTable(bw)
	g.writeOvldTable(bw)
	g.writeAutoinit(bw)

	return bw.Flush()
}

// bifByID returns the builtins in sorted id order, aligned with the
// header's enumeration (BIF_NONE occupies no table slot).
func (g *Generator) bifByID() []ast.Builtin {
	byID := make(map[string]ast.Builtin, len(g.m.Bifs))
	for _, b := range g.m.Bifs {
		byID[b.ID] = b
	}
	out := make([]ast.Builtin, 0, len(byID))
	for _, id := range g.m.BifIDs.InOrder() {
		out = append(out, byID[id])
	}
	return out
}

// restrArrays renders the four restriction initializer arrays, padded
// to the policy width.
func (g *Generator) restrArrays(proto ast.Prototype) string {
	n := g.pol.MaxRestrictedOperands
	if n == 0 {
		return ""
	}
	opnds := make([]string, n)
	kinds := make([]string, n)
	val1s := make([]string, n)
	val2s := make([]string, n)
	for i := 0; i < n; i++ {
		opnds[i], val1s[i], val2s[i] = "0", "0", "0"
		kinds[i] = "RES_NONE"
	}
	for i, r := range proto.RestrOpnds {
		opnds[i] = fmt.Sprintf("%d", r.Opnd)
		kinds[i] = r.Restr.String()
		val1s[i] = fmt.Sprintf("%d", r.Val1)
		val2s[i] = fmt.Sprintf("%d", r.Val2)
	}
	return fmt.Sprintf(",\n      { %s }, { %s }, { %s }, { %s }",
		strings.Join(opnds, ", "), strings.Join(kinds, ", "),
		strings.Join(val1s, ", "), strings.Join(val2s, ", "))
}

func (g *Generator) writeBifTable(bw *bufio.Writer) {
	bifs := g.bifByID()
	fmt.Fprintf(bw, "struct bif_info bif_table[%d] =\n  {\n", len(bifs))
	for _, b := range bifs {
		fmt.Fprintf(bw, "    { /* BIF_%s */\n", b.ID)
		fmt.Fprintf(bw, "      \"%s\", %s, NULL_TREE, CODE_FOR_%s,\n",
			b.Proto.Name, b.Stanza.Enable(), b.Pattern)
		fmt.Fprintf(bw, "      %d, %s%s },\n",
			len(b.Proto.Args), attrExpr(b.Attrs), g.restrArrays(b.Proto))
	}
	fmt.Fprintf(bw, "  };\n\n")
}

// chainNext returns the index of the next overload sharing entry i's
// external name, or -1 at the end of the chain. Chains follow
// first-definition order.
func (g *Generator) chainNext(i int) int {
	name := g.m.OvldStanzas[g.m.Ovlds[i].Stanza].ExternName
	for j := i + 1; j < len(g.m.Ovlds); j++ {
		if g.m.OvldStanzas[g.m.Ovlds[j].Stanza].ExternName == name {
			return j
		}
	}
	return -1
}

// chainHead reports whether entry i starts its external name's chain.
func (g *Generator) chainHead(i int) bool {
	name := g.m.OvldStanzas[g.m.Ovlds[i].Stanza].ExternName
	for j := 0; j < i; j++ {
		if g.m.OvldStanzas[g.m.Ovlds[j].Stanza].ExternName == name {
			return false
		}
	}
	return true
}

func (g *Generator) writeOvldTable(bw *bufio.Writer) {
	fmt.Fprintf(bw, "struct ovld_info ovld_table[%d] =\n  {\n", len(g.m.Ovlds))
	for i, o := range g.m.Ovlds {
		next := "0"
		if j := g.chainNext(i); j >= 0 {
			next = fmt.Sprintf("&ovld_table[%d]", j)
		}
		fmt.Fprintf(bw, "    { \"%s\", BIF_%s, NULL_TREE, %s },\n",
			o.Proto.Name, o.ID, next)
	}
	fmt.Fprintf(bw, "  };\n\n")
}

func (g *Generator) writeAutoinit(bw *bufio.Writer) {
	fmt.Fprintf(bw, "void\nautoinit_builtins (void)\n{\n")

	fmt.Fprintf(bw, "  /* Function types.  */\n")
	for _, id := range g.m.TypeIDs.InOrder() {
		ret, args := splitTypeID(id)
		fmt.Fprintf(bw, "  %s\n    = bif_build_fntype (\"%s\"", id, ret)
		for _, arg := range args {
			fmt.Fprintf(bw, ", \"%s\"", arg)
		}
		fmt.Fprintf(bw, ", NULL);\n")
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "  /* Built-in functions.  */\n")
	for i, b := range g.bifByID() {
		fmt.Fprintf(bw, "  bif_table[%d].fntype = %s;\n", i, b.TypeID)
		fmt.Fprintf(bw, "  bif_hash_insert (\"%s\", &bif_table[%d]);\n",
			b.Proto.Name, i)
		fmt.Fprintf(bw, "  if (bif_enabled (%s))\n", b.Stanza.Enable())
		fmt.Fprintf(bw, "    bif_register (\"%s\", BIF_%s, %s);\n",
			b.Proto.Name, b.ID, b.TypeID)
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "  /* Overloads.  */\n")
	for i, o := range g.m.Ovlds {
		fmt.Fprintf(bw, "  ovld_table[%d].fntype = %s;\n", i, o.TypeID)
		if g.chainHead(i) {
			fmt.Fprintf(bw, "  ovld_hash_insert (\"%s\", &ovld_table[%d]);\n",
				o.Proto.Name, i)
		}
	}
	fmt.Fprintf(bw, "}\n")
}
