package codegen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ppctools/bifgen/pkg/ast"
)

// WriteHeader emits the declarations header: the builtin and overload
// id enumerations, the restriction and enable enumerations, the info
// struct declarations, attribute bit defines and accessors, and one
// external declarator per distinct function type descriptor.
func (g *Generator) WriteHeader(w io.Writer) error {
	bw := bufio.NewWriter(w)
	g.banner(bw)

	fmt.Fprintf(bw, "enum bif_id\n{\n  BIF_NONE,\n")
	for _, id := range g.m.BifIDs.InOrder() {
		fmt.Fprintf(bw, "  BIF_%s,\n", id)
	}
	fmt.Fprintf(bw, "  BIF_MAX\n};\n\n")

	fmt.Fprintf(bw, "enum restriction\n{\n")
	fmt.Fprintf(bw, "  RES_NONE,\n")
	fmt.Fprintf(bw, "  RES_BITS,\n")
	fmt.Fprintf(bw, "  RES_RANGE,\n")
	fmt.Fprintf(bw, "  RES_VAR_RANGE,\n")
	fmt.Fprintf(bw, "  RES_VALUES\n")
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "enum bif_enable\n{\n")
	tags := ast.EnableTags()
	for i, tag := range tags {
		sep := ","
		if i == len(tags)-1 {
			sep = ""
		}
		fmt.Fprintf(bw, "  %s%s\n", tag, sep)
	}
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "struct bif_info\n{\n")
	fmt.Fprintf(bw, "  const char *bifname;\n")
	fmt.Fprintf(bw, "  enum bif_enable enable;\n")
	fmt.Fprintf(bw, "  tree fntype;\n")
	fmt.Fprintf(bw, "  insn_code icode;\n")
	fmt.Fprintf(bw, "  int nargs;\n")
	fmt.Fprintf(bw, "  int bifattrs;\n")
	if n := g.pol.MaxRestrictedOperands; n > 0 {
		fmt.Fprintf(bw, "  int restr_opnd[%d];\n", n)
		fmt.Fprintf(bw, "  enum restriction restr[%d];\n", n)
		fmt.Fprintf(bw, "  int restr_val1[%d];\n", n)
		fmt.Fprintf(bw, "  int restr_val2[%d];\n", n)
	}
	fmt.Fprintf(bw, "};\n\n")

	for i, b := range attrBits {
		fmt.Fprintf(bw, "#define bif_%s_bit (0x%08x)\n", b.name, 1<<i)
	}
	fmt.Fprintf(bw, "\n")
	for _, b := range attrBits {
		fmt.Fprintf(bw, "#define bif_is_%s(x) ((x).bifattrs & bif_%s_bit)\n",
			b.name, b.name)
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "extern struct bif_info bif_table[];\n\n")

	fmt.Fprintf(bw, "enum ovld_id\n{\n  OVLD_NONE = BIF_MAX + 1,\n")
	for _, id := range g.m.OvldIDs.InOrder() {
		fmt.Fprintf(bw, "  OVLD_%s,\n", id)
	}
	fmt.Fprintf(bw, "  OVLD_MAX\n};\n\n")

	fmt.Fprintf(bw, "struct ovld_info\n{\n")
	fmt.Fprintf(bw, "  const char *bifname;\n")
	fmt.Fprintf(bw, "  enum bif_id bifid;\n")
	fmt.Fprintf(bw, "  tree fntype;\n")
	fmt.Fprintf(bw, "  struct ovld_info *next;\n")
	fmt.Fprintf(bw, "};\n\n")

	fmt.Fprintf(bw, "extern struct ovld_info ovld_table[];\n\n")

	for _, id := range g.m.TypeIDs.InOrder() {
		fmt.Fprintf(bw, "extern tree %s;\n", id)
	}
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "extern tree bif_build_fntype (const char *ret, ...);\n")
	fmt.Fprintf(bw, "extern int bif_enabled (enum bif_enable);\n")
	fmt.Fprintf(bw, "extern void bif_register (const char *, enum bif_id, tree);\n")
	fmt.Fprintf(bw, "extern void bif_hash_insert (const char *, struct bif_info *);\n")
	fmt.Fprintf(bw, "extern void ovld_hash_insert (const char *, struct ovld_info *);\n")
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "extern void autoinit_builtins (void);\n")

	return bw.Flush()
}
