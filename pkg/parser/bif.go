package parser

import (
	"github.com/ppctools/bifgen/pkg/ast"
	"github.com/ppctools/bifgen/pkg/mangle"
	"github.com/ppctools/bifgen/pkg/policy"
	"github.com/ppctools/bifgen/pkg/scanner"
)

// ParseBif parses the built-in function file into m, registering every
// builtin id and type-descriptor id. The path appears in diagnostics.
func ParseBif(path, input string, pol policy.Policy, m *Model) error {
	p := &Parser{sc: scanner.New(input), path: path, pol: pol, m: m}
	ok, err := p.advance()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for {
		code, err := p.parseBifStanza()
		if err != nil {
			return err
		}
		if code == pcEOF {
			return nil
		}
	}
}

// parseBifStanza parses one stanza header plus its entries. On return
// with pcOK the scanner holds the next stanza header line.
func (p *Parser) parseBifStanza() (parseCode, error) {
	sc := p.sc

	sc.Reset()
	sc.ConsumeWhitespace()
	if sc.Peek() != '[' {
		return pcOK, p.errf("ill-formed stanza header at column %d", p.col())
	}
	sc.Skip()

	// Gating tokens may contain '-', so scan to the bracket rather
	// than matching an identifier.
	name, ok := sc.MatchToRightBracket()
	if !ok {
		return pcOK, p.errf("no expression found in stanza header")
	}
	stanza, ok := ast.LookupStanza(name)
	if !ok {
		return pcOK, p.errf("unrecognized gating token '%s'", name)
	}
	p.curStanza = stanza

	if sc.Peek() != ']' {
		return pcOK, p.errf("ill-formed stanza header at column %d", p.col())
	}
	sc.Skip()

	sc.ConsumeWhitespace()
	if !sc.AtEOL() {
		return pcOK, p.errf("garbage after stanza header")
	}

	for {
		ok, err := p.advance()
		if err != nil {
			return pcOK, err
		}
		if !ok {
			return pcEOF, nil
		}
		code, err := p.parseBifEntry()
		if err != nil {
			return pcOK, err
		}
		if code == pcEOStanza {
			return pcOK, nil
		}
	}
}

// parseBifEntry parses one two-line built-in entry: the prototype line
// with its optional purity modifier, then the id/pattern/attributes
// line. It reports pcEOStanza when the current line opens a stanza.
func (p *Parser) parseBifEntry() (parseCode, error) {
	sc := p.sc

	sc.Reset()
	sc.ConsumeWhitespace()
	if sc.Peek() == '[' {
		return pcEOStanza, nil
	}

	b := ast.Builtin{Stanza: p.curStanza}

	oldpos := sc.Pos()
	token := sc.MatchIdentifier()
	if token == "" {
		return pcOK, p.errf("malformed entry at column %d", p.col())
	}
	switch token {
	case "const":
		b.Kind = ast.FKConst
	case "pure":
		b.Kind = ast.FKPure
	case "fpmath":
		b.Kind = ast.FKFPMath
	default:
		// No purity modifier, so push the token back.
		sc.SetPos(oldpos)
		b.Kind = ast.FKNone
	}

	if err := p.parsePrototype(&b.Proto); err != nil {
		return pcOK, err
	}

	typeID, err := mangle.TypeID(b.Proto.RetType, b.Proto.Args)
	if err != nil {
		return pcOK, p.wrap(err)
	}
	b.TypeID = typeID
	// Duplicates across unrelated functions are expected here.
	p.m.TypeIDs.Insert(typeID)

	ok, err := p.advance()
	if err != nil {
		return pcOK, err
	}
	if !ok {
		return pcOK, p.errf("unexpected EOF")
	}

	sc.Reset()
	sc.ConsumeWhitespace()
	oldpos = sc.Pos()
	b.ID = sc.MatchIdentifier()
	if b.ID == "" {
		return pcOK, p.errf("missing builtin id at column %d", p.col())
	}
	if !p.m.BifIDs.Insert(b.ID) {
		return pcOK, p.errf("duplicate function ID '%s' at column %d", b.ID, oldpos+1)
	}

	sc.ConsumeWhitespace()
	b.Pattern = sc.MatchIdentifier()
	if b.Pattern == "" {
		return pcOK, p.errf("missing pattern name at column %d", p.col())
	}

	if err := p.parseAttrs(&b.Attrs); err != nil {
		return pcOK, err
	}

	p.m.Bifs = append(p.m.Bifs, b)
	return pcOK, nil
}
