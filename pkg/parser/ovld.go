package parser

import (
	"github.com/ppctools/bifgen/pkg/ast"
	"github.com/ppctools/bifgen/pkg/mangle"
	"github.com/ppctools/bifgen/pkg/policy"
	"github.com/ppctools/bifgen/pkg/scanner"
)

// ParseOvld parses the overload file into m. The built-in file must
// already have been parsed: every overload entry references an id in
// the built-in registry.
func ParseOvld(path, input string, pol policy.Policy, m *Model) error {
	p := &Parser{sc: scanner.New(input), path: path, pol: pol, m: m}
	ok, err := p.advance()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for {
		code, err := p.parseOvldStanza()
		if err != nil {
			return err
		}
		if code == pcEOF {
			return nil
		}
	}
}

// parseOvldStanza parses one overload stanza header
//
//	[<overload-id>, <extern-name>, <intern-name>]
//
// plus its entries. On return with pcOK the scanner holds the next
// stanza header line.
func (p *Parser) parseOvldStanza() (parseCode, error) {
	sc := p.sc

	sc.Reset()
	sc.ConsumeWhitespace()
	if sc.Peek() != '[' {
		return pcOK, p.errf("ill-formed stanza header at column %d", p.col())
	}
	sc.Skip()

	var stanza ast.OverloadStanza
	stanza.ID = sc.MatchIdentifier()
	if stanza.ID == "" {
		return pcOK, p.errf("no identifier found in stanza header")
	}

	sc.ConsumeWhitespace()
	if sc.Peek() != ',' {
		return pcOK, p.errf("missing comma at column %d", p.col())
	}
	sc.Skip()

	sc.ConsumeWhitespace()
	stanza.ExternName = sc.MatchIdentifier()
	if stanza.ExternName == "" {
		return pcOK, p.errf("missing external name at column %d", p.col())
	}

	sc.ConsumeWhitespace()
	if sc.Peek() != ',' {
		return pcOK, p.errf("missing comma at column %d", p.col())
	}
	sc.Skip()

	sc.ConsumeWhitespace()
	stanza.InternName = sc.MatchIdentifier()
	if stanza.InternName == "" {
		return pcOK, p.errf("missing internal name at column %d", p.col())
	}

	sc.ConsumeWhitespace()
	if sc.Peek() != ']' {
		return pcOK, p.errf("ill-formed stanza header at column %d", p.col())
	}
	sc.Skip()

	sc.ConsumeWhitespace()
	if !sc.AtEOL() {
		return pcOK, p.errf("garbage after stanza header")
	}

	p.curOvld = len(p.m.OvldStanzas)
	p.m.OvldStanzas = append(p.m.OvldStanzas, stanza)

	for {
		ok, err := p.advance()
		if err != nil {
			return pcOK, err
		}
		if !ok {
			return pcEOF, nil
		}
		code, err := p.parseOvldEntry()
		if err != nil {
			return pcOK, err
		}
		if code == pcEOStanza {
			return pcOK, nil
		}
	}
}

// parseOvldEntry parses one two-line overload entry: a prototype line
// and a line holding the referenced builtin id.
func (p *Parser) parseOvldEntry() (parseCode, error) {
	sc := p.sc

	sc.Reset()
	sc.ConsumeWhitespace()
	if sc.Peek() == '[' {
		return pcEOStanza, nil
	}

	o := ast.Overload{Stanza: p.curOvld}

	if err := p.parsePrototype(&o.Proto); err != nil {
		return pcOK, err
	}

	typeID, err := mangle.TypeID(o.Proto.RetType, o.Proto.Args)
	if err != nil {
		return pcOK, p.wrap(err)
	}
	o.TypeID = typeID
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
	oldpos := sc.Pos()
	o.ID = sc.MatchIdentifier()
	if o.ID == "" {
		return pcOK, p.errf("missing overload id at column %d", p.col())
	}

	// The referenced id has to match one from the builtin file.
	if !p.m.BifIDs.Contains(o.ID) {
		return pcOK, p.errf("builtin ID '%s' not found in bif file", o.ID)
	}
	if !p.m.OvldIDs.Insert(o.ID) {
		return pcOK, p.errf("duplicate function ID '%s' at column %d", o.ID, oldpos+1)
	}

	sc.ConsumeWhitespace()
	if !sc.AtEOL() {
		return pcOK, p.errf("garbage at end of line at column %d", p.col())
	}

	p.m.Ovlds = append(p.m.Ovlds, o)
	return pcOK, nil
}
