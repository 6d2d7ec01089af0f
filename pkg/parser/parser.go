// Package parser implements recursive descent parsers for the two
// descriptor languages: the built-in function file and the overload
// file. The grammar has no recovery points, so the first violation
// aborts the run with a single column-accurate diagnostic.
package parser

import (
	"fmt"

	"github.com/ppctools/bifgen/pkg/ast"
	"github.com/ppctools/bifgen/pkg/policy"
	"github.com/ppctools/bifgen/pkg/registry"
	"github.com/ppctools/bifgen/pkg/scanner"
)

// Model accumulates everything parsed from the two input files. The
// built-in file must be fully parsed before the overload file, since
// overload entries are validated against the built-in id registry.
type Model struct {
	Bifs        []ast.Builtin
	OvldStanzas []ast.OverloadStanza
	Ovlds       []ast.Overload

	BifIDs  *registry.Registry
	OvldIDs *registry.Registry
	TypeIDs *registry.Registry
}

// NewModel creates an empty Model with initialized registries.
func NewModel() *Model {
	return &Model{
		BifIDs:  registry.New(),
		OvldIDs: registry.New(),
		TypeIDs: registry.New(),
	}
}

// parseCode distinguishes the non-error outcomes of entry and stanza
// parsers.
type parseCode int

const (
	pcOK parseCode = iota
	pcEOF
	pcEOStanza
)

// Parser drives the scanner over one input file. The file path is
// bound once so every diagnostic carries it.
type Parser struct {
	sc   *scanner.Scanner
	path string
	pol  policy.Policy
	m    *Model

	curStanza ast.Stanza // bif file only
	curOvld   int        // ovld file only, index into m.OvldStanzas
}

// errf formats a parse failure as "path:line: message". Columns are
// embedded in the message by the caller, 1-based.
func (p *Parser) errf(format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", p.path, p.sc.Line(), fmt.Sprintf(format, args...))
}

// wrap attaches file position to an internal error, preserving the
// sentinel for errors.Is.
func (p *Parser) wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", p.path, p.sc.Line(), err)
}

// advance moves the scanner to the next significant line.
func (p *Parser) advance() (bool, error) {
	ok, err := p.sc.AdvanceLine()
	if err != nil {
		return false, p.wrap(err)
	}
	return ok, nil
}

func (p *Parser) col() int {
	return p.sc.Pos() + 1
}
