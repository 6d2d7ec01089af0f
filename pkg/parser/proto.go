package parser

import "github.com/ppctools/bifgen/pkg/ast"

// parseArgs parses the parenthesized argument list. Void arguments are
// not legal. Arguments carrying a const-int restriction are recorded
// as restricted operands, bounded by policy.
func (p *Parser) parseArgs(proto *ast.Prototype) error {
	sc := p.sc

	sc.ConsumeWhitespace()
	if sc.Peek() != '(' {
		return p.errf("missing '(' at column %d", p.col())
	}
	sc.Skip()

	for {
		sc.ConsumeWhitespace()
		oldpos := sc.Pos()
		arg, ok, err := p.matchType(false)
		if err != nil {
			return err
		}
		if !ok {
			sc.SetPos(oldpos)
			if sc.Peek() != ')' {
				return p.errf("badly terminated arg list at column %d", p.col())
			}
			sc.Skip()
			return nil
		}

		if arg.Restr != ast.ResNone {
			if len(proto.RestrOpnds) >= p.pol.MaxRestrictedOperands {
				return p.errf("more than %d restricted operands",
					p.pol.MaxRestrictedOperands)
			}
			proto.RestrOpnds = append(proto.RestrOpnds, ast.RestrOpnd{
				Opnd:  len(proto.Args) + 1,
				Restr: arg.Restr,
				Val1:  arg.Val1,
				Val2:  arg.Val2,
			})
		}
		proto.Args = append(proto.Args, arg)

		sc.ConsumeWhitespace()
		if sc.Peek() == ',' {
			sc.Skip()
		} else if sc.Peek() != ')' {
			return p.errf("arg not followed by ',' or ')' at column %d", p.col())
		}
	}
}

// parsePrototype parses a full signature line:
//
//	<return-type> <name> (<argument-list>);
//
// Nothing but whitespace may follow the semicolon.
func (p *Parser) parsePrototype(proto *ast.Prototype) error {
	sc := p.sc

	sc.ConsumeWhitespace()
	oldpos := sc.Pos()
	ret, ok, err := p.matchType(true)
	if err != nil {
		return err
	}
	if !ok {
		return p.errf("missing or badly formed return type at column %d", oldpos+1)
	}
	proto.RetType = ret

	sc.ConsumeWhitespace()
	oldpos = sc.Pos()
	proto.Name = sc.MatchIdentifier()
	if proto.Name == "" {
		return p.errf("missing function name at column %d", oldpos+1)
	}

	if err := p.parseArgs(proto); err != nil {
		return err
	}

	sc.ConsumeWhitespace()
	if sc.Peek() != ';' {
		return p.errf("missing semicolon at column %d", p.col())
	}
	sc.Skip()
	sc.ConsumeWhitespace()
	if !sc.AtEOL() {
		return p.errf("garbage at end of line at column %d", p.col())
	}
	return nil
}

// parseAttrs parses the brace-delimited attribute list of a built-in
// entry. The vocabulary is closed; an unknown token is fatal.
func (p *Parser) parseAttrs(attrs *ast.AttrSet) error {
	sc := p.sc

	sc.ConsumeWhitespace()
	if sc.Peek() != '{' {
		return p.errf("missing attribute set at column %d", p.col())
	}
	sc.Skip()

	for {
		sc.ConsumeWhitespace()
		oldpos := sc.Pos()
		name := sc.MatchIdentifier()
		if name == "" {
			if sc.Peek() != '}' {
				return p.errf("badly terminated attr set at column %d", p.col())
			}
			sc.Skip()
			return nil
		}

		switch name {
		case "init":
			attrs.IsInit = true
		case "set":
			attrs.IsSet = true
		case "extract":
			attrs.IsExtract = true
		case "nosoft":
			attrs.IsNosoft = true
		case "ldvec":
			attrs.IsLdvec = true
		case "stvec":
			attrs.IsStvec = true
		case "reve":
			attrs.IsReve = true
		case "pred":
			attrs.IsPred = true
		case "htm":
			attrs.IsHTM = true
		case "htmspr":
			attrs.IsHTMSPR = true
		case "htmcr":
			attrs.IsHTMCR = true
		case "mma":
			attrs.IsMMA = true
		case "no32bit":
			attrs.IsNo32Bit = true
		case "cpu":
			attrs.IsCPU = true
		case "ldstmask":
			attrs.IsLdstmask = true
		default:
			return p.errf("unknown attribute at column %d", oldpos+1)
		}

		sc.ConsumeWhitespace()
		if sc.Peek() == ',' {
			sc.Skip()
		} else if sc.Peek() != '}' {
			return p.errf("attr not followed by ',' or '}' at column %d", p.col())
		}
	}
}
