package parser

import "github.com/ppctools/bifgen/pkg/ast"

// vectorShorthand expands the fixed vector type tokens. Each token
// fully determines the descriptor; "vop" is the opaque vector that
// matches all vector types and takes no pointer suffix.
var vectorShorthand = map[string]ast.TypeInfo{
	"vsc":  {IsVector: true, IsSigned: true, Base: ast.BTChar},
	"vuc":  {IsVector: true, IsUnsigned: true, Base: ast.BTChar},
	"vbc":  {IsVector: true, IsBool: true, Base: ast.BTChar},
	"vss":  {IsVector: true, IsSigned: true, Base: ast.BTShort},
	"vus":  {IsVector: true, IsUnsigned: true, Base: ast.BTShort},
	"vbs":  {IsVector: true, IsBool: true, Base: ast.BTShort},
	"vsi":  {IsVector: true, IsSigned: true, Base: ast.BTInt},
	"vui":  {IsVector: true, IsUnsigned: true, Base: ast.BTInt},
	"vbi":  {IsVector: true, IsBool: true, Base: ast.BTInt},
	"vsll": {IsVector: true, IsSigned: true, Base: ast.BTLongLong},
	"vull": {IsVector: true, IsUnsigned: true, Base: ast.BTLongLong},
	"vbll": {IsVector: true, IsBool: true, Base: ast.BTLongLong},
	"vsq":  {IsVector: true, IsSigned: true, Base: ast.BTInt128},
	"vuq":  {IsVector: true, IsUnsigned: true, Base: ast.BTInt128},
	"vbq":  {IsVector: true, IsBool: true, Base: ast.BTInt128},
	"vp":   {IsVector: true, IsPixel: true, Base: ast.BTShort},
	"vf":   {IsVector: true, Base: ast.BTFloat},
	"vd":   {IsVector: true, Base: ast.BTDouble},
	"vop":  {IsOpaque: true},
}

// scalarBases maps the base type keywords, except "long", which needs
// its own two-token handling.
var scalarBases = map[string]ast.BaseType{
	"char":        ast.BTChar,
	"short":       ast.BTShort,
	"int":         ast.BTInt,
	"float":       ast.BTFloat,
	"double":      ast.BTDouble,
	"__int128":    ast.BTInt128,
	"_Float128":   ast.BTFloat128,
	"_Decimal32":  ast.BTDecimal32,
	"_Decimal64":  ast.BTDecimal64,
	"_Decimal128": ast.BTDecimal128,
	"__ibm128":    ast.BTIBM128,
}

// handlePointer consumes an optional '*' suffix.
func (p *Parser) handlePointer(t *ast.TypeInfo) {
	p.sc.ConsumeWhitespace()
	if p.sc.Peek() == '*' {
		t.IsPointer = true
		p.sc.Skip()
	}
}

// matchBasetype matches one of the scalar base type keywords, where
// "long" must be paired with a second "long", then an optional '*'.
func (p *Parser) matchBasetype(t *ast.TypeInfo) error {
	sc := p.sc
	sc.ConsumeWhitespace()
	oldpos := sc.Pos()
	token := sc.MatchIdentifier()
	if token == "" {
		return p.errf("missing base type in return type at column %d", p.col())
	}

	if token == "long" {
		sc.ConsumeWhitespace()
		if sc.MatchIdentifier() != "long" {
			return p.errf("incomplete 'long long' at column %d", oldpos+1)
		}
		t.Base = ast.BTLongLong
	} else if base, ok := scalarBases[token]; ok {
		if base.Extended() && !p.pol.ExtendedTypes {
			return p.errf("unrecognized base type at column %d", oldpos+1)
		}
		t.Base = base
	} else {
		return p.errf("unrecognized base type at column %d", oldpos+1)
	}

	p.handlePointer(t)
	return nil
}

// matchConstRestriction parses the restriction suffix of a const int
// argument. On entry the cursor rests on '<', '{', or '['.
//
//	<x>   restricts the constant to x bits, interpreted as unsigned
//	<x,y> restricts the constant to the inclusive range [x,y]
//	[x,y] same range, but checked only for constant arguments
//	{x,y} restricts the constant to one of the two values x, y
func (p *Parser) matchConstRestriction(t *ast.TypeInfo) error {
	sc := p.sc
	open := sc.Peek()
	sc.Skip()

	oldpos := sc.Pos()
	x, ok := sc.MatchInteger()
	if !ok {
		return p.errf("malformed integer at column %d", oldpos+1)
	}
	sc.ConsumeWhitespace()

	if open == '<' && sc.Peek() == '>' {
		t.Restr = ast.ResBits
		t.Val1 = x
		sc.Skip()
		return nil
	}

	if sc.Peek() != ',' {
		if open == '<' {
			return p.errf("malformed restriction at column %d", p.col())
		}
		return p.errf("missing comma at column %d", p.col())
	}
	sc.Skip()
	sc.ConsumeWhitespace()

	oldpos = sc.Pos()
	y, ok := sc.MatchInteger()
	if !ok {
		return p.errf("malformed integer at column %d", oldpos+1)
	}
	t.Val1 = x
	t.Val2 = y

	var closer byte
	switch open {
	case '<':
		t.Restr = ast.ResRange
		closer = '>'
	case '{':
		t.Restr = ast.ResValues
		closer = '}'
	default:
		t.Restr = ast.ResVarRange
		closer = ']'
	}

	sc.ConsumeWhitespace()
	if sc.Peek() != closer {
		return p.errf("malformed restriction at column %d", p.col())
	}
	sc.Skip()
	return nil
}

// matchType parses one type:
//
//	[const] [[signed|unsigned] <basetype> | <vectype>] [*]
//
// where "const" applies only to int (optionally signed or unsigned)
// and char, and a const int may carry a restriction suffix. Void is
// accepted only when voidOK (return position), bare or with '*'.
//
// A nil error with ok == false means no type starts at the cursor;
// the cursor is then unreliable and the caller must push back. A
// non-nil error is a diagnosed failure that aborts the run.
func (p *Parser) matchType(voidOK bool) (t ast.TypeInfo, ok bool, err error) {
	sc := p.sc
	sc.ConsumeWhitespace()
	oldpos := sc.Pos()

	token := sc.MatchIdentifier()
	if token == "" {
		return t, false, nil
	}

	if token == "void" {
		t.IsVoid = true
	}

	if token == "const" {
		t.IsConst = true
		sc.ConsumeWhitespace()
		oldpos = sc.Pos()
		token = sc.MatchIdentifier()
	}

	if vt, isVec := vectorShorthand[token]; isVec {
		if vt.Base == ast.BTInt128 && !p.pol.ExtendedTypes {
			return t, false, p.errf("unrecognized base type at column %d", oldpos+1)
		}
		isConst := t.IsConst
		t = vt
		t.IsConst = isConst
		if !t.IsOpaque {
			p.handlePointer(&t)
		}
		return t, true, nil
	}

	switch {
	case token == "signed":
		t.IsSigned = true
	case token == "unsigned":
		t.IsUnsigned = true
	case !t.IsVoid && !t.IsConst:
		// Not a modifier, so the token is the base type itself.
		sc.SetPos(oldpos)
		if err := p.matchBasetype(&t); err != nil {
			return t, false, err
		}
		return t, true, nil
	}

	if t.IsVoid {
		sc.ConsumeWhitespace()
		if sc.Peek() == '*' {
			t.IsPointer = true
			sc.Skip()
		} else if !voidOK {
			return t, false, nil
		}
		return t, true, nil
	}

	if t.IsConst {
		switch token {
		case "char":
			t.Base = ast.BTChar
			p.handlePointer(&t)
			return t, true, nil
		case "signed", "unsigned":
			sc.ConsumeWhitespace()
			oldpos = sc.Pos()
			if sc.MatchIdentifier() != "int" {
				return t, false, p.errf("'%s' not followed by 'int' at column %d",
					token, oldpos+1)
			}
		case "int":
		default:
			return t, false, p.errf("'const' not followed by 'int' at column %d",
				oldpos+1)
		}

		t.Base = ast.BTInt

		sc.ConsumeWhitespace()
		if ch := sc.Peek(); ch == '<' || ch == '{' || ch == '[' {
			if err := p.matchConstRestriction(&t); err != nil {
				return t, false, err
			}
		}
		return t, true, nil
	}

	// A bare signed/unsigned prefix, with the base type still to come.
	sc.ConsumeWhitespace()
	if err := p.matchBasetype(&t); err != nil {
		return t, false, err
	}
	return t, true, nil
}
