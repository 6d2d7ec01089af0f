package mangle

import (
	"errors"
	"testing"

	"github.com/ppctools/bifgen/pkg/ast"
)

func scalar(base ast.BaseType) ast.TypeInfo {
	return ast.TypeInfo{Base: base}
}

func vector(base ast.BaseType) ast.TypeInfo {
	return ast.TypeInfo{IsVector: true, Base: base}
}

func TestTypeID(t *testing.T) {
	tests := []struct {
		name     string
		ret      ast.TypeInfo
		args     []ast.TypeInfo
		expected string
	}{
		{
			"zero-arg int",
			scalar(ast.BTInt),
			nil,
			"si_ftype_v",
		},
		{
			"int of int",
			scalar(ast.BTInt),
			[]ast.TypeInfo{scalar(ast.BTInt)},
			"si_ftype_si",
		},
		{
			"void return",
			ast.TypeInfo{IsVoid: true},
			[]ast.TypeInfo{scalar(ast.BTLongLong)},
			"v_ftype_di",
		},
		{
			"void pointer return",
			ast.TypeInfo{IsVoid: true, IsPointer: true},
			[]ast.TypeInfo{scalar(ast.BTInt)},
			"pv_ftype_si",
		},
		{
			"pointer arg ignores pointee type",
			ast.TypeInfo{IsVoid: true},
			[]ast.TypeInfo{{IsVector: true, IsSigned: true, Base: ast.BTChar, IsPointer: true}},
			"v_ftype_pv",
		},
		{
			"vector signed char of itself",
			ast.TypeInfo{IsVector: true, IsSigned: true, Base: ast.BTChar},
			[]ast.TypeInfo{{IsVector: true, IsSigned: true, Base: ast.BTChar}},
			"v16qi_ftype_v16qi",
		},
		{
			"unsigned vector",
			ast.TypeInfo{IsVector: true, IsUnsigned: true, Base: ast.BTInt},
			[]ast.TypeInfo{vector(ast.BTFloat)},
			"uv4si_ftype_v4sf",
		},
		{
			"bool vector",
			ast.TypeInfo{IsVector: true, IsBool: true, Base: ast.BTLongLong},
			nil,
			"bv2di_ftype_v",
		},
		{
			"pixel vector",
			ast.TypeInfo{IsVector: true, IsPixel: true, Base: ast.BTShort},
			[]ast.TypeInfo{{IsVector: true, IsPixel: true, Base: ast.BTShort}},
			"vp8hi_ftype_vp8hi",
		},
		{
			"opaque vector",
			ast.TypeInfo{IsOpaque: true},
			[]ast.TypeInfo{{IsOpaque: true}},
			"opaque_ftype_opaque",
		},
		{
			"unsigned scalar",
			ast.TypeInfo{IsUnsigned: true, Base: ast.BTShort},
			[]ast.TypeInfo{{IsUnsigned: true, Base: ast.BTChar}},
			"uhi_ftype_uqi",
		},
		{
			"decimal scalars",
			scalar(ast.BTDecimal64),
			[]ast.TypeInfo{scalar(ast.BTDecimal32), scalar(ast.BTDecimal128)},
			"dd_ftype_sd_td",
		},
		{
			"extended precision",
			scalar(ast.BTFloat128),
			[]ast.TypeInfo{scalar(ast.BTIBM128), scalar(ast.BTInt128)},
			"tf_ftype_if_ti",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeID(tt.ret, tt.args)
			if err != nil {
				t.Fatalf("TypeID() error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("TypeID wrong. expected=%q, got=%q", tt.expected, got)
			}
		})
	}
}

func TestTypeIDIgnoresRestrictions(t *testing.T) {
	restricted := ast.TypeInfo{IsConst: true, Base: ast.BTInt,
		Restr: ast.ResBits, Val1: 4}
	plain := scalar(ast.BTInt)

	a, err := TypeID(scalar(ast.BTInt), []ast.TypeInfo{restricted})
	if err != nil {
		t.Fatal(err)
	}
	b, err := TypeID(scalar(ast.BTInt), []ast.TypeInfo{plain})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("restriction changed the id: %q vs %q", a, b)
	}
}

func TestTypeIDUnhandledVectorBase(t *testing.T) {
	_, err := TypeID(vector(ast.BTDecimal32), nil)
	if !errors.Is(err, ErrUnhandledType) {
		t.Fatalf("expected ErrUnhandledType, got %v", err)
	}
}
