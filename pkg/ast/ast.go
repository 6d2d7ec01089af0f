// Package ast defines the typed model produced by parsing the built-in
// function and overload descriptor files.
package ast

// BaseType enumerates the legal element types for an argument or
// return type.
type BaseType int

const (
	BTChar BaseType = iota
	BTShort
	BTInt
	BTLongLong
	BTFloat
	BTDouble
	BTInt128
	BTFloat128
	BTDecimal32
	BTDecimal64
	BTDecimal128
	BTIBM128
)

func (b BaseType) String() string {
	names := []string{"char", "short", "int", "long long", "float",
		"double", "__int128", "_Float128", "_Decimal32", "_Decimal64",
		"_Decimal128", "__ibm128"}
	if int(b) < len(names) {
		return names[b]
	}
	return "?"
}

// Extended reports whether the base type belongs to the extended
// vocabulary (128-bit and decimal types) that policy may disable.
func (b BaseType) Extended() bool {
	switch b {
	case BTInt128, BTFloat128, BTDecimal32, BTDecimal64, BTDecimal128, BTIBM128:
		return true
	}
	return false
}

// Restriction is the way a const int argument value can be limited.
type Restriction int

const (
	// ResNone places no limit on the value.
	ResNone Restriction = iota
	// ResBits limits the value to Val1 bits, interpreted as unsigned.
	ResBits
	// ResRange limits the value to [Val1, Val2], checked always.
	ResRange
	// ResVarRange limits the value to [Val1, Val2], checked only when
	// the argument is a compile-time constant.
	ResVarRange
	// ResValues requires the value to equal Val1 or Val2.
	ResValues
)

func (r Restriction) String() string {
	names := []string{"RES_NONE", "RES_BITS", "RES_RANGE",
		"RES_VAR_RANGE", "RES_VALUES"}
	if int(r) < len(names) {
		return names[r]
	}
	return "?"
}

// TypeInfo describes one return or argument type.
type TypeInfo struct {
	IsVoid     bool
	IsConst    bool
	IsVector   bool
	IsSigned   bool
	IsUnsigned bool
	IsBool     bool
	IsPixel    bool
	IsPointer  bool
	IsOpaque   bool
	Base       BaseType
	Restr      Restriction
	Val1       int
	Val2       int
}

// RestrOpnd records a restricted operand of a prototype. Opnd is the
// 1-based argument position.
type RestrOpnd struct {
	Opnd  int
	Restr Restriction
	Val1  int
	Val2  int
}

// Prototype is a parsed function signature.
type Prototype struct {
	RetType    TypeInfo
	Name       string
	Args       []TypeInfo
	RestrOpnds []RestrOpnd
}

// FunctionKind is the mutually exclusive purity modifier preceding a
// built-in prototype.
type FunctionKind int

const (
	FKNone FunctionKind = iota
	FKConst
	FKPure
	FKFPMath
)

func (k FunctionKind) String() string {
	names := []string{"none", "const", "pure", "fpmath"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// AttrSet is the closed vocabulary of built-in function attributes.
type AttrSet struct {
	IsInit     bool
	IsSet      bool
	IsExtract  bool
	IsNosoft   bool
	IsLdvec    bool
	IsStvec    bool
	IsReve     bool
	IsPred     bool
	IsHTM      bool
	IsHTMSPR   bool
	IsHTMCR    bool
	IsMMA      bool
	IsNo32Bit  bool
	IsCPU      bool
	IsLdstmask bool
}

// Builtin is one entry from the built-in function file.
type Builtin struct {
	Stanza  Stanza
	Kind    FunctionKind
	Proto   Prototype
	ID      string
	Pattern string
	Attrs   AttrSet
	TypeID  string
}

// OverloadStanza names one overload group: its internal identifier,
// the ABI-visible external name, and the back-end internal name.
type OverloadStanza struct {
	ID         string
	ExternName string
	InternName string
}

// Overload is one entry from the overload file. Stanza indexes the
// model's OvldStanzas list; ID references a built-in id.
type Overload struct {
	Stanza int
	Proto  Prototype
	ID     string
	TypeID string
}
