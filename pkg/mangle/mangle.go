// Package mangle builds canonical function type-descriptor
// identifiers. Two prototypes with the same return and argument type
// shapes mangle to the same id, which serves both as the dedup key in
// the type registry and as the generated declarator name.
package mangle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppctools/bifgen/pkg/ast"
)

// ErrUnhandledType reports a base type with no mode encoding. The
// parser never produces one, so hitting this is a programming error.
var ErrUnhandledType = errors.New("unhandled base type")

// vectorModes encodes vector element types as mode strings.
var vectorModes = map[ast.BaseType]string{
	ast.BTChar:     "16qi",
	ast.BTShort:    "8hi",
	ast.BTInt:      "4si",
	ast.BTLongLong: "2di",
	ast.BTFloat:    "4sf",
	ast.BTDouble:   "2df",
	ast.BTInt128:   "1ti",
	ast.BTFloat128: "1tf",
}

// scalarModes encodes scalar base types as mode strings.
var scalarModes = map[ast.BaseType]string{
	ast.BTChar:       "qi",
	ast.BTShort:      "hi",
	ast.BTInt:        "si",
	ast.BTLongLong:   "di",
	ast.BTFloat:      "sf",
	ast.BTDouble:     "df",
	ast.BTInt128:     "ti",
	ast.BTFloat128:   "tf",
	ast.BTDecimal32:  "sd",
	ast.BTDecimal64:  "dd",
	ast.BTDecimal128: "td",
	ast.BTIBM128:     "if",
}

func writeVector(sb *strings.Builder, t ast.TypeInfo) error {
	if t.IsBool {
		sb.WriteByte('b')
	}
	sb.WriteByte('v')
	if t.IsPixel {
		sb.WriteString("p8hi")
		return nil
	}
	mode, ok := vectorModes[t.Base]
	if !ok {
		return fmt.Errorf("%w: vector of %s", ErrUnhandledType, t.Base)
	}
	sb.WriteString(mode)
	return nil
}

func writeScalar(sb *strings.Builder, t ast.TypeInfo) error {
	mode, ok := scalarModes[t.Base]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnhandledType, t.Base)
	}
	sb.WriteString(mode)
	return nil
}

func writeValue(sb *strings.Builder, t ast.TypeInfo) error {
	if t.IsOpaque {
		sb.WriteString("opaque")
		return nil
	}
	if t.IsUnsigned {
		sb.WriteByte('u')
	}
	if t.IsVector {
		return writeVector(sb, t)
	}
	return writeScalar(sb, t)
}

// TypeID returns the canonical descriptor id for a signature. Pointer
// return types mangle to the void-pointer fragment; pointer arguments
// always mangle to the generic pointer fragment regardless of pointee.
// Restrictions never participate.
func TypeID(ret ast.TypeInfo, args []ast.TypeInfo) (string, error) {
	var sb strings.Builder

	switch {
	case ret.IsPointer:
		sb.WriteString("pv")
	case ret.IsVoid:
		sb.WriteByte('v')
	default:
		if err := writeValue(&sb, ret); err != nil {
			return "", err
		}
	}

	sb.WriteString("_ftype")

	if len(args) == 0 {
		sb.WriteString("_v")
		return sb.String(), nil
	}
	for _, arg := range args {
		sb.WriteByte('_')
		if arg.IsPointer {
			sb.WriteString("pv")
			continue
		}
		if err := writeValue(&sb, arg); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
