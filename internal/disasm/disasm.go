// Package disasm renders decoded instructions as dexdump-style text. It
// sits outside the decode hot path and is the only consumer of the
// symbol-resolution collaborator.
package disasm

import (
	"fmt"
	"strings"

	"github.com/andesvm/dexcode/internal/dex"
)

// SymbolSource resolves symbol-pool indices to display names. The decoder
// never touches it; reference operands stay raw indices until formatting.
// Implementations report ok=false for out-of-range indices, in which case
// the raw index is printed instead.
type SymbolSource interface {
	StringSymbol(index uint32) (string, bool)
	TypeSymbol(index uint32) (string, bool)
	FieldSymbol(index uint32) (string, bool)
	MethodSymbol(index uint32) (string, bool)
}

// DumpString renders one instruction, resolving reference operands through
// syms when non-nil. Pseudo-instructions render as a block summary rather
// than operands.
func DumpString(in dex.Instruction, syms SymbolSource) (string, error) {
	if in.IsPseudoInstruction() {
		return dumpPseudo(in)
	}
	d, err := in.Decode()
	if err != nil {
		return "", err
	}
	op := d.Opcode

	switch dex.FormatOf(op) {
	case dex.Format10x:
		return op.Name(), nil
	case dex.Format12x:
		return fmt.Sprintf("%s v%d, v%d", op, d.VA, d.VB), nil
	case dex.Format11n:
		return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int32(d.VB)), nil
	case dex.Format11x:
		return fmt.Sprintf("%s v%d", op, d.VA), nil
	case dex.Format10t, dex.Format20t:
		return fmt.Sprintf("%s %+d", op, int32(d.VA)), nil
	case dex.Format20bc:
		return fmt.Sprintf("%s %d, kind@%d", op, d.VA, d.VB), nil
	case dex.Format22x:
		return fmt.Sprintf("%s v%d, v%d", op, d.VA, d.VB), nil
	case dex.Format21t:
		return fmt.Sprintf("%s v%d, %+d", op, d.VA, int32(d.VB)), nil
	case dex.Format21s:
		return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int32(d.VB)), nil
	case dex.Format21h:
		// The stored unit is the high end of the constant.
		if op == dex.ConstWideHigh16 {
			return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int64(d.VB)<<48), nil
		}
		return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int32(d.VB)<<16), nil
	case dex.Format21c:
		return fmt.Sprintf("%s v%d, %s", op, d.VA, reference(op, d.VB, syms)), nil
	case dex.Format23x:
		return fmt.Sprintf("%s v%d, v%d, v%d", op, d.VA, d.VB, d.VC), nil
	case dex.Format22b:
		return fmt.Sprintf("%s v%d, v%d, #%+d", op, d.VA, d.VB, int32(d.VC)), nil
	case dex.Format22t:
		return fmt.Sprintf("%s v%d, v%d, %+d", op, d.VA, d.VB, int32(d.VC)), nil
	case dex.Format22s:
		return fmt.Sprintf("%s v%d, v%d, #%+d", op, d.VA, d.VB, int32(d.VC)), nil
	case dex.Format22c:
		return fmt.Sprintf("%s v%d, v%d, %s", op, d.VA, d.VB, reference(op, d.VC, syms)), nil
	case dex.Format32x:
		return fmt.Sprintf("%s v%d, v%d", op, d.VA, d.VB), nil
	case dex.Format30t:
		return fmt.Sprintf("%s %+d", op, int32(d.VA)), nil
	case dex.Format31t:
		return fmt.Sprintf("%s v%d, %+d", op, d.VA, int32(d.VB)), nil
	case dex.Format31i:
		return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int32(d.VB)), nil
	case dex.Format31c:
		return fmt.Sprintf("%s v%d, %s", op, d.VA, reference(op, d.VB, syms)), nil
	case dex.Format35c:
		regs := make([]string, 0, d.VA)
		for i := uint32(0); i < d.VA; i++ {
			regs = append(regs, fmt.Sprintf("v%d", d.Args[i]))
		}
		return fmt.Sprintf("%s {%s}, %s", op, strings.Join(regs, ", "), reference(op, d.VB, syms)), nil
	case dex.Format3rc:
		if d.VA == 0 {
			return fmt.Sprintf("%s {}, %s", op, reference(op, d.VB, syms)), nil
		}
		return fmt.Sprintf("%s {v%d .. v%d}, %s", op, d.VC, d.VC+d.VA-1, reference(op, d.VB, syms)), nil
	case dex.Format51l:
		return fmt.Sprintf("%s v%d, #%+d", op, d.VA, int64(d.VBWide)), nil
	}
	return "", fmt.Errorf("unhandled format %s for opcode %s", dex.FormatOf(op), op)
}

// DumpHex renders the instruction's raw code units, padded with ellipsis
// markers up to codeUnits columns for alignment across a listing.
func DumpHex(in dex.Instruction, codeUnits int) (string, error) {
	size, err := in.SizeInCodeUnits()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 0; i < size && i < codeUnits; i++ {
		u, err := in.CodeUnit(i)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%04x ", u)
	}
	for i := size; i < codeUnits; i++ {
		sb.WriteString("     ")
	}
	if size > codeUnits {
		sb.WriteString("...")
	}
	return strings.TrimRight(sb.String(), " "), nil
}

func dumpPseudo(in dex.Instruction) (string, error) {
	if p, err := in.PackedSwitchPayload(); err == nil {
		return fmt.Sprintf("packed-switch-data (%d entries, first key %d)", len(p.Targets), p.FirstKey), nil
	}
	if p, err := in.SparseSwitchPayload(); err == nil {
		return fmt.Sprintf("sparse-switch-data (%d entries)", len(p.Keys)), nil
	}
	p, err := in.ArrayDataPayload()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("array-data (%d entries of width %d)", p.ElementCount, p.ElementWidth), nil
}

// reference resolves a symbol-pool operand according to the opcode's
// reference kind, falling back to the raw index when unresolvable.
func reference(op dex.Opcode, index uint32, syms SymbolSource) string {
	if syms != nil {
		switch {
		case op == dex.ConstString || op == dex.ConstStringJumbo:
			if s, ok := syms.StringSymbol(index); ok {
				return fmt.Sprintf("%q", s)
			}
		case op.VerifyTypeArgumentB()&dex.VerifyRegBMethod != 0:
			if s, ok := syms.MethodSymbol(index); ok {
				return s
			}
		case isTypeRef(op):
			if s, ok := syms.TypeSymbol(index); ok {
				return s
			}
		case isFieldRef(op):
			if s, ok := syms.FieldSymbol(index); ok {
				return s
			}
		}
	}
	return fmt.Sprintf("thing@%d", index)
}

func isTypeRef(op dex.Opcode) bool {
	v := dex.VerifyFlagsOf(op)
	return v&(dex.VerifyRegBType|dex.VerifyRegBNewInstance|dex.VerifyRegCType|dex.VerifyRegCNewArray) != 0
}

func isFieldRef(op dex.Opcode) bool {
	v := dex.VerifyFlagsOf(op)
	return v&(dex.VerifyRegBField|dex.VerifyRegCField) != 0
}
