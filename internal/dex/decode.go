package dex

// DecodedInstruction is the normalized operand record of a single
// instruction. It is an owned snapshot with no tie to the originating
// stream. Signed immediates and branch offsets are carried sign-extended
// in two's complement, so reinterpret the field (int32(d.VB)) to read
// them; register and symbol-pool indices are zero-extended.
type DecodedInstruction struct {
	VA     uint32        // first register or operand
	VB     uint32        // second register, index or immediate
	VBWide uint64        // 64-bit immediate, Format51l only
	VC     uint32        // third register, index or immediate
	Args   [MaxArgs]uint32 // packed or synthesized register list (VA holds the count)
	Opcode Opcode
}

// Decode extracts the instruction's operands according to its opcode's
// format. It fails on unassigned opcodes, on pseudo-instruction blocks
// (ErrPseudoInstruction — those are data and must be sized and read via
// the payload accessors instead), on streams too short for the format,
// and on variable-argument register counts above MaxArgs.
func (in Instruction) Decode() (DecodedInstruction, error) {
	op := in.Opcode()
	if !op.IsValid() {
		return DecodedInstruction{}, &InvalidOpcodeError{Opcode: op, Pos: in.pos}
	}
	if in.IsPseudoInstruction() {
		return DecodedInstruction{}, ErrPseudoInstruction
	}

	d := DecodedInstruction{Opcode: op}
	var err error

	switch table[op].format {
	case Format10x:
		// No operands.

	case Format12x:
		d.VA = in.instA()
		d.VB = in.instB()

	case Format11n:
		d.VA = in.instA()
		d.VB = signExtend(in.instB(), 4)

	case Format11x:
		d.VA = in.instAA()

	case Format10t:
		d.VA = signExtend(in.instAA(), 8)

	case Format20bc:
		d.VA = in.instAA()
		if d.VB, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format20t:
		if d.VA, err = in.fetchS16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format22x, Format21c:
		d.VA = in.instAA()
		if d.VB, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format21t, Format21s:
		d.VA = in.instAA()
		if d.VB, err = in.fetchS16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format21h:
		// The 16 bits are the high end of a 32- or 64-bit value; the
		// shift is left to the consumer, which knows the width.
		d.VA = in.instAA()
		if d.VB, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format23x:
		d.VA = in.instAA()
		bc, err := in.fetch16(1)
		if err != nil {
			return DecodedInstruction{}, err
		}
		d.VB = uint32(bc & 0xff)
		d.VC = uint32(bc >> 8)

	case Format22b:
		d.VA = in.instAA()
		bc, err := in.fetch16(1)
		if err != nil {
			return DecodedInstruction{}, err
		}
		d.VB = uint32(bc & 0xff)
		d.VC = signExtend(uint32(bc>>8), 8)

	case Format22t, Format22s:
		d.VA = in.instA()
		d.VB = in.instB()
		if d.VC, err = in.fetchS16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format22c:
		d.VA = in.instA()
		d.VB = in.instB()
		if d.VC, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format32x:
		if d.VA, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}
		if d.VB, err = in.fetchU16(2); err != nil {
			return DecodedInstruction{}, err
		}

	case Format30t:
		if d.VA, err = in.fetch32(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format31t, Format31i, Format31c:
		d.VA = in.instAA()
		if d.VB, err = in.fetch32(1); err != nil {
			return DecodedInstruction{}, err
		}

	case Format35c:
		count := in.instB()
		if count > MaxArgs {
			return DecodedInstruction{}, &RegisterRangeError{Opcode: op, Count: count}
		}
		d.VA = count
		if d.VB, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}
		regs, err := in.fetch16(2)
		if err != nil {
			return DecodedInstruction{}, err
		}
		// Registers C..F sit in the second operand unit; the fifth (G) is
		// folded into the leading byte of the instruction.
		switch count {
		case 5:
			d.Args[4] = in.instA()
			fallthrough
		case 4:
			d.Args[3] = uint32(regs>>12) & 0x0f
			fallthrough
		case 3:
			d.Args[2] = uint32(regs>>8) & 0x0f
			fallthrough
		case 2:
			d.Args[1] = uint32(regs>>4) & 0x0f
			fallthrough
		case 1:
			d.Args[0] = uint32(regs) & 0x0f
			d.VC = d.Args[0]
		}

	case Format3rc:
		count := in.instAA()
		if count > MaxArgs {
			return DecodedInstruction{}, &RegisterRangeError{Opcode: op, Count: count}
		}
		d.VA = count
		if d.VB, err = in.fetchU16(1); err != nil {
			return DecodedInstruction{}, err
		}
		if d.VC, err = in.fetchU16(2); err != nil {
			return DecodedInstruction{}, err
		}
		for i := uint32(0); i < count; i++ {
			d.Args[i] = d.VC + i
		}

	case Format51l:
		d.VA = in.instAA()
		if d.VBWide, err = in.fetch64(1); err != nil {
			return DecodedInstruction{}, err
		}
	}

	return d, nil
}

// fetchU16 reads a zero-extended code unit.
func (in Instruction) fetchU16(offset int) (uint32, error) {
	v, err := in.fetch16(offset)
	return uint32(v), err
}

// fetchS16 reads a code unit sign-extended to 32 bits.
func (in Instruction) fetchS16(offset int) (uint32, error) {
	v, err := in.fetch16(offset)
	return uint32(int32(int16(v))), err
}

// signExtend widens the low `bits` bits of v to a signed 32-bit value.
func signExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}
