package dex

// Pseudo-instruction signatures. Each is the full first code unit of a
// data block; the low byte is the NOP opcode, so a block parses as a NOP
// to anything that only looks at the opcode field.
const (
	PackedSwitchSignature uint16 = 0x0100
	SparseSwitchSignature uint16 = 0x0200
	ArrayDataSignature    uint16 = 0x0300
)

// MaxArgs is the capacity of DecodedInstruction.Args, the largest register
// list a packed variable-argument instruction can carry.
const MaxArgs = 5

// Instruction is a read-only, non-owning cursor into a method's code-unit
// stream. It never copies the stream and stays valid only as long as the
// backing slice does. The cursor trusts that its position is the start of
// an instruction; stream alignment is the verifier's job. It carries no
// end-of-method knowledge beyond the slice length, so iteration must be
// bounded by the caller.
type Instruction struct {
	stream []uint16
	pos    int
}

// At anchors a cursor at a code-unit offset within stream.
func At(stream []uint16, pos int) (Instruction, error) {
	if pos < 0 || pos >= len(stream) {
		return Instruction{}, ErrTruncatedStream
	}
	return Instruction{stream: stream, pos: pos}, nil
}

// Pos returns the cursor's offset in code units from the stream start.
func (in Instruction) Pos() int { return in.pos }

// Opcode returns the low 8 bits of the code unit at the cursor. It is a
// pure extraction; unassigned values are surfaced by SizeInCodeUnits and
// Decode, not here.
func (in Instruction) Opcode() Opcode {
	return Opcode(in.stream[in.pos] & 0xff)
}

// Format returns the operand layout of the instruction's opcode.
func (in Instruction) Format() Format {
	return table[in.Opcode()].format
}

// Name returns the display mnemonic of the instruction's opcode.
func (in Instruction) Name() string {
	return table[in.Opcode()].name
}

// IsPseudoInstruction reports whether the cursor sits on a switch-table or
// array-data block rather than an executable instruction.
func (in Instruction) IsPseudoInstruction() bool {
	switch in.stream[in.pos] {
	case PackedSwitchSignature, SparseSwitchSignature, ArrayDataSignature:
		return true
	}
	return false
}

// SizeInCodeUnits returns the instruction's total length. For the fixed
// formats the size depends on the opcode alone; for the three
// pseudo-instruction blocks it is computed from the entry count embedded
// in the block's own payload:
//
//	packed-switch  4 + 2*entries
//	sparse-switch  2 + 4*entries
//	array-data     4 + ceil(entries*width/2)
//
// An unassigned opcode is an error. A pseudo-instruction header that does
// not fit in the stream is reported as truncation; the declared entry
// count itself is NOT checked against the stream end here, callers must
// compare the returned size with their bound before trusting it.
func (in Instruction) SizeInCodeUnits() (int, error) {
	op := in.Opcode()
	if !op.IsValid() {
		return 0, &InvalidOpcodeError{Opcode: op, Pos: in.pos}
	}
	if op == Nop {
		switch in.stream[in.pos] {
		case PackedSwitchSignature:
			entries, err := in.fetch16(1)
			if err != nil {
				return 0, err
			}
			return 4 + 2*int(entries), nil
		case SparseSwitchSignature:
			entries, err := in.fetch16(1)
			if err != nil {
				return 0, err
			}
			return 2 + 4*int(entries), nil
		case ArrayDataSignature:
			width, err := in.fetch16(1)
			if err != nil {
				return 0, err
			}
			entries, err := in.fetch32(2)
			if err != nil {
				return 0, err
			}
			byteCount := uint64(entries) * uint64(width)
			return 4 + int((byteCount+1)/2), nil
		}
	}
	return table[op].format.SizeInCodeUnits(), nil
}

// Next returns a cursor positioned immediately after the current
// instruction. It always moves forward by at least one code unit and
// fails once the next position would leave the stream.
func (in Instruction) Next() (Instruction, error) {
	size, err := in.SizeInCodeUnits()
	if err != nil {
		return Instruction{}, err
	}
	return At(in.stream, in.pos+size)
}

// CodeUnit returns the raw code unit at the given offset from the cursor,
// bounds-checked against the stream. Formatting layers use it to dump the
// undecoded encoding.
func (in Instruction) CodeUnit(offset int) (uint16, error) {
	return in.fetch16(offset)
}

// fetch16 reads the code unit at the given offset from the cursor.
func (in Instruction) fetch16(offset int) (uint16, error) {
	i := in.pos + offset
	if i >= len(in.stream) {
		return 0, ErrTruncatedStream
	}
	return in.stream[i], nil
}

// fetch32 reads two consecutive code units, low unit first.
func (in Instruction) fetch32(offset int) (uint32, error) {
	lo, err := in.fetch16(offset)
	if err != nil {
		return 0, err
	}
	hi, err := in.fetch16(offset + 1)
	if err != nil {
		return 0, err
	}
	return uint32(lo) | uint32(hi)<<16, nil
}

// fetch64 reads four consecutive code units, low unit first.
func (in Instruction) fetch64(offset int) (uint64, error) {
	lo, err := in.fetch32(offset)
	if err != nil {
		return 0, err
	}
	hi, err := in.fetch32(offset + 2)
	if err != nil {
		return 0, err
	}
	return uint64(lo) | uint64(hi)<<32, nil
}

// instA returns the nibble at bits 8..11 of the first code unit.
func (in Instruction) instA() uint32 {
	return uint32(in.stream[in.pos]>>8) & 0x0f
}

// instB returns the nibble at bits 12..15 of the first code unit.
func (in Instruction) instB() uint32 {
	return uint32(in.stream[in.pos] >> 12)
}

// instAA returns the high byte of the first code unit.
func (in Instruction) instAA() uint32 {
	return uint32(in.stream[in.pos] >> 8)
}
