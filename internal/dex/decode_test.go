package dex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds a cursor over a hand-assembled stream of code units.
func at(t *testing.T, stream ...uint16) Instruction {
	t.Helper()
	in, err := At(stream, 0)
	require.NoError(t, err)
	return in
}

// unit0 packs the first code unit of an instruction: opcode in the low
// byte, hi in the high byte.
func unit0(op Opcode, hi uint8) uint16 {
	return uint16(op) | uint16(hi)<<8
}

func decode(t *testing.T, stream ...uint16) DecodedInstruction {
	t.Helper()
	d, err := at(t, stream...).Decode()
	require.NoError(t, err)
	return d
}

func TestDecodeFormat10x(t *testing.T) {
	d := decode(t, unit0(Nop, 0))
	assert.Equal(t, DecodedInstruction{Opcode: Nop}, d)
}

func TestDecodeFormat12x(t *testing.T) {
	// move vA=3, vB=12: the two registers share the high byte as nibbles.
	d := decode(t, unit0(Move, 3|12<<4))
	assert.Equal(t, Move, d.Opcode)
	assert.Equal(t, uint32(3), d.VA)
	assert.Equal(t, uint32(12), d.VB)
}

func TestDecodeFormat11n(t *testing.T) {
	// const/4 v1, #-1: the 4-bit literal 0xf sign-extends.
	d := decode(t, unit0(Const4, 1|0xf<<4))
	assert.Equal(t, uint32(1), d.VA)
	assert.Equal(t, int32(-1), int32(d.VB))

	d = decode(t, unit0(Const4, 0|7<<4))
	assert.Equal(t, int32(7), int32(d.VB))
}

func TestDecodeFormat11x(t *testing.T) {
	d := decode(t, unit0(Return, 200))
	assert.Equal(t, uint32(200), d.VA)
}

func TestDecodeFormat10t(t *testing.T) {
	// An 8-bit offset pattern 0xff is -1, not 255.
	d := decode(t, unit0(Goto, 0xff))
	assert.Equal(t, int32(-1), int32(d.VA))
}

func TestDecodeFormat20t(t *testing.T) {
	d := decode(t, unit0(Goto16, 0), 0x8000)
	assert.Equal(t, int32(-32768), int32(d.VA))
}

func TestDecodeFormat20bc(t *testing.T) {
	d := decode(t, unit0(ThrowVerificationError, 5), 0x1234)
	assert.Equal(t, uint32(5), d.VA)
	assert.Equal(t, uint32(0x1234), d.VB)
}

func TestDecodeFormat22x(t *testing.T) {
	d := decode(t, unit0(MoveFrom16, 18), 1000)
	assert.Equal(t, uint32(18), d.VA)
	assert.Equal(t, uint32(1000), d.VB)
}

func TestDecodeFormat21t(t *testing.T) {
	d := decode(t, unit0(IfEqz, 2), 0xfffe)
	assert.Equal(t, uint32(2), d.VA)
	assert.Equal(t, int32(-2), int32(d.VB))
}

func TestDecodeFormat21s(t *testing.T) {
	d := decode(t, unit0(Const16, 0), 0xff9c)
	assert.Equal(t, int32(-100), int32(d.VB))
}

func TestDecodeFormat21h(t *testing.T) {
	// The raw high-order pattern is carried unshifted and unextended.
	d := decode(t, unit0(ConstHigh16, 1), 0x8765)
	assert.Equal(t, uint32(0x8765), d.VB)
}

func TestDecodeFormat21c(t *testing.T) {
	d := decode(t, unit0(ConstString, 7), 42)
	assert.Equal(t, uint32(7), d.VA)
	assert.Equal(t, uint32(42), d.VB)
}

func TestDecodeFormat23x(t *testing.T) {
	d := decode(t, unit0(AddInt, 1), 2|3<<8)
	assert.Equal(t, uint32(1), d.VA)
	assert.Equal(t, uint32(2), d.VB)
	assert.Equal(t, uint32(3), d.VC)
}

func TestDecodeFormat22b(t *testing.T) {
	// add-int/lit8 v4, v5, #-1: the literal byte sign-extends, the
	// register byte does not.
	d := decode(t, unit0(AddIntLit8, 4), 5|0xff<<8)
	assert.Equal(t, uint32(4), d.VA)
	assert.Equal(t, uint32(5), d.VB)
	assert.Equal(t, int32(-1), int32(d.VC))
}

func TestDecodeFormat22t(t *testing.T) {
	d := decode(t, unit0(IfEq, 1|2<<4), 0xffff)
	assert.Equal(t, uint32(1), d.VA)
	assert.Equal(t, uint32(2), d.VB)
	assert.Equal(t, int32(-1), int32(d.VC))
}

func TestDecodeFormat22s(t *testing.T) {
	d := decode(t, unit0(AddIntLit16, 3|4<<4), 0xffce)
	assert.Equal(t, uint32(3), d.VA)
	assert.Equal(t, uint32(4), d.VB)
	assert.Equal(t, int32(-50), int32(d.VC))
}

func TestDecodeFormat22c(t *testing.T) {
	// iget vA, vB, field@CCCC: the field index stays zero-extended.
	d := decode(t, unit0(Iget, 2|3<<4), 0xffff)
	assert.Equal(t, uint32(2), d.VA)
	assert.Equal(t, uint32(3), d.VB)
	assert.Equal(t, uint32(0xffff), d.VC)
}

func TestDecodeFormat32x(t *testing.T) {
	d := decode(t, unit0(Move16, 0), 300, 4000)
	assert.Equal(t, uint32(300), d.VA)
	assert.Equal(t, uint32(4000), d.VB)
}

func TestDecodeFormat30t(t *testing.T) {
	// goto/32 -2: low unit first.
	d := decode(t, unit0(Goto32, 0), 0xfffe, 0xffff)
	assert.Equal(t, int32(-2), int32(d.VA))
}

func TestDecodeFormat31t(t *testing.T) {
	d := decode(t, unit0(PackedSwitch, 5), 0x0002, 0x0001)
	assert.Equal(t, uint32(5), d.VA)
	assert.Equal(t, uint32(0x00010002), d.VB)
}

func TestDecodeFormat31i(t *testing.T) {
	d := decode(t, unit0(Const, 0), 0x0000, 0x8000)
	assert.Equal(t, int32(-2147483648), int32(d.VB))
}

func TestDecodeFormat31c(t *testing.T) {
	d := decode(t, unit0(ConstStringJumbo, 9), 0x2345, 0x0001)
	assert.Equal(t, uint32(9), d.VA)
	assert.Equal(t, uint32(0x00012345), d.VB)
}

func TestDecodeFormat35c(t *testing.T) {
	// invoke-virtual {v0, v1, v2, v3, v4}, meth@16: registers C..F are
	// nibbles of unit 2, the fifth comes from the leading byte.
	d := decode(t, unit0(InvokeVirtual, 4|5<<4), 16, 0x3210)
	assert.Equal(t, uint32(5), d.VA)
	assert.Equal(t, uint32(16), d.VB)
	assert.Equal(t, [MaxArgs]uint32{0, 1, 2, 3, 4}, d.Args)
	assert.Equal(t, uint32(0), d.VC)

	// Two registers: the unused slots stay zero.
	d = decode(t, unit0(FilledNewArray, 0|2<<4), 7, 0x0096)
	assert.Equal(t, uint32(2), d.VA)
	assert.Equal(t, [MaxArgs]uint32{6, 9, 0, 0, 0}, d.Args)
	assert.Equal(t, uint32(6), d.VC)
}

func TestDecodeFormat35cCountTooLarge(t *testing.T) {
	_, err := at(t, unit0(InvokeVirtual, 6<<4), 16, 0x3210).Decode()
	var rangeErr *RegisterRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint32(6), rangeErr.Count)
}

func TestDecodeFormat3rc(t *testing.T) {
	// invoke-static/range with start register 5 and count 4 names
	// v5..v8.
	d := decode(t, unit0(InvokeStaticRange, 4), 9, 5)
	assert.Equal(t, uint32(4), d.VA)
	assert.Equal(t, uint32(9), d.VB)
	assert.Equal(t, uint32(5), d.VC)
	assert.Equal(t, [MaxArgs]uint32{5, 6, 7, 8, 0}, d.Args)
}

func TestDecodeFormat3rcCountTooLarge(t *testing.T) {
	_, err := at(t, unit0(InvokeStaticRange, 6), 9, 5).Decode()
	var rangeErr *RegisterRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint32(6), rangeErr.Count)
}

func TestDecodeFormat51l(t *testing.T) {
	d := decode(t, unit0(ConstWide, 1), 0xcdef, 0x89ab, 0x4567, 0x0123)
	assert.Equal(t, uint32(1), d.VA)
	assert.Equal(t, uint64(0x0123456789abcdef), d.VBWide)
}

func TestDecodeInvalidOpcode(t *testing.T) {
	_, err := at(t, unit0(Unused3E, 0)).Decode()
	var invalid *InvalidOpcodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Unused3E, invalid.Opcode)
}

func TestDecodePseudoInstructionRejected(t *testing.T) {
	stream := []uint16{PackedSwitchSignature, 1, 0, 0, 0, 0}
	in, err := At(stream, 0)
	require.NoError(t, err)
	_, err = in.Decode()
	assert.ErrorIs(t, err, ErrPseudoInstruction)
}

func TestDecodeTruncatedStream(t *testing.T) {
	_, err := at(t, unit0(MoveFrom16, 1)).Decode()
	assert.ErrorIs(t, err, ErrTruncatedStream)

	_, err = at(t, unit0(ConstWide, 1), 0, 0).Decode()
	assert.ErrorIs(t, err, ErrTruncatedStream)
}

func TestDecodeIsDeterministic(t *testing.T) {
	in := at(t, unit0(AddIntLit8, 4), 5|0xff<<8)
	first, err := in.Decode()
	require.NoError(t, err)
	second, err := in.Decode()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, errA := at(t, unit0(Unused73, 0)).Decode()
	_, errB := at(t, unit0(Unused73, 0)).Decode()
	assert.Equal(t, errors.Unwrap(errA), errors.Unwrap(errB))
	assert.Equal(t, errA.Error(), errB.Error())
}
