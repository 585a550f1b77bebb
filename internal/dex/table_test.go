package dex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableIsFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := Opcode(i)
		assert.NotEmpty(t, op.Name(), "opcode 0x%02x has no name", i)
		assert.Less(t, int(FormatOf(op)), len(formatSizes), "opcode 0x%02x has an out-of-range format", i)
	}
}

func TestUnassignedOpcodes(t *testing.T) {
	unassigned := 0
	for i := 0; i < 256; i++ {
		op := Opcode(i)
		if op.IsValid() {
			assert.NotContains(t, op.Name(), "unused", "assigned opcode 0x%02x has a placeholder name", i)
			continue
		}
		unassigned++
		assert.Equal(t, fmt.Sprintf("unused-%02x", i), op.Name())
		assert.Equal(t, Format10x, FormatOf(op))
		assert.Equal(t, VerifyError, VerifyFlagsOf(op))
	}
	// 0x3e..0x43, 0x73, 0x79, 0x7a, 0xe3..0xec and 0xee..0xff.
	assert.Equal(t, 37, unassigned)
}

func TestTableIsIdempotent(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := Opcode(i)
		assert.Equal(t, op.Name(), op.Name())
		assert.Equal(t, FormatOf(op), FormatOf(op))
		assert.Equal(t, FlagsOf(op), FlagsOf(op))
		assert.Equal(t, VerifyFlagsOf(op), VerifyFlagsOf(op))
	}
}

func TestFlowClassification(t *testing.T) {
	tests := []struct {
		op            Opcode
		branch        bool
		cont          bool
		sw            bool
		throw         bool
		ret           bool
		invoke        bool
		basicBlockEnd bool
	}{
		{op: Nop, cont: true},
		{op: Move, cont: true},
		{op: ReturnVoid, ret: true, basicBlockEnd: true},
		{op: Return, ret: true, basicBlockEnd: true},
		{op: Goto, branch: true, basicBlockEnd: true},
		{op: Goto32, branch: true, basicBlockEnd: true},
		{op: IfEq, branch: true, cont: true, basicBlockEnd: true},
		{op: IfLez, branch: true, cont: true, basicBlockEnd: true},
		{op: PackedSwitch, cont: true, sw: true},
		{op: SparseSwitch, cont: true, sw: true},
		{op: Throw, throw: true, basicBlockEnd: true},
		{op: InvokeVirtual, cont: true, throw: true, invoke: true},
		{op: InvokeStaticRange, cont: true, throw: true, invoke: true},
		{op: Aget, cont: true, throw: true},
		{op: Iput, cont: true, throw: true},
		{op: CheckCast, cont: true, throw: true},
		{op: DivInt, cont: true, throw: true},
		{op: DivIntLit8, cont: true, throw: true},
		{op: RemLong2Addr, cont: true, throw: true},
		{op: AddInt, cont: true},
		{op: DivFloat, cont: true},
		{op: ThrowVerificationError, throw: true},
	}

	for _, tc := range tests {
		t.Run(tc.op.Name(), func(t *testing.T) {
			assert.Equal(t, tc.branch, tc.op.IsBranch())
			assert.Equal(t, tc.cont, tc.op.CanContinue())
			assert.Equal(t, tc.sw, tc.op.IsSwitch())
			assert.Equal(t, tc.throw, tc.op.IsThrow())
			assert.Equal(t, tc.ret, tc.op.IsReturn())
			assert.Equal(t, tc.invoke, tc.op.IsInvoke())
			assert.Equal(t, tc.basicBlockEnd, tc.op.IsBasicBlockEnd())
		})
	}
}

func TestBasicBlockEndMatchesFlags(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := Opcode(i)
		want := op.IsBranch() || op.IsReturn() || op == Throw
		assert.Equal(t, want, op.IsBasicBlockEnd(), "opcode %s", op)
	}
}

func TestVerifyAccessorsPartitionFlags(t *testing.T) {
	for i := 0; i < 256; i++ {
		op := Opcode(i)
		recombined := op.VerifyTypeArgumentA() | op.VerifyTypeArgumentB() |
			op.VerifyTypeArgumentC() | op.VerifyExtraFlags()
		assert.Equal(t, VerifyFlagsOf(op), recombined, "opcode %s", op)
	}
}

func TestVerifyAccessors(t *testing.T) {
	tests := []struct {
		op    Opcode
		a     VerifyFlags
		b     VerifyFlags
		c     VerifyFlags
		extra VerifyFlags
	}{
		{op: Nop},
		{op: Move, a: VerifyRegA, b: VerifyRegB},
		{op: MoveWide, a: VerifyRegAWide, b: VerifyRegBWide},
		{op: Goto, extra: VerifyBranchTarget},
		{op: IfEq, a: VerifyRegA, b: VerifyRegB, extra: VerifyBranchTarget},
		{op: PackedSwitch, a: VerifyRegA, extra: VerifySwitchTargets},
		{op: FillArrayData, a: VerifyRegA, extra: VerifyArrayData},
		{op: ConstString, a: VerifyRegA, b: VerifyRegBString},
		{op: NewInstance, a: VerifyRegA, b: VerifyRegBNewInstance},
		{op: NewArray, a: VerifyRegA, b: VerifyRegB, c: VerifyRegCNewArray},
		{op: FilledNewArray, b: VerifyRegBType, extra: VerifyVarArg},
		{op: IgetWide, a: VerifyRegAWide, b: VerifyRegB, c: VerifyRegCField},
		{op: Sget, a: VerifyRegA, b: VerifyRegBField},
		{op: InvokeVirtual, b: VerifyRegBMethod, extra: VerifyVarArg},
		{op: InvokeVirtualRange, b: VerifyRegBMethod, extra: VerifyVarArgRange},
		{op: ShlLong, a: VerifyRegAWide, b: VerifyRegBWide, c: VerifyRegC},
		{op: ShlLong2Addr, a: VerifyRegAWide, b: VerifyRegB},
		{op: ThrowVerificationError, extra: VerifyError},
		{op: Unused3E, extra: VerifyError},
	}

	for _, tc := range tests {
		t.Run(tc.op.Name(), func(t *testing.T) {
			assert.Equal(t, tc.a, tc.op.VerifyTypeArgumentA())
			assert.Equal(t, tc.b, tc.op.VerifyTypeArgumentB())
			assert.Equal(t, tc.c, tc.op.VerifyTypeArgumentC())
			assert.Equal(t, tc.extra, tc.op.VerifyExtraFlags())
		})
	}
}

func TestOpcodeNames(t *testing.T) {
	tests := map[Opcode]string{
		Nop:                    "nop",
		MoveWideFrom16:         "move-wide/from16",
		ReturnVoid:             "return-void",
		Const4:                 "const/4",
		ConstWideHigh16:        "const-wide/high16",
		ConstStringJumbo:       "const-string/jumbo",
		ArrayLength:            "array-length",
		FilledNewArrayRange:    "filled-new-array/range",
		IfGez:                  "if-gez",
		AgetBoolean:            "aget-boolean",
		SputShort:              "sput-short",
		InvokeInterfaceRange:   "invoke-interface/range",
		IntToByte:              "int-to-byte",
		UshrLong2Addr:          "ushr-long/2addr",
		RsubInt:                "rsub-int",
		XorIntLit8:             "xor-int/lit8",
		ThrowVerificationError: "throw-verification-error",
	}
	for op, name := range tests {
		assert.Equal(t, name, op.Name())
		assert.Equal(t, name, op.String())
	}
	for i := 0; i < 256; i++ {
		name := Opcode(i).Name()
		assert.Equal(t, strings.ToLower(name), name, "mnemonics are lowercase")
		assert.NotContains(t, name, " ")
	}
}
