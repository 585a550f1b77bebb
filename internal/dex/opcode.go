package dex

// Opcode identifies an instruction's operation. It occupies the low 8 bits
// of the first code unit of every instruction, so the whole space is
// [0x00, 0xff]; values whose descriptor carries no flow flags are
// unassigned and rejected by the decoder.
type Opcode byte

const (
	Nop Opcode = 0x00

	Move             Opcode = 0x01
	MoveFrom16       Opcode = 0x02
	Move16           Opcode = 0x03
	MoveWide         Opcode = 0x04
	MoveWideFrom16   Opcode = 0x05
	MoveWide16       Opcode = 0x06
	MoveObject       Opcode = 0x07
	MoveObjectFrom16 Opcode = 0x08
	MoveObject16     Opcode = 0x09
	MoveResult       Opcode = 0x0a
	MoveResultWide   Opcode = 0x0b
	MoveResultObject Opcode = 0x0c
	MoveException    Opcode = 0x0d

	ReturnVoid   Opcode = 0x0e
	Return       Opcode = 0x0f
	ReturnWide   Opcode = 0x10
	ReturnObject Opcode = 0x11

	Const4           Opcode = 0x12
	Const16          Opcode = 0x13
	Const            Opcode = 0x14
	ConstHigh16      Opcode = 0x15
	ConstWide16      Opcode = 0x16
	ConstWide32      Opcode = 0x17
	ConstWide        Opcode = 0x18
	ConstWideHigh16  Opcode = 0x19
	ConstString      Opcode = 0x1a
	ConstStringJumbo Opcode = 0x1b
	ConstClass       Opcode = 0x1c

	MonitorEnter Opcode = 0x1d
	MonitorExit  Opcode = 0x1e

	CheckCast           Opcode = 0x1f
	InstanceOf          Opcode = 0x20
	ArrayLength         Opcode = 0x21
	NewInstance         Opcode = 0x22
	NewArray            Opcode = 0x23
	FilledNewArray      Opcode = 0x24
	FilledNewArrayRange Opcode = 0x25
	FillArrayData       Opcode = 0x26

	Throw  Opcode = 0x27
	Goto   Opcode = 0x28
	Goto16 Opcode = 0x29
	Goto32 Opcode = 0x2a

	PackedSwitch Opcode = 0x2b
	SparseSwitch Opcode = 0x2c

	CmplFloat  Opcode = 0x2d
	CmpgFloat  Opcode = 0x2e
	CmplDouble Opcode = 0x2f
	CmpgDouble Opcode = 0x30
	CmpLong    Opcode = 0x31

	IfEq  Opcode = 0x32
	IfNe  Opcode = 0x33
	IfLt  Opcode = 0x34
	IfGe  Opcode = 0x35
	IfGt  Opcode = 0x36
	IfLe  Opcode = 0x37
	IfEqz Opcode = 0x38
	IfNez Opcode = 0x39
	IfLtz Opcode = 0x3a
	IfGez Opcode = 0x3b
	IfGtz Opcode = 0x3c
	IfLez Opcode = 0x3d

	Unused3E Opcode = 0x3e
	Unused3F Opcode = 0x3f
	Unused40 Opcode = 0x40
	Unused41 Opcode = 0x41
	Unused42 Opcode = 0x42
	Unused43 Opcode = 0x43

	Aget        Opcode = 0x44
	AgetWide    Opcode = 0x45
	AgetObject  Opcode = 0x46
	AgetBoolean Opcode = 0x47
	AgetByte    Opcode = 0x48
	AgetChar    Opcode = 0x49
	AgetShort   Opcode = 0x4a
	Aput        Opcode = 0x4b
	AputWide    Opcode = 0x4c
	AputObject  Opcode = 0x4d
	AputBoolean Opcode = 0x4e
	AputByte    Opcode = 0x4f
	AputChar    Opcode = 0x50
	AputShort   Opcode = 0x51

	Iget        Opcode = 0x52
	IgetWide    Opcode = 0x53
	IgetObject  Opcode = 0x54
	IgetBoolean Opcode = 0x55
	IgetByte    Opcode = 0x56
	IgetChar    Opcode = 0x57
	IgetShort   Opcode = 0x58
	Iput        Opcode = 0x59
	IputWide    Opcode = 0x5a
	IputObject  Opcode = 0x5b
	IputBoolean Opcode = 0x5c
	IputByte    Opcode = 0x5d
	IputChar    Opcode = 0x5e
	IputShort   Opcode = 0x5f

	Sget        Opcode = 0x60
	SgetWide    Opcode = 0x61
	SgetObject  Opcode = 0x62
	SgetBoolean Opcode = 0x63
	SgetByte    Opcode = 0x64
	SgetChar    Opcode = 0x65
	SgetShort   Opcode = 0x66
	Sput        Opcode = 0x67
	SputWide    Opcode = 0x68
	SputObject  Opcode = 0x69
	SputBoolean Opcode = 0x6a
	SputByte    Opcode = 0x6b
	SputChar    Opcode = 0x6c
	SputShort   Opcode = 0x6d

	InvokeVirtual   Opcode = 0x6e
	InvokeSuper     Opcode = 0x6f
	InvokeDirect    Opcode = 0x70
	InvokeStatic    Opcode = 0x71
	InvokeInterface Opcode = 0x72

	Unused73 Opcode = 0x73

	InvokeVirtualRange   Opcode = 0x74
	InvokeSuperRange     Opcode = 0x75
	InvokeDirectRange    Opcode = 0x76
	InvokeStaticRange    Opcode = 0x77
	InvokeInterfaceRange Opcode = 0x78

	Unused79 Opcode = 0x79
	Unused7A Opcode = 0x7a

	NegInt        Opcode = 0x7b
	NotInt        Opcode = 0x7c
	NegLong       Opcode = 0x7d
	NotLong       Opcode = 0x7e
	NegFloat      Opcode = 0x7f
	NegDouble     Opcode = 0x80
	IntToLong     Opcode = 0x81
	IntToFloat    Opcode = 0x82
	IntToDouble   Opcode = 0x83
	LongToInt     Opcode = 0x84
	LongToFloat   Opcode = 0x85
	LongToDouble  Opcode = 0x86
	FloatToInt    Opcode = 0x87
	FloatToLong   Opcode = 0x88
	FloatToDouble Opcode = 0x89
	DoubleToInt   Opcode = 0x8a
	DoubleToLong  Opcode = 0x8b
	DoubleToFloat Opcode = 0x8c
	IntToByte     Opcode = 0x8d
	IntToChar     Opcode = 0x8e
	IntToShort    Opcode = 0x8f

	AddInt    Opcode = 0x90
	SubInt    Opcode = 0x91
	MulInt    Opcode = 0x92
	DivInt    Opcode = 0x93
	RemInt    Opcode = 0x94
	AndInt    Opcode = 0x95
	OrInt     Opcode = 0x96
	XorInt    Opcode = 0x97
	ShlInt    Opcode = 0x98
	ShrInt    Opcode = 0x99
	UshrInt   Opcode = 0x9a
	AddLong   Opcode = 0x9b
	SubLong   Opcode = 0x9c
	MulLong   Opcode = 0x9d
	DivLong   Opcode = 0x9e
	RemLong   Opcode = 0x9f
	AndLong   Opcode = 0xa0
	OrLong    Opcode = 0xa1
	XorLong   Opcode = 0xa2
	ShlLong   Opcode = 0xa3
	ShrLong   Opcode = 0xa4
	UshrLong  Opcode = 0xa5
	AddFloat  Opcode = 0xa6
	SubFloat  Opcode = 0xa7
	MulFloat  Opcode = 0xa8
	DivFloat  Opcode = 0xa9
	RemFloat  Opcode = 0xaa
	AddDouble Opcode = 0xab
	SubDouble Opcode = 0xac
	MulDouble Opcode = 0xad
	DivDouble Opcode = 0xae
	RemDouble Opcode = 0xaf

	AddInt2Addr    Opcode = 0xb0
	SubInt2Addr    Opcode = 0xb1
	MulInt2Addr    Opcode = 0xb2
	DivInt2Addr    Opcode = 0xb3
	RemInt2Addr    Opcode = 0xb4
	AndInt2Addr    Opcode = 0xb5
	OrInt2Addr     Opcode = 0xb6
	XorInt2Addr    Opcode = 0xb7
	ShlInt2Addr    Opcode = 0xb8
	ShrInt2Addr    Opcode = 0xb9
	UshrInt2Addr   Opcode = 0xba
	AddLong2Addr   Opcode = 0xbb
	SubLong2Addr   Opcode = 0xbc
	MulLong2Addr   Opcode = 0xbd
	DivLong2Addr   Opcode = 0xbe
	RemLong2Addr   Opcode = 0xbf
	AndLong2Addr   Opcode = 0xc0
	OrLong2Addr    Opcode = 0xc1
	XorLong2Addr   Opcode = 0xc2
	ShlLong2Addr   Opcode = 0xc3
	ShrLong2Addr   Opcode = 0xc4
	UshrLong2Addr  Opcode = 0xc5
	AddFloat2Addr  Opcode = 0xc6
	SubFloat2Addr  Opcode = 0xc7
	MulFloat2Addr  Opcode = 0xc8
	DivFloat2Addr  Opcode = 0xc9
	RemFloat2Addr  Opcode = 0xca
	AddDouble2Addr Opcode = 0xcb
	SubDouble2Addr Opcode = 0xcc
	MulDouble2Addr Opcode = 0xcd
	DivDouble2Addr Opcode = 0xce
	RemDouble2Addr Opcode = 0xcf

	AddIntLit16 Opcode = 0xd0
	RsubInt     Opcode = 0xd1
	MulIntLit16 Opcode = 0xd2
	DivIntLit16 Opcode = 0xd3
	RemIntLit16 Opcode = 0xd4
	AndIntLit16 Opcode = 0xd5
	OrIntLit16  Opcode = 0xd6
	XorIntLit16 Opcode = 0xd7

	AddIntLit8  Opcode = 0xd8
	RsubIntLit8 Opcode = 0xd9
	MulIntLit8  Opcode = 0xda
	DivIntLit8  Opcode = 0xdb
	RemIntLit8  Opcode = 0xdc
	AndIntLit8  Opcode = 0xdd
	OrIntLit8   Opcode = 0xde
	XorIntLit8  Opcode = 0xdf
	ShlIntLit8  Opcode = 0xe0
	ShrIntLit8  Opcode = 0xe1
	UshrIntLit8 Opcode = 0xe2

	UnusedE3 Opcode = 0xe3
	UnusedE4 Opcode = 0xe4
	UnusedE5 Opcode = 0xe5
	UnusedE6 Opcode = 0xe6
	UnusedE7 Opcode = 0xe7
	UnusedE8 Opcode = 0xe8
	UnusedE9 Opcode = 0xe9
	UnusedEA Opcode = 0xea
	UnusedEB Opcode = 0xeb
	UnusedEC Opcode = 0xec

	ThrowVerificationError Opcode = 0xed

	UnusedEE Opcode = 0xee
	UnusedEF Opcode = 0xef
	UnusedF0 Opcode = 0xf0
	UnusedF1 Opcode = 0xf1
	UnusedF2 Opcode = 0xf2
	UnusedF3 Opcode = 0xf3
	UnusedF4 Opcode = 0xf4
	UnusedF5 Opcode = 0xf5
	UnusedF6 Opcode = 0xf6
	UnusedF7 Opcode = 0xf7
	UnusedF8 Opcode = 0xf8
	UnusedF9 Opcode = 0xf9
	UnusedFA Opcode = 0xfa
	UnusedFB Opcode = 0xfb
	UnusedFC Opcode = 0xfc
	UnusedFD Opcode = 0xfd
	UnusedFE Opcode = 0xfe
	UnusedFF Opcode = 0xff
)

// Name returns the display mnemonic for the opcode. Unassigned values get
// an "unused-XX" placeholder rather than an empty string.
func (op Opcode) Name() string {
	return table[op].name
}

func (op Opcode) String() string {
	return op.Name()
}

// IsValid reports whether the opcode is assigned. Every assigned opcode
// carries at least one flow flag; unassigned entries carry none.
func (op Opcode) IsValid() bool {
	return table[op].flags != 0
}

// IsBranch reports whether the opcode is a conditional or unconditional
// branch.
func (op Opcode) IsBranch() bool {
	return table[op].flags&FlagBranch != 0
}

// IsSwitch reports whether the opcode is a switch dispatch.
func (op Opcode) IsSwitch() bool {
	return table[op].flags&FlagSwitch != 0
}

// IsThrow reports whether the opcode can raise an exception. This is a
// broad property; see IsBasicBlockEnd for the terminator check.
func (op Opcode) IsThrow() bool {
	return table[op].flags&FlagThrow != 0
}

// IsReturn reports whether the opcode is one of the return variants.
func (op Opcode) IsReturn() bool {
	return table[op].flags&FlagReturn != 0
}

// IsInvoke reports whether the opcode is a flavor of method invocation.
func (op Opcode) IsInvoke() bool {
	return table[op].flags&FlagInvoke != 0
}

// CanContinue reports whether control flow may fall through to the next
// instruction.
func (op Opcode) CanContinue() bool {
	return table[op].flags&FlagContinue != 0
}

// IsBasicBlockEnd reports whether the instruction unconditionally ends its
// basic block. Only branches, returns and the dedicated throw opcode
// qualify; opcodes that merely can throw (field accesses, invokes, ...)
// do not.
func (op Opcode) IsBasicBlockEnd() bool {
	return op.IsBranch() || op.IsReturn() || op == Throw
}

// VerifyTypeArgumentA returns the verification requirements on operand A.
func (op Opcode) VerifyTypeArgumentA() VerifyFlags {
	return table[op].verifyFlags & (VerifyRegA | VerifyRegAWide)
}

// VerifyTypeArgumentB returns the verification requirements on operand B.
func (op Opcode) VerifyTypeArgumentB() VerifyFlags {
	return table[op].verifyFlags & (VerifyRegB | VerifyRegBField |
		VerifyRegBMethod | VerifyRegBNewInstance | VerifyRegBString |
		VerifyRegBType | VerifyRegBWide)
}

// VerifyTypeArgumentC returns the verification requirements on operand C.
func (op Opcode) VerifyTypeArgumentC() VerifyFlags {
	return table[op].verifyFlags & (VerifyRegC | VerifyRegCField |
		VerifyRegCNewArray | VerifyRegCType | VerifyRegCWide)
}

// VerifyExtraFlags returns the requirements that apply to the instruction
// as a whole rather than a single register slot: switch tables, array
// data, branch targets and the variable-argument lists.
func (op Opcode) VerifyExtraFlags() VerifyFlags {
	return table[op].verifyFlags & (VerifyArrayData | VerifyBranchTarget |
		VerifySwitchTargets | VerifyVarArg | VerifyVarArgRange | VerifyError)
}

// NameOf returns the display mnemonic of the given opcode.
func NameOf(op Opcode) string { return table[op].name }

// FormatOf returns the operand layout of the given opcode.
func FormatOf(op Opcode) Format { return table[op].format }

// FlagsOf returns the control-flow classification of the given opcode.
func FlagsOf(op Opcode) Flags { return table[op].flags }

// VerifyFlagsOf returns the verification requirements of the given opcode.
func VerifyFlagsOf(op Opcode) VerifyFlags { return table[op].verifyFlags }
