package dex

// descriptor is the per-opcode metadata record: display name, operand
// layout, control-flow classification and verification requirements.
// The table is the single source of truth; it is fixed at process start
// and safe for unsynchronized concurrent reads.
type descriptor struct {
	name        string
	format      Format
	flags       Flags
	verifyFlags VerifyFlags
}

var table = [256]descriptor{
	Nop: {"nop", Format10x, FlagContinue, VerifyNone},

	Move:             {"move", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	MoveFrom16:       {"move/from16", Format22x, FlagContinue, VerifyRegA | VerifyRegB},
	Move16:           {"move/16", Format32x, FlagContinue, VerifyRegA | VerifyRegB},
	MoveWide:         {"move-wide", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	MoveWideFrom16:   {"move-wide/from16", Format22x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	MoveWide16:       {"move-wide/16", Format32x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	MoveObject:       {"move-object", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	MoveObjectFrom16: {"move-object/from16", Format22x, FlagContinue, VerifyRegA | VerifyRegB},
	MoveObject16:     {"move-object/16", Format32x, FlagContinue, VerifyRegA | VerifyRegB},
	MoveResult:       {"move-result", Format11x, FlagContinue, VerifyRegA},
	MoveResultWide:   {"move-result-wide", Format11x, FlagContinue, VerifyRegAWide},
	MoveResultObject: {"move-result-object", Format11x, FlagContinue, VerifyRegA},
	MoveException:    {"move-exception", Format11x, FlagContinue, VerifyRegA},

	ReturnVoid:   {"return-void", Format10x, FlagReturn, VerifyNone},
	Return:       {"return", Format11x, FlagReturn, VerifyRegA},
	ReturnWide:   {"return-wide", Format11x, FlagReturn, VerifyRegAWide},
	ReturnObject: {"return-object", Format11x, FlagReturn, VerifyRegA},

	Const4:           {"const/4", Format11n, FlagContinue, VerifyRegA},
	Const16:          {"const/16", Format21s, FlagContinue, VerifyRegA},
	Const:            {"const", Format31i, FlagContinue, VerifyRegA},
	ConstHigh16:      {"const/high16", Format21h, FlagContinue, VerifyRegA},
	ConstWide16:      {"const-wide/16", Format21s, FlagContinue, VerifyRegAWide},
	ConstWide32:      {"const-wide/32", Format31i, FlagContinue, VerifyRegAWide},
	ConstWide:        {"const-wide", Format51l, FlagContinue, VerifyRegAWide},
	ConstWideHigh16:  {"const-wide/high16", Format21h, FlagContinue, VerifyRegAWide},
	ConstString:      {"const-string", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBString},
	ConstStringJumbo: {"const-string/jumbo", Format31c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBString},
	ConstClass:       {"const-class", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBType},

	MonitorEnter: {"monitor-enter", Format11x, FlagContinue | FlagThrow, VerifyRegA},
	MonitorExit:  {"monitor-exit", Format11x, FlagContinue | FlagThrow, VerifyRegA},

	CheckCast:           {"check-cast", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBType},
	InstanceOf:          {"instance-of", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCType},
	ArrayLength:         {"array-length", Format12x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	NewInstance:         {"new-instance", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBNewInstance},
	NewArray:            {"new-array", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCNewArray},
	FilledNewArray:      {"filled-new-array", Format35c, FlagContinue | FlagThrow, VerifyRegBType | VerifyVarArg},
	FilledNewArrayRange: {"filled-new-array/range", Format3rc, FlagContinue | FlagThrow, VerifyRegBType | VerifyVarArgRange},
	FillArrayData:       {"fill-array-data", Format31t, FlagContinue | FlagThrow, VerifyRegA | VerifyArrayData},

	Throw:  {"throw", Format11x, FlagThrow, VerifyRegA},
	Goto:   {"goto", Format10t, FlagBranch, VerifyBranchTarget},
	Goto16: {"goto/16", Format20t, FlagBranch, VerifyBranchTarget},
	Goto32: {"goto/32", Format30t, FlagBranch, VerifyBranchTarget},

	PackedSwitch: {"packed-switch", Format31t, FlagContinue | FlagSwitch, VerifyRegA | VerifySwitchTargets},
	SparseSwitch: {"sparse-switch", Format31t, FlagContinue | FlagSwitch, VerifyRegA | VerifySwitchTargets},

	CmplFloat:  {"cmpl-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	CmpgFloat:  {"cmpg-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	CmplDouble: {"cmpl-double", Format23x, FlagContinue, VerifyRegA | VerifyRegBWide | VerifyRegCWide},
	CmpgDouble: {"cmpg-double", Format23x, FlagContinue, VerifyRegA | VerifyRegBWide | VerifyRegCWide},
	CmpLong:    {"cmp-long", Format23x, FlagContinue, VerifyRegA | VerifyRegBWide | VerifyRegCWide},

	IfEq:  {"if-eq", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfNe:  {"if-ne", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfLt:  {"if-lt", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfGe:  {"if-ge", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfGt:  {"if-gt", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfLe:  {"if-le", Format22t, FlagContinue | FlagBranch, VerifyRegA | VerifyRegB | VerifyBranchTarget},
	IfEqz: {"if-eqz", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},
	IfNez: {"if-nez", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},
	IfLtz: {"if-ltz", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},
	IfGez: {"if-gez", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},
	IfGtz: {"if-gtz", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},
	IfLez: {"if-lez", Format21t, FlagContinue | FlagBranch, VerifyRegA | VerifyBranchTarget},

	Unused3E: {"unused-3e", Format10x, 0, VerifyError},
	Unused3F: {"unused-3f", Format10x, 0, VerifyError},
	Unused40: {"unused-40", Format10x, 0, VerifyError},
	Unused41: {"unused-41", Format10x, 0, VerifyError},
	Unused42: {"unused-42", Format10x, 0, VerifyError},
	Unused43: {"unused-43", Format10x, 0, VerifyError},

	Aget:        {"aget", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AgetWide:    {"aget-wide", Format23x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegB | VerifyRegC},
	AgetObject:  {"aget-object", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AgetBoolean: {"aget-boolean", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AgetByte:    {"aget-byte", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AgetChar:    {"aget-char", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AgetShort:   {"aget-short", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	Aput:        {"aput", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AputWide:    {"aput-wide", Format23x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegB | VerifyRegC},
	AputObject:  {"aput-object", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AputBoolean: {"aput-boolean", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AputByte:    {"aput-byte", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AputChar:    {"aput-char", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AputShort:   {"aput-short", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},

	Iget:        {"iget", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IgetWide:    {"iget-wide", Format22c, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegB | VerifyRegCField},
	IgetObject:  {"iget-object", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IgetBoolean: {"iget-boolean", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IgetByte:    {"iget-byte", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IgetChar:    {"iget-char", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IgetShort:   {"iget-short", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	Iput:        {"iput", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IputWide:    {"iput-wide", Format22c, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegB | VerifyRegCField},
	IputObject:  {"iput-object", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IputBoolean: {"iput-boolean", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IputByte:    {"iput-byte", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IputChar:    {"iput-char", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},
	IputShort:   {"iput-short", Format22c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegCField},

	Sget:        {"sget", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SgetWide:    {"sget-wide", Format21c, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBField},
	SgetObject:  {"sget-object", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SgetBoolean: {"sget-boolean", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SgetByte:    {"sget-byte", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SgetChar:    {"sget-char", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SgetShort:   {"sget-short", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	Sput:        {"sput", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SputWide:    {"sput-wide", Format21c, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBField},
	SputObject:  {"sput-object", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SputBoolean: {"sput-boolean", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SputByte:    {"sput-byte", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SputChar:    {"sput-char", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},
	SputShort:   {"sput-short", Format21c, FlagContinue | FlagThrow, VerifyRegA | VerifyRegBField},

	InvokeVirtual:   {"invoke-virtual", Format35c, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArg},
	InvokeSuper:     {"invoke-super", Format35c, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArg},
	InvokeDirect:    {"invoke-direct", Format35c, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArg},
	InvokeStatic:    {"invoke-static", Format35c, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArg},
	InvokeInterface: {"invoke-interface", Format35c, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArg},

	Unused73: {"unused-73", Format10x, 0, VerifyError},

	InvokeVirtualRange:   {"invoke-virtual/range", Format3rc, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArgRange},
	InvokeSuperRange:     {"invoke-super/range", Format3rc, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArgRange},
	InvokeDirectRange:    {"invoke-direct/range", Format3rc, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArgRange},
	InvokeStaticRange:    {"invoke-static/range", Format3rc, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArgRange},
	InvokeInterfaceRange: {"invoke-interface/range", Format3rc, FlagContinue | FlagThrow | FlagInvoke, VerifyRegBMethod | VerifyVarArgRange},

	Unused79: {"unused-79", Format10x, 0, VerifyError},
	Unused7A: {"unused-7a", Format10x, 0, VerifyError},

	NegInt:        {"neg-int", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	NotInt:        {"not-int", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	NegLong:       {"neg-long", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	NotLong:       {"not-long", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	NegFloat:      {"neg-float", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	NegDouble:     {"neg-double", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	IntToLong:     {"int-to-long", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	IntToFloat:    {"int-to-float", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	IntToDouble:   {"int-to-double", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	LongToInt:     {"long-to-int", Format12x, FlagContinue, VerifyRegA | VerifyRegBWide},
	LongToFloat:   {"long-to-float", Format12x, FlagContinue, VerifyRegA | VerifyRegBWide},
	LongToDouble:  {"long-to-double", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	FloatToInt:    {"float-to-int", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	FloatToLong:   {"float-to-long", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	FloatToDouble: {"float-to-double", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	DoubleToInt:   {"double-to-int", Format12x, FlagContinue, VerifyRegA | VerifyRegBWide},
	DoubleToLong:  {"double-to-long", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	DoubleToFloat: {"double-to-float", Format12x, FlagContinue, VerifyRegA | VerifyRegBWide},
	IntToByte:     {"int-to-byte", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	IntToChar:     {"int-to-char", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	IntToShort:    {"int-to-short", Format12x, FlagContinue, VerifyRegA | VerifyRegB},

	AddInt:    {"add-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	SubInt:    {"sub-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	MulInt:    {"mul-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	DivInt:    {"div-int", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	RemInt:    {"rem-int", Format23x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB | VerifyRegC},
	AndInt:    {"and-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	OrInt:     {"or-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	XorInt:    {"xor-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	ShlInt:    {"shl-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	ShrInt:    {"shr-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	UshrInt:   {"ushr-int", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	AddLong:   {"add-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	SubLong:   {"sub-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	MulLong:   {"mul-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	DivLong:   {"div-long", Format23x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	RemLong:   {"rem-long", Format23x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	AndLong:   {"and-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	OrLong:    {"or-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	XorLong:   {"xor-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	ShlLong:   {"shl-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegC},
	ShrLong:   {"shr-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegC},
	UshrLong:  {"ushr-long", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegC},
	AddFloat:  {"add-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	SubFloat:  {"sub-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	MulFloat:  {"mul-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	DivFloat:  {"div-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	RemFloat:  {"rem-float", Format23x, FlagContinue, VerifyRegA | VerifyRegB | VerifyRegC},
	AddDouble: {"add-double", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	SubDouble: {"sub-double", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	MulDouble: {"mul-double", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	DivDouble: {"div-double", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},
	RemDouble: {"rem-double", Format23x, FlagContinue, VerifyRegAWide | VerifyRegBWide | VerifyRegCWide},

	AddInt2Addr:    {"add-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	SubInt2Addr:    {"sub-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	MulInt2Addr:    {"mul-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	DivInt2Addr:    {"div-int/2addr", Format12x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	RemInt2Addr:    {"rem-int/2addr", Format12x, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	AndInt2Addr:    {"and-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	OrInt2Addr:     {"or-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	XorInt2Addr:    {"xor-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	ShlInt2Addr:    {"shl-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	ShrInt2Addr:    {"shr-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	UshrInt2Addr:   {"ushr-int/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	AddLong2Addr:   {"add-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	SubLong2Addr:   {"sub-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	MulLong2Addr:   {"mul-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	DivLong2Addr:   {"div-long/2addr", Format12x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBWide},
	RemLong2Addr:   {"rem-long/2addr", Format12x, FlagContinue | FlagThrow, VerifyRegAWide | VerifyRegBWide},
	AndLong2Addr:   {"and-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	OrLong2Addr:    {"or-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	XorLong2Addr:   {"xor-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	ShlLong2Addr:   {"shl-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	ShrLong2Addr:   {"shr-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	UshrLong2Addr:  {"ushr-long/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegB},
	AddFloat2Addr:  {"add-float/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	SubFloat2Addr:  {"sub-float/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	MulFloat2Addr:  {"mul-float/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	DivFloat2Addr:  {"div-float/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	RemFloat2Addr:  {"rem-float/2addr", Format12x, FlagContinue, VerifyRegA | VerifyRegB},
	AddDouble2Addr: {"add-double/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	SubDouble2Addr: {"sub-double/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	MulDouble2Addr: {"mul-double/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	DivDouble2Addr: {"div-double/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},
	RemDouble2Addr: {"rem-double/2addr", Format12x, FlagContinue, VerifyRegAWide | VerifyRegBWide},

	AddIntLit16: {"add-int/lit16", Format22s, FlagContinue, VerifyRegA | VerifyRegB},
	RsubInt:     {"rsub-int", Format22s, FlagContinue, VerifyRegA | VerifyRegB},
	MulIntLit16: {"mul-int/lit16", Format22s, FlagContinue, VerifyRegA | VerifyRegB},
	DivIntLit16: {"div-int/lit16", Format22s, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	RemIntLit16: {"rem-int/lit16", Format22s, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	AndIntLit16: {"and-int/lit16", Format22s, FlagContinue, VerifyRegA | VerifyRegB},
	OrIntLit16:  {"or-int/lit16", Format22s, FlagContinue, VerifyRegA | VerifyRegB},
	XorIntLit16: {"xor-int/lit16", Format22s, FlagContinue, VerifyRegA | VerifyRegB},

	AddIntLit8:  {"add-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	RsubIntLit8: {"rsub-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	MulIntLit8:  {"mul-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	DivIntLit8:  {"div-int/lit8", Format22b, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	RemIntLit8:  {"rem-int/lit8", Format22b, FlagContinue | FlagThrow, VerifyRegA | VerifyRegB},
	AndIntLit8:  {"and-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	OrIntLit8:   {"or-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	XorIntLit8:  {"xor-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	ShlIntLit8:  {"shl-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	ShrIntLit8:  {"shr-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},
	UshrIntLit8: {"ushr-int/lit8", Format22b, FlagContinue, VerifyRegA | VerifyRegB},

	UnusedE3: {"unused-e3", Format10x, 0, VerifyError},
	UnusedE4: {"unused-e4", Format10x, 0, VerifyError},
	UnusedE5: {"unused-e5", Format10x, 0, VerifyError},
	UnusedE6: {"unused-e6", Format10x, 0, VerifyError},
	UnusedE7: {"unused-e7", Format10x, 0, VerifyError},
	UnusedE8: {"unused-e8", Format10x, 0, VerifyError},
	UnusedE9: {"unused-e9", Format10x, 0, VerifyError},
	UnusedEA: {"unused-ea", Format10x, 0, VerifyError},
	UnusedEB: {"unused-eb", Format10x, 0, VerifyError},
	UnusedEC: {"unused-ec", Format10x, 0, VerifyError},

	ThrowVerificationError: {"throw-verification-error", Format20bc, FlagThrow, VerifyError},

	UnusedEE: {"unused-ee", Format10x, 0, VerifyError},
	UnusedEF: {"unused-ef", Format10x, 0, VerifyError},
	UnusedF0: {"unused-f0", Format10x, 0, VerifyError},
	UnusedF1: {"unused-f1", Format10x, 0, VerifyError},
	UnusedF2: {"unused-f2", Format10x, 0, VerifyError},
	UnusedF3: {"unused-f3", Format10x, 0, VerifyError},
	UnusedF4: {"unused-f4", Format10x, 0, VerifyError},
	UnusedF5: {"unused-f5", Format10x, 0, VerifyError},
	UnusedF6: {"unused-f6", Format10x, 0, VerifyError},
	UnusedF7: {"unused-f7", Format10x, 0, VerifyError},
	UnusedF8: {"unused-f8", Format10x, 0, VerifyError},
	UnusedF9: {"unused-f9", Format10x, 0, VerifyError},
	UnusedFA: {"unused-fa", Format10x, 0, VerifyError},
	UnusedFB: {"unused-fb", Format10x, 0, VerifyError},
	UnusedFC: {"unused-fc", Format10x, 0, VerifyError},
	UnusedFD: {"unused-fd", Format10x, 0, VerifyError},
	UnusedFE: {"unused-fe", Format10x, 0, VerifyError},
	UnusedFF: {"unused-ff", Format10x, 0, VerifyError},
}
