package dex

// Flags classifies an opcode's effect on control flow. Fixed per opcode at
// table-definition time; an opcode with no flags at all is unassigned.
type Flags uint8

const (
	FlagBranch   Flags = 1 << iota // conditional or unconditional branch
	FlagContinue                   // flow can continue to the next instruction
	FlagSwitch                     // switch dispatch
	FlagThrow                      // can raise an exception
	FlagReturn                     // returns from the method
	FlagInvoke                     // a flavor of invoke
)

// VerifyFlags describes the semantic checks each operand slot requires
// during bytecode verification. The decoder only reports them; the checks
// themselves belong to the verifier.
type VerifyFlags uint32

const VerifyNone VerifyFlags = 0

const (
	VerifyRegA            VerifyFlags = 1 << iota // A is a register
	VerifyRegAWide                                // A is the low half of a register pair
	VerifyRegB                                    // B is a register
	VerifyRegBField                               // B is a field reference
	VerifyRegBMethod                              // B is a method reference
	VerifyRegBNewInstance                         // B is an instantiable type reference
	VerifyRegBString                              // B is a string-pool reference
	VerifyRegBType                                // B is a type reference
	VerifyRegBWide                                // B is the low half of a register pair
	VerifyRegC                                    // C is a register
	VerifyRegCField                               // C is a field reference
	VerifyRegCNewArray                            // C is an array type reference
	VerifyRegCType                                // C is a type reference
	VerifyRegCWide                                // C is the low half of a register pair
	VerifyArrayData                               // carries a fill-array-data target
	VerifyBranchTarget                            // carries a branch target to bounds-check
	VerifySwitchTargets                           // carries a switch table to bounds-check
	VerifyVarArg                                  // carries a packed register list
	VerifyVarArgRange                             // carries a register range
	VerifyError                                   // never verifiable (unused or error opcode)
)
