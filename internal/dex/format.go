package dex

// Format describes how an opcode's operands are bit-packed into code
// units. The tag names follow the dex convention: the first digit is the
// size in code units, the second the register count, and the trailing
// letter the kind of the final operand (n nibble literal, b byte literal,
// s short literal, i int literal, l long literal, t branch target,
// c symbol-pool index, x none).
type Format byte

const (
	Format10x  Format = iota // op
	Format12x                // op vA, vB
	Format11n                // op vA, #+B
	Format11x                // op vAA
	Format10t                // op +AA
	Format20bc               // op AA, kind@BBBB
	Format20t                // op +AAAA
	Format22x                // op vAA, vBBBB
	Format21t                // op vAA, +BBBB
	Format21s                // op vAA, #+BBBB
	Format21h                // op vAA, #+BBBB0000[00000000]
	Format21c                // op vAA, thing@BBBB
	Format23x                // op vAA, vBB, vCC
	Format22b                // op vAA, vBB, #+CC
	Format22t                // op vA, vB, +CCCC
	Format22s                // op vA, vB, #+CCCC
	Format22c                // op vA, vB, thing@CCCC
	Format32x                // op vAAAA, vBBBB
	Format30t                // op +AAAAAAAA
	Format31t                // op vAA, +BBBBBBBB
	Format31i                // op vAA, #+BBBBBBBB
	Format31c                // op vAA, thing@BBBBBBBB
	Format35c                // op {vC, vD, vE, vF, vG}, thing@BBBB (B: count, A: vG)
	Format3rc                // op {vCCCC .. v(CCCC+AA-1)}, thing@BBBB
	Format51l                // op vAA, #+BBBBBBBBBBBBBBBB
)

// formatSizes holds the fixed code-unit count per format. Pseudo
// instructions (NOP-signature data blocks) are not formats; their size is
// computed from the stream, see Instruction.SizeInCodeUnits.
var formatSizes = [...]int{
	Format10x:  1,
	Format12x:  1,
	Format11n:  1,
	Format11x:  1,
	Format10t:  1,
	Format20bc: 2,
	Format20t:  2,
	Format22x:  2,
	Format21t:  2,
	Format21s:  2,
	Format21h:  2,
	Format21c:  2,
	Format23x:  2,
	Format22b:  2,
	Format22t:  2,
	Format22s:  2,
	Format22c:  2,
	Format32x:  3,
	Format30t:  3,
	Format31t:  3,
	Format31i:  3,
	Format31c:  3,
	Format35c:  3,
	Format3rc:  3,
	Format51l:  5,
}

// SizeInCodeUnits returns the fixed encoding size of the format.
func (f Format) SizeInCodeUnits() int {
	return formatSizes[f]
}

var formatNames = [...]string{
	Format10x:  "10x",
	Format12x:  "12x",
	Format11n:  "11n",
	Format11x:  "11x",
	Format10t:  "10t",
	Format20bc: "20bc",
	Format20t:  "20t",
	Format22x:  "22x",
	Format21t:  "21t",
	Format21s:  "21s",
	Format21h:  "21h",
	Format21c:  "21c",
	Format23x:  "23x",
	Format22b:  "22b",
	Format22t:  "22t",
	Format22s:  "22s",
	Format22c:  "22c",
	Format32x:  "32x",
	Format30t:  "30t",
	Format31t:  "31t",
	Format31i:  "31i",
	Format31c:  "31c",
	Format35c:  "35c",
	Format3rc:  "3rc",
	Format51l:  "51l",
}

func (f Format) String() string {
	return formatNames[f]
}
