package dex

import (
	"errors"
	"fmt"
)

// Decode errors are deterministic functions of the input bytes: retrying
// the same stream yields the same error, so callers should reject the
// whole method body on any of them.
var (
	// ErrTruncatedStream means the cursor or one of its fetches would fall
	// outside the supplied stream.
	ErrTruncatedStream = errors.New("truncated code-unit stream")

	// ErrPseudoInstruction means operand decoding was requested on a
	// switch-table or array-data block, which is data, not an instruction.
	ErrPseudoInstruction = errors.New("cannot decode operands of a pseudo-instruction")
)

// InvalidOpcodeError reports a stream byte that is not an assigned opcode.
type InvalidOpcodeError struct {
	Opcode Opcode
	Pos    int
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02x at code unit %d", byte(e.Opcode), e.Pos)
}

// RegisterRangeError reports a variable-argument register count exceeding
// the decoded record's capacity.
type RegisterRangeError struct {
	Opcode Opcode
	Count  uint32
}

func (e *RegisterRangeError) Error() string {
	return fmt.Sprintf("%s: register count %d exceeds capacity %d", e.Opcode, e.Count, MaxArgs)
}

// MalformedPayloadError reports a pseudo-instruction whose declared entry
// count would read past the end of the stream, or whose signature does not
// match the expected block kind.
type MalformedPayloadError struct {
	Pos    int
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed pseudo-instruction at code unit %d: %s", e.Pos, e.Reason)
}
