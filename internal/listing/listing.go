// Package listing walks a whole method body and renders it as a stable
// textual listing, identified by a digest of the raw code units. The walk
// is the bounded iteration the bare cursor deliberately leaves to its
// caller.
package listing

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/andesvm/dexcode/internal/dex"
	"github.com/andesvm/dexcode/internal/disasm"
)

// hexColumns is the dump width in code units; 51l is the widest fixed
// format.
const hexColumns = 5

// Digest identifies a method body by the blake2b-256 hash of its raw code
// units.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Listing is the rendered form of one method body.
type Listing struct {
	Digest Digest
	Lines  []string
}

func (l *Listing) String() string {
	return strings.Join(l.Lines, "\n") + "\n"
}

// Walk visits every instruction position in the stream in order, bounded
// by the stream length. It fails on invalid opcodes and on a final
// instruction whose computed size overruns the stream (truncation).
func Walk(stream []uint16, visit func(in dex.Instruction, size int) error) error {
	pos := 0
	for pos < len(stream) {
		in, err := dex.At(stream, pos)
		if err != nil {
			return err
		}
		size, err := in.SizeInCodeUnits()
		if err != nil {
			return err
		}
		if pos+size > len(stream) {
			return fmt.Errorf("instruction at code unit %d: %w", pos, dex.ErrTruncatedStream)
		}
		if err := visit(in, size); err != nil {
			return err
		}
		pos += size
	}
	return nil
}

// Build walks the stream and renders one line per instruction: position,
// raw code units, then the decoded text. syms may be nil.
func Build(stream []uint16, syms disasm.SymbolSource) (*Listing, error) {
	l := &Listing{Digest: DigestOf(stream)}
	err := Walk(stream, func(in dex.Instruction, size int) error {
		hexDump, err := disasm.DumpHex(in, hexColumns)
		if err != nil {
			return err
		}
		text, err := disasm.DumpString(in, syms)
		if err != nil {
			return err
		}
		l.Lines = append(l.Lines, fmt.Sprintf("%06x: %-*s |%s", in.Pos(), hexColumns*5, hexDump, text))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// DigestOf hashes the raw code units (little-endian byte order, the wire
// order) so identical bodies share a listing cache entry.
func DigestOf(stream []uint16) Digest {
	buf := make([]byte, 2*len(stream))
	for i, u := range stream {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return Digest(blake2b.Sum256(buf))
}
