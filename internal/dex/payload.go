package dex

// Typed views of the three pseudo-instruction data blocks. The verifier
// and interpreter consume these after SizeInCodeUnits has classified the
// block; every accessor re-checks the signature and bounds the declared
// entry count against the stream, so a malformed block fails here instead
// of reading garbage.

// PackedSwitchPayload is a packed-switch block: a run of consecutive keys
// starting at FirstKey, with one relative branch target per key.
type PackedSwitchPayload struct {
	FirstKey int32
	Targets  []int32
}

// SparseSwitchPayload is a sparse-switch block: sorted keys paired with
// relative branch targets.
type SparseSwitchPayload struct {
	Keys    []int32
	Targets []int32
}

// ArrayDataPayload is a fill-array-data block: ElementCount elements of
// ElementWidth bytes each, packed little-endian into Data. Data aliases
// nothing; it is copied out of the stream.
type ArrayDataPayload struct {
	ElementWidth int
	ElementCount int
	Data         []byte
}

// PackedSwitchPayload reads the block under the cursor.
func (in Instruction) PackedSwitchPayload() (*PackedSwitchPayload, error) {
	if err := in.expectSignature(PackedSwitchSignature, "packed-switch"); err != nil {
		return nil, err
	}
	entries, err := in.fetch16(1)
	if err != nil {
		return nil, err
	}
	n := int(entries)
	if in.pos+4+2*n > len(in.stream) {
		return nil, &MalformedPayloadError{Pos: in.pos, Reason: "packed-switch entry count overruns stream"}
	}
	first, err := in.fetch32(2)
	if err != nil {
		return nil, err
	}
	p := &PackedSwitchPayload{FirstKey: int32(first), Targets: make([]int32, n)}
	for i := 0; i < n; i++ {
		t, err := in.fetch32(4 + 2*i)
		if err != nil {
			return nil, err
		}
		p.Targets[i] = int32(t)
	}
	return p, nil
}

// SparseSwitchPayload reads the block under the cursor.
func (in Instruction) SparseSwitchPayload() (*SparseSwitchPayload, error) {
	if err := in.expectSignature(SparseSwitchSignature, "sparse-switch"); err != nil {
		return nil, err
	}
	entries, err := in.fetch16(1)
	if err != nil {
		return nil, err
	}
	n := int(entries)
	if in.pos+2+4*n > len(in.stream) {
		return nil, &MalformedPayloadError{Pos: in.pos, Reason: "sparse-switch entry count overruns stream"}
	}
	p := &SparseSwitchPayload{Keys: make([]int32, n), Targets: make([]int32, n)}
	for i := 0; i < n; i++ {
		k, err := in.fetch32(2 + 2*i)
		if err != nil {
			return nil, err
		}
		p.Keys[i] = int32(k)
	}
	for i := 0; i < n; i++ {
		t, err := in.fetch32(2 + 2*n + 2*i)
		if err != nil {
			return nil, err
		}
		p.Targets[i] = int32(t)
	}
	return p, nil
}

// ArrayDataPayload reads the block under the cursor.
func (in Instruction) ArrayDataPayload() (*ArrayDataPayload, error) {
	if err := in.expectSignature(ArrayDataSignature, "array-data"); err != nil {
		return nil, err
	}
	width, err := in.fetch16(1)
	if err != nil {
		return nil, err
	}
	count, err := in.fetch32(2)
	if err != nil {
		return nil, err
	}
	byteCount := uint64(count) * uint64(width)
	units := int((byteCount + 1) / 2)
	if in.pos+4+units > len(in.stream) {
		return nil, &MalformedPayloadError{Pos: in.pos, Reason: "array-data element count overruns stream"}
	}
	p := &ArrayDataPayload{
		ElementWidth: int(width),
		ElementCount: int(count),
		Data:         make([]byte, byteCount),
	}
	for i := uint64(0); i < byteCount; i++ {
		unit := in.stream[in.pos+4+int(i/2)]
		if i%2 == 0 {
			p.Data[i] = byte(unit)
		} else {
			p.Data[i] = byte(unit >> 8)
		}
	}
	return p, nil
}

func (in Instruction) expectSignature(sig uint16, kind string) error {
	if in.stream[in.pos] != sig {
		return &MalformedPayloadError{Pos: in.pos, Reason: "not a " + kind + " block"}
	}
	return nil
}
