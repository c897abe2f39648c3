package ring

// NF4 packs four elements of the Fermat field F4 = GF(2^16+1) into the
// lanes of a single 64-bit word, so that each NF4Ring operation (Add,
// Sub, HadamardMul) handles four field elements per call instead of one.
// The Ring buffer-level operations (AddTwoBufs, …) do not operate on
// packed NF4 words.
const (
	nf4Modulus  = 65537
	nf4Lanes    = 4
	nf4LaneBits = 16
	nf4LaneMask = (1 << nf4LaneBits) - 1
	nf4Sentinel = nf4Modulus - 1 // 65536, one past what a 16-bit lane holds
)

// GroupedValues is the packed NF4 transport type: four 16-bit lanes in
// Values, plus one flag bit per lane in Flag. A lane whose logical value
// is the field's sentinel q-1 = 65536 cannot be stored directly (it
// needs 17 bits), so it is stored as 0 with its flag bit set instead;
// unpacking restores the sentinel from the flag rather than the lane
// bits. This keeps every lane within 16 bits, so no lane spills into its
// neighbor. NF4Ring's operations unpack the lanes, compute each one in
// the Fermat field, and pack the results again; they do not add the
// packed words as a single 64-bit add.
type GroupedValues struct {
	Values uint64
	Flag   uint8
}

// Pack packs four field elements, each in [0, nf4Modulus), into a
// GroupedValues.
func Pack(lanes [nf4Lanes]uint32) GroupedValues {
	var gv GroupedValues
	for i, v := range lanes {
		if v == nf4Sentinel {
			gv.Flag |= 1 << i
			v = 0
		}
		gv.Values |= uint64(v) << (i * nf4LaneBits)
	}
	return gv
}

// Unpack is the inverse of [Pack].
func Unpack(gv GroupedValues) [nf4Lanes]uint32 {
	var lanes [nf4Lanes]uint32
	for i := range lanes {
		v := uint32(gv.Values>>(i*nf4LaneBits)) & nf4LaneMask
		if gv.Flag&(1<<i) != 0 {
			v = nf4Sentinel
		}
		lanes[i] = v
	}
	return lanes
}

// NF4Ring is the composite ring operating on packed [GroupedValues].
type NF4Ring struct {
	base *FermatRing[uint32]
}

// NewNF4Ring constructs the NF4 composite ring over F4 = 65537.
func NewNF4Ring() (*NF4Ring, error) {
	base, err := NewFermatRing[uint32](nf4Modulus)
	if err != nil {
		return nil, err
	}
	return &NF4Ring{base: base}, nil
}

// Field returns the underlying per-lane Fermat ring, for callers that
// need scalar F4 operations alongside packed ones.
func (n *NF4Ring) Field() *FermatRing[uint32] {
	return n.base
}

// Replicate broadcasts a scalar field element across all four lanes.
func (n *NF4Ring) Replicate(a uint32) GroupedValues {
	return Pack([nf4Lanes]uint32{a, a, a, a})
}

// Add returns the lane-wise sum of a and b.
func (n *NF4Ring) Add(a, b GroupedValues) GroupedValues {
	la, lb := Unpack(a), Unpack(b)
	var lr [nf4Lanes]uint32
	for i := range lr {
		lr[i] = n.base.Add(la[i], lb[i])
	}
	return Pack(lr)
}

// Sub returns the lane-wise difference of a and b.
func (n *NF4Ring) Sub(a, b GroupedValues) GroupedValues {
	la, lb := Unpack(a), Unpack(b)
	var lr [nf4Lanes]uint32
	for i := range lr {
		lr[i] = n.base.Sub(la[i], lb[i])
	}
	return Pack(lr)
}

// HadamardMul returns the lane-wise product of a and b.
func (n *NF4Ring) HadamardMul(a, b GroupedValues) GroupedValues {
	la, lb := Unpack(a), Unpack(b)
	var lr [nf4Lanes]uint32
	for i := range lr {
		lr[i] = n.base.Mul(la[i], lb[i])
	}
	return Pack(lr)
}
