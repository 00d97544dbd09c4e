package idarray

import "errors"

// Sentinel errors for IdArray operations.
var (
	// ErrBadBitWidth is returned when a bit-width outside {32,64} is requested.
	ErrBadBitWidth = errors.New("idarray: bit-width must be 32 or 64")

	// ErrIndexOutOfRange is returned by At/IndexSelect when an index falls
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("idarray: index out of range")

	// ErrLengthMismatch indicates that two arrays that must align in
	// length disagree. HStack does not return it: its operands may have
	// any lengths.
	ErrLengthMismatch = errors.New("idarray: length mismatch")

	// ErrRelabelMiss is returned by RelabelInPlace when an element has no
	// entry in the supplied mapping.
	ErrRelabelMiss = errors.New("idarray: value has no relabel mapping")
)

// IdArray is a dense 1-D integer tensor: {device (implicit, host-only),
// bit-width ∈ {32,64}, length}. graphflow never needs an actual N-D array
// or device placement, only this narrow integer-vector contract, so the
// backing store is always a Go []int64 regardless of the declared
// bit-width. bits is bookkeeping that lets callers (notably the sampler
// drivers, which are 64-bit only) reject 32-bit inputs without silently
// truncating.
//
// Values are shared, not copied, on every operation that documents
// "shares the same underlying storage" — callers must not mutate a
// returned IdArray's backing slice through Data() except via the
// explicitly in-place operations (RelabelInPlace).
type IdArray struct {
	data []int64
	bits int
}

// New returns a zero-filled IdArray of the given length and bit-width.
func New(length int, bits int) (IdArray, error) {
	if bits != 32 && bits != 64 {
		return IdArray{}, ErrBadBitWidth
	}
	if length < 0 {
		return IdArray{}, ErrIndexOutOfRange
	}
	return IdArray{data: make([]int64, length), bits: bits}, nil
}

// FromSlice wraps data as a 64-bit IdArray without copying.
func FromSlice(data []int64) IdArray {
	return IdArray{data: data, bits: 64}
}

// FromSliceBits wraps data with an explicit declared bit-width.
func FromSliceBits(data []int64, bits int) (IdArray, error) {
	if bits != 32 && bits != 64 {
		return IdArray{}, ErrBadBitWidth
	}
	return IdArray{data: data, bits: bits}, nil
}

// Range returns the dense fill [start, start+1, ..., end-1) as a 64-bit
// IdArray.
func Range(start, end int64) IdArray {
	if end < start {
		end = start
	}
	out := make([]int64, end-start)
	for i := range out {
		out[i] = start + int64(i)
	}
	return IdArray{data: out, bits: 64}
}

// Len returns the number of elements.
func (a IdArray) Len() int { return len(a.data) }

// Bits returns the declared bit-width (32 or 64).
func (a IdArray) Bits() int { return a.bits }

// At returns the element at index i.
func (a IdArray) At(i int) (int64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, ErrIndexOutOfRange
	}
	return a.data[i], nil
}

// MustAt is At without an error return, for call sites that have already
// range-checked (e.g. loop bodies iterating 0..Len()-1).
func (a IdArray) MustAt(i int) int64 { return a.data[i] }

// Data returns the backing slice. Callers must treat it as read-only
// unless they hold the sole reference (the contract §3 describes as
// "views returned to callers share the same underlying storage").
func (a IdArray) Data() []int64 { return a.data }

// Clone returns an independent copy of a.
func (a IdArray) Clone() IdArray {
	out := make([]int64, len(a.data))
	copy(out, a.data)
	return IdArray{data: out, bits: a.bits}
}

// IndexSelect gathers a[idx[i]] for each i. Returns ErrIndexOutOfRange if
// any selected index is out of bounds.
func (a IdArray) IndexSelect(idx IdArray) (IdArray, error) {
	out := make([]int64, idx.Len())
	for i, v := range idx.data {
		if v < 0 || int(v) >= len(a.data) {
			return IdArray{}, ErrIndexOutOfRange
		}
		out[i] = a.data[v]
	}
	return IdArray{data: out, bits: a.bits}, nil
}

// IndexSelectInts is IndexSelect taking plain int indices, a convenience
// used internally by sparse/bipartite where indices arise from Go loops
// rather than another IdArray.
func (a IdArray) IndexSelectInts(idx []int) (IdArray, error) {
	out := make([]int64, len(idx))
	for i, v := range idx {
		if v < 0 || v >= len(a.data) {
			return IdArray{}, ErrIndexOutOfRange
		}
		out[i] = a.data[v]
	}
	return IdArray{data: out, bits: a.bits}, nil
}

// LessThanScalar computes the element-wise comparison a[i] < scalar, the
// membership test behind batched has-vertices queries.
func (a IdArray) LessThanScalar(scalar int64) []bool {
	out := make([]bool, len(a.data))
	for i, v := range a.data {
		out[i] = v < scalar
	}
	return out
}

// HStack concatenates arrays horizontally. HStack widens to 64 if any
// operand is 64-bit.
func HStack(arrays ...IdArray) IdArray {
	bits := 32
	total := 0
	for _, a := range arrays {
		total += a.Len()
		if a.bits == 64 {
			bits = 64
		}
	}
	out := make([]int64, 0, total)
	for _, a := range arrays {
		out = append(out, a.data...)
	}
	return IdArray{data: out, bits: bits}
}

// RelabelInPlace rewrites every element through mapping, mutating a's
// backing slice. Returns ErrRelabelMiss if any element lacks an entry in
// mapping.
func (a IdArray) RelabelInPlace(mapping map[int64]int64) error {
	for i, v := range a.data {
		nv, ok := mapping[v]
		if !ok {
			return ErrRelabelMiss
		}
		a.data[i] = nv
	}
	return nil
}

// ToIntSlice returns a copy of the array's values as plain ints, a
// convenience for callers (sparse/bipartite) that index Go slices.
func (a IdArray) ToIntSlice() []int {
	out := make([]int, len(a.data))
	for i, v := range a.data {
		out[i] = int(v)
	}
	return out
}
