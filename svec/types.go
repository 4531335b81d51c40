// Package svec provides short fixed-width vectors with elementwise math and
// swizzle views.
//
// A Vec holds between 1 and 16 lanes of a single numeric type. Vectors are
// values: assigning one copies its lanes. Swizzles are views that read and
// write a reordered subset of a vector's lanes in place.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-shortvec/svec"
//
//	v1 := svec.Splat[float32](4, 1)
//	v2 := svec.MustNew[float32](8, svec.Scalar[float32](1), svec.Scalar[float32](2),
//		svec.Scalar[float32](3), v1, svec.Scalar[float32](4))
//
//	// Elementwise math
//	sum := svec.Add(v2, v2)
//
//	// Swizzles write through to the parent vector
//	lo := v2.Lo().Vec()
//	lo.WZYX().Assign(lo.XXYY())
package svec

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// MaxWidth is the widest supported vector.
const MaxWidth = 16

// ValidWidth reports whether n is a supported lane count (1, 2, 3, 4, 8 or 16).
func ValidWidth(n int) bool {
	switch n {
	case 1, 2, 3, 4, 8, 16:
		return true
	}
	return false
}

// Vec is a fixed-width vector of n lanes.
//
// The zero Vec has no lanes and is not usable for arithmetic; use Splat, Of,
// New or a Builder to create one.
type Vec[T Lanes] struct {
	data [MaxWidth]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value of lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	checkLane(i, v.n)
	return v.data[i]
}

// Set stores x into lane i. It panics if i is out of range.
func (v *Vec[T]) Set(i int, x T) {
	checkLane(i, v.n)
	v.data[i] = x
}

// Slice returns a copy of the lanes as a slice.
func (v Vec[T]) Slice() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to dst, truncating to len(dst).
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse to select lanes, or converted to the
// conventional -1/0 integer encoding with MaskVec.
type Mask[T Lanes] struct {
	// bits[i] is set if lane i is active.
	bits [MaxWidth]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits[:m.n] {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active. It panics with ErrLaneRange if i
// is outside the mask, like Vec.Lane.
func (m Mask[T]) GetBit(i int) bool {
	checkLane(i, m.n)
	return m.bits[i]
}

// MaskVec converts a mask to an integer vector holding -1 for active lanes
// and 0 for inactive ones.
func MaskVec[I SignedInts, T Lanes](m Mask[T]) Vec[I] {
	r := Vec[I]{n: m.n}
	for i := range m.n {
		if m.bits[i] {
			r.data[i] = -1
		}
	}
	return r
}
