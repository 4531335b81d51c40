package svec

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwizzleRead(t *testing.T) {
	tests := []struct {
		name   string
		input  []float32
		idx    []int
		expect []float32
	}{
		{
			name:   "reverse 4",
			input:  []float32{1, 2, 3, 4},
			idx:    []int{3, 2, 1, 0},
			expect: []float32{4, 3, 2, 1},
		},
		{
			name:   "repeat",
			input:  []float32{1, 2, 3, 4},
			idx:    []int{0, 0, 1, 1},
			expect: []float32{1, 1, 2, 2},
		},
		{
			name:   "narrow",
			input:  []float32{1, 2, 3, 4, 5, 6, 7, 8},
			idx:    []int{7, 5, 3},
			expect: []float32{8, 6, 4},
		},
		{
			name:   "same width with repeats",
			input:  []float32{1, 2},
			idx:    []int{1, 1},
			expect: []float32{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustOf(tt.input...)
			result := v.Swizzle(tt.idx...).Vec()
			if !reflect.DeepEqual(result.Slice(), tt.expect) {
				t.Errorf("Swizzle(%v) = %v, want %v", tt.idx, result.Slice(), tt.expect)
			}
		})
	}
}

func TestSwizzleInvalid(t *testing.T) {
	v := Iota[int32](4)
	assert.ErrorIs(t, capturePanic(func() { v.Swizzle(0, 4) }), ErrLaneRange)
	assert.ErrorIs(t, capturePanic(func() { v.Swizzle(0, 1, 2, 3, 0) }), ErrWidth)
	assert.ErrorIs(t, capturePanic(func() { v.Swizzle() }), ErrWidth)

	v2 := Iota[int32](2)
	assert.ErrorIs(t, capturePanic(func() { v2.Swizzle(1, 2) }), ErrLaneRange)
}

func TestSwizzleNeverWidens(t *testing.T) {
	v2 := MustOf[float32](1, 2)
	assert.ErrorIs(t, capturePanic(func() { v2.XXYY() }), ErrWidth)
	assert.ErrorIs(t, capturePanic(func() { v2.XYZ() }), ErrWidth)
	assert.ErrorIs(t, capturePanic(func() { v2.Swizzle(0, 1, 0, 1, 0, 1, 0, 1) }), ErrWidth)

	// A half view selects from its own lanes, not the parent's.
	v4 := MustOf[float32](1, 2, 3, 4)
	assert.ErrorIs(t, capturePanic(func() { v4.Lo().Swizzle(0, 1, 0, 1) }), ErrWidth)
	assert.Equal(t, []float32{2, 1}, v4.Lo().Swizzle(1, 0).Vec().Slice())
}

func TestLoHi(t *testing.T) {
	v := Iota[float32](8)
	assert.Equal(t, []float32{0, 1, 2, 3}, v.Lo().Vec().Slice())
	assert.Equal(t, []float32{4, 5, 6, 7}, v.Hi().Vec().Slice())
	assert.Equal(t, []float32{0, 2, 4, 6}, v.Even().Vec().Slice())
	assert.Equal(t, []float32{1, 3, 5, 7}, v.Odd().Vec().Slice())

	// lo ++ hi reconstructs the original ordering.
	joined, err := New[float32](8, v.Lo(), v.Hi())
	require.NoError(t, err)
	assert.Equal(t, v, joined)

	v3 := Iota[float32](3)
	assert.ErrorIs(t, capturePanic(func() { v3.Lo() }), ErrOddWidth)
	v1 := Iota[float32](1)
	assert.ErrorIs(t, capturePanic(func() { v1.Hi() }), ErrOddWidth)
}

func TestSwizzleComposition(t *testing.T) {
	v := Iota[int32](8)
	s := v.Hi().Swizzle(3, 2, 1, 0).Lo()
	assert.Equal(t, []int{7, 6}, s.Indices())
	assert.Equal(t, []int32{7, 6}, s.Vec().Slice())

	s.Assign(MustOf[int32](70, 60))
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5, 60, 70}, v.Slice())
}

func TestSwizzleWriteThrough(t *testing.T) {
	v := MustOf[float32](1, 2, 3, 4)
	v.WZYX().Set(0, 40)
	assert.Equal(t, float32(40), v.W())

	v.XY().AssignScalar(9)
	assert.Equal(t, []float32{9, 9, 3, 40}, v.Slice())

	assert.Equal(t, float32(3), v.ZW().X())
	assert.Equal(t, float32(40), v.ZW().S1())
}

func TestSwizzleRoundTrip(t *testing.T) {
	perms := [][]int{
		{3, 2, 1, 0},
		{1, 2, 3, 0},
		{2, 0, 3, 1},
	}
	for _, p := range perms {
		inv := make([]int, len(p))
		for i, j := range p {
			inv[j] = i
		}
		orig := MustOf[float32](1, 2, 3, 4)
		read := orig.Swizzle(p...).Vec()

		// Reading through the inverse permutation undoes the swizzle.
		assert.Equal(t, orig, read.Swizzle(inv...).Vec(), "perm %v", p)

		// Writing the permuted lanes back through the same indices puts every
		// lane home.
		v := Zero[float32](4)
		v.Swizzle(p...).Assign(read)
		assert.Equal(t, orig, v, "perm %v", p)

		// In place: permute the vector, then scatter it back.
		w := orig
		w.XYZW().Assign(w.Swizzle(p...))
		assert.Equal(t, read, w, "perm %v", p)
		w.Swizzle(p...).Assign(w)
		assert.Equal(t, orig, w, "perm %v", p)
	}
}

func TestSwizzleAssignSameVector(t *testing.T) {
	// v.wxzy = v.xxyy: lane3<-1, lane0<-1, lane2<-2, lane1<-2.
	v := MustOf[float32](1, 2, 3, 4)
	v.Swizzle(3, 0, 2, 1).Assign(v.Swizzle(0, 0, 1, 1))
	assert.Equal(t, []float32{1, 2, 2, 1}, v.Slice())
}

func TestSwizzleAssignOverlapSnapshots(t *testing.T) {
	// Shifting right by one through overlapping views. Reading lane by lane
	// while writing would smear lane 0 across the vector.
	v := MustOf[int32](1, 2, 3, 4)
	v.Swizzle(1, 2, 3).Assign(v.Swizzle(0, 1, 2))
	assert.Equal(t, []int32{1, 1, 2, 3}, v.Slice())
}

func TestSwizzleAssignRepeatedTarget(t *testing.T) {
	v := MustOf[int32](0, 0)
	v.XX().Assign(MustOf[int32](5, 6))
	assert.Equal(t, []int32{6, 0}, v.Slice())
}

func TestSwizzleAssignWidthMismatch(t *testing.T) {
	v := Iota[int32](4)
	err := capturePanic(func() { v.XYZ().Assign(MustOf[int32](1, 2)) })
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestSwizzleExampleProgram(t *testing.T) {
	v2 := MustNew[float32](8, Scalar[float32](1), Scalar[float32](2), Scalar[float32](3),
		Splat[float32](4, 1), Scalar[float32](4))
	v2 = FMA(v2, v2, v2)

	v2Lo := v2.Lo().Vec()
	assert.Equal(t, []float32{2, 6, 12, 2}, v2Lo.Slice())

	v3 := v2Lo.WZYX().Vec()
	assert.Equal(t, []float32{2, 12, 6, 2}, v3.Slice())

	v3.XWYZ().Assign(v2Lo.XXYY())
	assert.Equal(t, []float32{2, 6, 6, 2}, v3.Slice())

	// Nested: v3.yxzw().lo() = v2_lo.xxyy().hi()
	v3.YXZW().Lo().Assign(v2Lo.XXYY().Hi())
	assert.Equal(t, []float32{6, 6, 6, 2}, v3.Slice())

	// The source vector is never touched by writes to views of v3.
	assert.Equal(t, []float32{2, 6, 12, 2}, v2Lo.Slice())
}
