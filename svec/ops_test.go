package svec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := Splat[float32](8, 10.0)
	b := Splat[float32](8, 5.0)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 15.0 {
			t.Errorf("Add: lane %d: got %v, want 15.0", i, result.Lane(i))
		}
	}
}

func TestSub(t *testing.T) {
	result := Sub(Splat[float32](4, 10.0), Splat[float32](4, 3.0))
	for i := 0; i < result.NumLanes(); i++ {
		if result.Lane(i) != 7.0 {
			t.Errorf("Sub: lane %d: got %v, want 7.0", i, result.Lane(i))
		}
	}
}

func TestMul(t *testing.T) {
	result := Mul(Iota[int32](4), Splat[int32](4, 3))
	assert.Equal(t, []int32{0, 3, 6, 9}, result.Slice())
}

func TestDiv(t *testing.T) {
	result := Div(Splat[float64](2, 20.0), MustOf[float64](4, 5))
	assert.Equal(t, []float64{5, 4}, result.Slice())

	assert.Equal(t, []int32{3, -3}, Div(MustOf[int32](7, -7), Splat[int32](2, 2)).Slice())
}

func TestMod(t *testing.T) {
	assert.Equal(t, []uint8{1, 0, 2}, Mod(MustOf[uint8](7, 9, 11), Splat[uint8](3, 3)).Slice())
}

func TestScalarBroadcast(t *testing.T) {
	v := Iota[float32](4)
	assert.Equal(t, []float32{2, 3, 4, 5}, AddScalar(v, 2).Slice())
	assert.Equal(t, []float32{-1, 0, 1, 2}, SubScalar(v, 1).Slice())
	assert.Equal(t, []float32{0, 2, 4, 6}, MulScalar(v, 2).Slice())
	assert.Equal(t, []float32{0, 0.5, 1, 1.5}, DivScalar(v, 2).Slice())
}

func TestNegAbs(t *testing.T) {
	v := MustOf[int32](-3, 0, 4)
	assert.Equal(t, []int32{3, 0, -4}, Neg(v).Slice())
	assert.Equal(t, []int32{3, 0, 4}, Abs(v).Slice())
	assert.Equal(t, []uint16{5, 7}, Abs(MustOf[uint16](5, 7)).Slice())
}

func TestMinMaxClamp(t *testing.T) {
	a := MustOf[float32](1, 5, 3, 7)
	b := MustOf[float32](4, 2, 6, 0)
	assert.Equal(t, []float32{1, 2, 3, 0}, Min(a, b).Slice())
	assert.Equal(t, []float32{4, 5, 6, 7}, Max(a, b).Slice())
	assert.Equal(t, []float32{2, 5, 3, 6}, Clamp(a, 2, 6).Slice())
}

func TestWidthMismatchPanics(t *testing.T) {
	err := capturePanic(func() { Add(Iota[float32](4), Iota[float32](8)) })
	assert.ErrorIs(t, err, ErrWidthMismatch)

	err = capturePanic(func() { FMA(Iota[float32](4), Iota[float32](4), Iota[float32](2)) })
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestFMA(t *testing.T) {
	a := MustOf[float32](2, 3, 4, 5)
	b := Splat[float32](4, 10)
	c := MustOf[float32](1, 2, 3, 4)
	result := FMA(a, b, c)

	for i := 0; i < result.NumLanes(); i++ {
		want := a.Lane(i)*b.Lane(i) + c.Lane(i)
		if result.Lane(i) != want {
			t.Errorf("FMA: lane %d: got %v, want %v", i, result.Lane(i), want)
		}
	}
	assert.Equal(t, result, MulAdd(a, b, c))
}

func TestFMASingleRounding(t *testing.T) {
	// (1+2^-30)*(1-2^-30) - 1 = -2^-60 exactly; a separate multiply rounds
	// the product to 1 and loses it.
	x := 1 + math.Ldexp(1, -30)
	y := 1 - math.Ldexp(1, -30)
	r := FMA(Splat(1, x), Splat(1, y), Splat(1, -1.0))
	assert.Equal(t, -math.Ldexp(1, -60), r.X())
}

func TestFMASelfApplication(t *testing.T) {
	v2 := MustNew[float32](8, Scalar[float32](1), Scalar[float32](2), Scalar[float32](3),
		Splat[float32](4, 1), Scalar[float32](4))
	v2 = FMA(v2, v2, v2)
	assert.Equal(t, []float32{2, 6, 12, 2, 2, 2, 2, 20}, v2.Slice())
	assert.Equal(t, []float32{4, 12, 24, 4, 4, 4, 4, 40}, Add(v2, v2).Slice())
}

func TestReduce(t *testing.T) {
	v := MustOf[int64](4, -2, 9, 1)
	assert.Equal(t, int64(12), ReduceSum(v))
	assert.Equal(t, int64(-2), ReduceMin(v))
	assert.Equal(t, int64(9), ReduceMax(v))
	assert.Equal(t, int64(0), ReduceMin(Vec[int64]{}))
}

func TestBitwise(t *testing.T) {
	a := MustOf[uint8](0b1100, 0b1010)
	b := MustOf[uint8](0b1010, 0b0110)
	assert.Equal(t, []uint8{0b1000, 0b0010}, And(a, b).Slice())
	assert.Equal(t, []uint8{0b1110, 0b1110}, Or(a, b).Slice())
	assert.Equal(t, []uint8{0b0110, 0b1100}, Xor(a, b).Slice())
	assert.Equal(t, []uint8{0xF3, 0xF5}, Not(a).Slice())
	assert.Equal(t, []uint8{0b110000, 0b101000}, ShiftLeft(a, 2).Slice())
	assert.Equal(t, []uint8{0b11, 0b10}, ShiftRight(a, 2).Slice())

	require.Equal(t, []int32{-2, 1}, ShiftRight(MustOf[int32](-4, 2), 1).Slice())
}

func TestShuffles(t *testing.T) {
	v := Iota[int32](4)
	assert.Equal(t, []int32{3, 2, 1, 0}, Reverse(v).Slice())
	assert.Equal(t, []int32{2, 2, 2, 2}, BroadcastLane(v, 2).Slice())

	w := AddScalar(v, 10)
	assert.Equal(t, []int32{0, 10, 1, 11}, InterleaveLower(v, w).Slice())
	assert.Equal(t, []int32{2, 12, 3, 13}, InterleaveUpper(v, w).Slice())

	c, err := Concat(v, w)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3, 10, 11, 12, 13}, c.Slice())

	_, err = Concat(v, Iota[int32](1))
	assert.ErrorIs(t, err, ErrWidth)
}

func TestConvert(t *testing.T) {
	v := MustOf[float32](1.5, -2.5, 3)
	assert.Equal(t, []int32{1, -2, 3}, Convert[int32](v).Slice())
}

func TestString(t *testing.T) {
	v := MustOf[float32](1, 2.5)
	assert.Equal(t, "(1, 2.5)", v.String())
	assert.Equal(t, "1.000000 2.500000", v.Join(" ", "%f"))
}
