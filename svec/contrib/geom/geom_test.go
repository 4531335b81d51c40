package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-shortvec/svec"
)

func TestDot(t *testing.T) {
	a := svec.MustOf[float32](1, 2, 3)
	b := svec.MustOf[float32](4, 5, 6)
	if got := Dot(a, b); got != 32 {
		t.Errorf("Dot() = %v, want 32", got)
	}
}

func TestCross(t *testing.T) {
	x := svec.MustOf[float64](1, 0, 0)
	y := svec.MustOf[float64](0, 1, 0)
	assert.Equal(t, []float64{0, 0, 1}, Cross(x, y).Slice())
	assert.Equal(t, []float64{0, 0, -1}, Cross(y, x).Slice())

	a := svec.MustOf[float32](1, 2, 3, 9)
	b := svec.MustOf[float32](4, 5, 6, 9)
	assert.Equal(t, []float32{-3, 6, -3, 0}, Cross(a, b).Slice())

	assert.Panics(t, func() { Cross(svec.Iota[float32](2), svec.Iota[float32](2)) })
	assert.Panics(t, func() { Cross(svec.Iota[float32](3), svec.Iota[float32](4)) })
}

func TestLengthDistance(t *testing.T) {
	v := svec.MustOf[float64](3, 4)
	assert.Equal(t, 5.0, Length(v))
	assert.Equal(t, 5.0, Distance(svec.MustOf[float64](4, 6), svec.MustOf[float64](1, 2)))
}

func TestNormalize(t *testing.T) {
	n := Normalize(svec.MustOf[float64](0, 3, 4, 0))
	assert.InDeltaSlice(t, []float64{0, 0.6, 0.8, 0}, n.Slice(), 1e-15)
	assert.InDelta(t, 1.0, Length(n), 1e-15)

	z := svec.Zero[float32](4)
	assert.Equal(t, z, Normalize(z))
	assert.False(t, math.IsNaN(float64(Normalize(z).X())))
}
