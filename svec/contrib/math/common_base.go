package math

import (
	stdmath "math"

	"github.com/ajroetker/go-shortvec/svec"
)

// Degrees converts radians to degrees in each lane.
func Degrees[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	return map1(v, func(x float64) float64 { return x * (180 / stdmath.Pi) })
}

// Radians converts degrees to radians in each lane.
func Radians[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	return map1(v, func(x float64) float64 { return x * (stdmath.Pi / 180) })
}

// Mix linearly interpolates: x + (y - x) * a.
func Mix[T svec.Floats](x, y, a svec.Vec[T]) svec.Vec[T] {
	checkWidths(x.NumLanes(), a.NumLanes())
	return svec.FMA(svec.Sub(y, x), a, x)
}

// Step returns 0 in lanes where x < edge and 1 elsewhere.
func Step[T svec.Floats](edge, x svec.Vec[T]) svec.Vec[T] {
	return map2(edge, x, func(e, x float64) float64 {
		if x < e {
			return 0
		}
		return 1
	})
}

// Smoothstep performs Hermite interpolation between 0 and 1 when
// edge0 < x < edge1, and clamps to 0 or 1 outside that range.
func Smoothstep[T svec.Floats](edge0, edge1, x svec.Vec[T]) svec.Vec[T] {
	checkWidths(edge0.NumLanes(), edge1.NumLanes())
	checkWidths(edge0.NumLanes(), x.NumLanes())
	r := x
	for i := range x.NumLanes() {
		e0, e1 := float64(edge0.Lane(i)), float64(edge1.Lane(i))
		t := (float64(x.Lane(i)) - e0) / (e1 - e0)
		t = stdmath.Min(stdmath.Max(t, 0), 1)
		r.Set(i, T(t*t*(3-2*t)))
	}
	return r
}

// Sign returns 1, -1 or 0 according to the sign of each lane. NaN lanes stay
// NaN and signed zeros are preserved.
func Sign[T svec.Floats](v svec.Vec[T]) svec.Vec[T] {
	return map1(v, func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return x
	})
}
