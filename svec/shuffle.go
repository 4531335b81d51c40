package svec

import "fmt"

// This file provides whole-vector shuffles that return new vectors. Unlike
// swizzles they never alias their input.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[v.n-1-i]
	}
	return r
}

// BroadcastLane broadcasts a single lane to all lanes in the vector.
func BroadcastLane[T Lanes](v Vec[T], lane int) Vec[T] {
	checkLane(lane, v.n)
	return Splat(v.n, v.data[lane])
}

// Concat joins a and b into one vector. The combined width must be valid.
func Concat[T Lanes](a, b Vec[T]) (Vec[T], error) {
	if !ValidWidth(a.n + b.n) {
		return Vec[T]{}, fmt.Errorf("%w: %d+%d lanes", ErrWidth, a.n, b.n)
	}
	return New[T](a.n+b.n, a, b)
}

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameWidth(a.n, b.n)
	checkHalvable(a.n)
	half := a.n / 2
	r := Vec[T]{n: a.n}
	for i := range half {
		r.data[2*i] = a.data[i]
		r.data[2*i+1] = b.data[i]
	}
	return r
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	checkSameWidth(a.n, b.n)
	checkHalvable(a.n)
	half := a.n / 2
	r := Vec[T]{n: a.n}
	for i := range half {
		r.data[2*i] = a.data[half+i]
		r.data[2*i+1] = b.data[half+i]
	}
	return r
}

// Convert converts every lane to another lane type with Go conversion rules.
func Convert[U, T Lanes](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = U(v.data[i])
	}
	return r
}
