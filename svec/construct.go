// Copyright 2025 go-shortvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svec

import "fmt"

// Part is one argument of a concatenating constructor: a scalar, a vector or
// a swizzle. Parts contribute their lanes in order.
type Part[T Lanes] interface {
	NumLanes() int
	appendLanes(dst []T) []T
}

type scalarPart[T Lanes] struct {
	x T
}

func (scalarPart[T]) NumLanes() int { return 1 }

func (s scalarPart[T]) appendLanes(dst []T) []T { return append(dst, s.x) }

// Scalar wraps a single value as a one-lane Part.
func Scalar[T Lanes](x T) Part[T] {
	return scalarPart[T]{x: x}
}

func (v Vec[T]) appendLanes(dst []T) []T {
	return append(dst, v.data[:v.n]...)
}

// Builder accumulates scalars and sub-vectors into a vector of a fixed width.
// The running lane count is checked on every append, so overflow is reported
// by Build even if later parts would have been valid.
type Builder[T Lanes] struct {
	n   int
	buf []T
	err error
}

// NewBuilder starts a vector of n lanes.
func NewBuilder[T Lanes](n int) *Builder[T] {
	b := &Builder[T]{n: n}
	if !ValidWidth(n) {
		b.err = fmt.Errorf("%w: %d", ErrWidth, n)
		return b
	}
	b.buf = make([]T, 0, MaxWidth)
	return b
}

// Scalar appends one lane per value.
func (b *Builder[T]) Scalar(xs ...T) *Builder[T] {
	for _, x := range xs {
		b.Append(scalarPart[T]{x: x})
	}
	return b
}

// Append appends every lane of each part.
func (b *Builder[T]) Append(parts ...Part[T]) *Builder[T] {
	for _, p := range parts {
		if b.err != nil {
			return b
		}
		if len(b.buf)+p.NumLanes() > b.n {
			b.err = fmt.Errorf("%w: parts supply more than %d lanes", ErrLaneCount, b.n)
			return b
		}
		b.buf = p.appendLanes(b.buf)
	}
	return b
}

// Build returns the finished vector, or an error if the parts did not supply
// exactly the builder's width.
func (b *Builder[T]) Build() (Vec[T], error) {
	if b.err != nil {
		return Vec[T]{}, b.err
	}
	if len(b.buf) != b.n {
		return Vec[T]{}, fmt.Errorf("%w: parts supply %d of %d lanes", ErrLaneCount, len(b.buf), b.n)
	}
	v := Vec[T]{n: b.n}
	copy(v.data[:], b.buf)
	return v, nil
}

// New creates an n-lane vector from the concatenation of parts.
//
// Example:
//
//	v4 := svec.Splat[float32](4, 1)
//	v8, err := svec.New[float32](8, svec.Scalar[float32](1), svec.Scalar[float32](2),
//		svec.Scalar[float32](3), v4, svec.Scalar[float32](4))
func New[T Lanes](n int, parts ...Part[T]) (Vec[T], error) {
	return NewBuilder[T](n).Append(parts...).Build()
}

// MustNew is like New but panics on error.
func MustNew[T Lanes](n int, parts ...Part[T]) Vec[T] {
	v, err := New(n, parts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Of creates a vector with one lane per value.
func Of[T Lanes](values ...T) (Vec[T], error) {
	if !ValidWidth(len(values)) {
		return Vec[T]{}, fmt.Errorf("%w: %d", ErrWidth, len(values))
	}
	v := Vec[T]{n: len(values)}
	copy(v.data[:], values)
	return v, nil
}

// MustOf is like Of but panics on error.
func MustOf[T Lanes](values ...T) Vec[T] {
	v, err := Of(values...)
	if err != nil {
		panic(err)
	}
	return v
}

// Load creates an n-lane vector from the first n elements of src.
func Load[T Lanes](n int, src []T) (Vec[T], error) {
	if !ValidWidth(n) {
		return Vec[T]{}, fmt.Errorf("%w: %d", ErrWidth, n)
	}
	if len(src) < n {
		return Vec[T]{}, fmt.Errorf("%w: need %d lanes, have %d", ErrLaneCount, n, len(src))
	}
	v := Vec[T]{n: n}
	copy(v.data[:n], src)
	return v, nil
}

// Splat creates an n-lane vector with all lanes set to value.
// It panics if n is not a valid width.
func Splat[T Lanes](n int, value T) Vec[T] {
	mustWidth(n)
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = value
	}
	return v
}

// Zero creates an n-lane vector with all lanes set to zero.
func Zero[T Lanes](n int) Vec[T] {
	mustWidth(n)
	return Vec[T]{n: n}
}

// Iota returns an n-lane vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes](n int) Vec[T] {
	mustWidth(n)
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = T(i)
	}
	return v
}
