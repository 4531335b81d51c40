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

//go:generate go run ../cmd/swizzlegen -output . -pkg svec

// Swizzle is a view of selected lanes of a parent vector, in a chosen order.
// Reads and writes through the view go straight to the parent's storage.
//
// Indices are always resolved against the parent: swizzling a swizzle yields
// a new flat index list, never a chain of views. A Swizzle must not outlive
// the vector it was taken from.
type Swizzle[T Lanes] struct {
	parent *Vec[T]
	idx    [MaxWidth]uint8
	n      int
}

// view returns the identity swizzle over all of v's lanes.
func (v *Vec[T]) view() Swizzle[T] {
	s := Swizzle[T]{parent: v, n: v.n}
	for i := range v.n {
		s.idx[i] = uint8(i)
	}
	return s
}

// Swizzle returns a view of the lanes at the given indices, in that order.
// Indices may repeat. The number of indices must be a valid width no larger
// than v's.
//
//	v := svec.MustOf[float32](1, 2, 3, 4)
//	v.Swizzle(3, 2, 1, 0).Vec() // (4, 3, 2, 1)
func (v *Vec[T]) Swizzle(idx ...int) Swizzle[T] {
	return v.view().Swizzle(idx...)
}

// Lo returns a view of the first half of the lanes.
func (v *Vec[T]) Lo() Swizzle[T] { return v.view().Lo() }

// Hi returns a view of the second half of the lanes.
func (v *Vec[T]) Hi() Swizzle[T] { return v.view().Hi() }

// Even returns a view of the even-numbered lanes.
func (v *Vec[T]) Even() Swizzle[T] { return v.view().Even() }

// Odd returns a view of the odd-numbered lanes.
func (v *Vec[T]) Odd() Swizzle[T] { return v.view().Odd() }

// Swizzle selects lanes of this view, returning a view that still aliases the
// original parent vector. A view is never wider than the one it selects from.
func (s Swizzle[T]) Swizzle(idx ...int) Swizzle[T] {
	if !ValidWidth(len(idx)) || len(idx) > s.n {
		panic(fmt.Errorf("%w: swizzle of %d lanes from %d", ErrWidth, len(idx), s.n))
	}
	r := Swizzle[T]{parent: s.parent, n: len(idx)}
	for j, i := range idx {
		checkLane(i, s.n)
		r.idx[j] = s.idx[i]
	}
	return r
}

func (s Swizzle[T]) stride(start, step int) Swizzle[T] {
	checkHalvable(s.n)
	r := Swizzle[T]{parent: s.parent, n: s.n / 2}
	for j := range r.n {
		r.idx[j] = s.idx[start+j*step]
	}
	return r
}

// Lo returns a view of the first half of this view's lanes.
func (s Swizzle[T]) Lo() Swizzle[T] { return s.stride(0, 1) }

// Hi returns a view of the second half of this view's lanes.
func (s Swizzle[T]) Hi() Swizzle[T] { return s.stride(s.n/2, 1) }

// Even returns a view of this view's even-numbered lanes.
func (s Swizzle[T]) Even() Swizzle[T] { return s.stride(0, 2) }

// Odd returns a view of this view's odd-numbered lanes.
func (s Swizzle[T]) Odd() Swizzle[T] { return s.stride(1, 2) }

// NumLanes returns the number of lanes in the view.
func (s Swizzle[T]) NumLanes() int {
	return s.n
}

// Indices returns the parent lane index behind each lane of the view.
func (s Swizzle[T]) Indices() []int {
	out := make([]int, s.n)
	for j := range s.n {
		out[j] = int(s.idx[j])
	}
	return out
}

// Lane returns the value of lane i of the view.
func (s Swizzle[T]) Lane(i int) T {
	checkLane(i, s.n)
	return s.parent.data[s.idx[i]]
}

// Set writes x to the parent lane behind lane i of the view.
func (s Swizzle[T]) Set(i int, x T) {
	checkLane(i, s.n)
	s.parent.data[s.idx[i]] = x
}

// Vec copies the viewed lanes into a new vector.
func (s Swizzle[T]) Vec() Vec[T] {
	r := Vec[T]{n: s.n}
	for j := range s.n {
		r.data[j] = s.parent.data[s.idx[j]]
	}
	return r
}

func (s Swizzle[T]) appendLanes(dst []T) []T {
	for j := range s.n {
		dst = append(dst, s.parent.data[s.idx[j]])
	}
	return dst
}

// Assign writes src lane j to the parent lane behind view lane j, for every j
// in order. All of src is read before anything is written, so src may be a
// view of the same parent that overlaps this one. When the view repeats a
// parent lane, the last write to it wins.
func (s Swizzle[T]) Assign(src Part[T]) {
	checkSameWidth(s.n, src.NumLanes())
	var buf [MaxWidth]T
	lanes := src.appendLanes(buf[:0])
	for j := range s.n {
		s.parent.data[s.idx[j]] = lanes[j]
	}
}

// AssignScalar writes x to every lane of the view.
func (s Swizzle[T]) AssignScalar(x T) {
	for j := range s.n {
		s.parent.data[s.idx[j]] = x
	}
}
