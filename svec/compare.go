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

func compare[T Lanes](a, b Vec[T], op func(x, y T) bool) Mask[T] {
	checkSameWidth(a.n, b.n)
	m := Mask[T]{n: a.n}
	for i := range a.n {
		m.bits[i] = op(a.data[i], b.data[i])
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse selects lanes from a where mask is true, from b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	checkSameWidth(mask.n, a.n)
	checkSameWidth(a.n, b.n)
	r := Vec[T]{n: a.n}
	for i := range a.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IsNaN returns a mask of the lanes that hold NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = v.data[i] != v.data[i]
	}
	return m
}
