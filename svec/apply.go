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

// Apply transforms in to out in chunks of n lanes. fn is called with each
// n-lane chunk and must return an n-lane result. The last partial chunk is
// zero-padded before fn sees it and only its leading lanes are written back.
// Processes min(len(in), len(out)) elements.
//
// Example:
//
//	svec.Apply(8, in, out, func(v svec.Vec[float32]) svec.Vec[float32] {
//	    return svec.Mul(v, v)
//	})
func Apply[T Lanes](n int, in, out []T, fn func(Vec[T]) Vec[T]) {
	mustWidth(n)
	size := min(len(in), len(out))
	i := 0

	for ; i+n <= size; i += n {
		x := Vec[T]{n: n}
		copy(x.data[:n], in[i:])
		r := fn(x)
		checkSameWidth(n, r.n)
		r.Store(out[i : i+n])
	}

	if remaining := size - i; remaining > 0 {
		x := Vec[T]{n: n}
		copy(x.data[:remaining], in[i:size])
		r := fn(x)
		checkSameWidth(n, r.n)
		r.Store(out[i:size])
	}
}
