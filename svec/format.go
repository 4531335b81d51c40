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

import (
	"fmt"
	"strings"
)

// String formats the vector as "(x, y, ...)".
func (v Vec[T]) String() string {
	return "(" + v.Join(", ", "%v") + ")"
}

// Join formats each lane with verb and joins them with sep.
//
//	svec.MustOf[float32](1, 2).Join(" ", "%f") // "1.000000 2.000000"
func (v Vec[T]) Join(sep, verb string) string {
	var b strings.Builder
	for i := range v.n {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, verb, v.data[i])
	}
	return b.String()
}

// String formats the mask as a bracketed list of 1s and 0s.
func (m Mask[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range m.n {
		if i > 0 {
			b.WriteByte(' ')
		}
		if m.bits[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}
