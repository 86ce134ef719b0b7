// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package corr contains functions to work with correspondence arrays, the internal representation
// that's shared between the matching passes and the patch emission in the root package. A
// correspondence array records for every position of one input the matched position in the other
// input, or Unmatched. Positions are plain integer indexes into the original inputs, there are no
// references between entries.
package corr

// Unmatched marks a position that has no counterpart in the other input.
const Unmatched = -1

// Make allocates the correspondence arrays for x and y with all positions unmatched. Both arrays
// share a single backing allocation.
func Make[T any](x, y []T) (mx, my []int) {
	m := make([]int, len(x)+len(y))
	for i := range m {
		m[i] = Unmatched
	}
	mx = m[:len(x):len(x)]
	my = m[len(x):]
	return
}
