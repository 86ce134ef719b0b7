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

package heckel

import (
	"znkr.io/heckel/internal/corr"
	"znkr.io/heckel/internal/impl"
)

// Op describes a patch operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Create Op = iota // An element of y that has no counterpart in x
	Update           // A matched element whose content changed between x and y
	Move             // A matched element whose position changed between x and y
	Delete           // An element of x that has no counterpart in y
)

// Patch describes a single edit of a difference.
//
//   - For Create and Update, Y is the element's position in y and X is -1.
//   - For Delete, X is the element's position in x and Y is -1.
//   - For Move, X is the element's position in x and Y its position in y.
//
// Positions always refer to the original inputs, never to an intermediate state that earlier
// patches have been applied to. Update and Move are independent: an element whose content changed
// and that was relocated at the same time produces both patches for the same position.
type Patch struct {
	Op   Op
	X, Y int
}

// Diff compares the contents of x and y and returns the patches necessary to convert from one to
// the other.
//
// Unlike an LCS-based diff, the output distinguishes elements that moved from elements that were
// deleted and recreated. If x and y are identical, the output has length zero.
//
// The output order is fixed and may be relied upon: all Delete patches come first in ascending
// order of X, followed by the patches for every position of y in ascending order of Y.
//
// Note that the algorithm is a fast heuristic: the result is always a correct description of the
// differences, but there is no guarantee that it is minimal.
func Diff[T comparable](x, y []T) []Patch {
	mx, my := impl.Match(x, y)
	return patches(x, y, mx, my, func(a, b T) bool { return a == b })
}

// DiffFunc compares the contents of x and y using the provided identity key and equality
// comparison and returns the patches necessary to convert from one to the other.
//
// Elements are matched by key and compared by eq. A matched element for which eq reports false
// produces an Update patch: the element is the same logical item in both inputs, but its content
// changed. For [Diff], where key and equality coincide, Update patches cannot occur. For the
// result to be meaningful, eq(a, b) must imply key(a) == key(b).
//
// The output order is the same as for [Diff].
func DiffFunc[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool) []Patch {
	mx, my := impl.MatchFunc(x, y, key, eq)
	return patches(x, y, mx, my, eq)
}

// patches translates the correspondence arrays into the patch representation. This is the sixth
// pass of the paper.
//
// The offset bookkeeping follows Heckel's formulation exactly: a deletion shifts all later
// positions of x, so the deletion offset is recorded per position of x and read at the matched
// position j; a creation shifts all later positions of y, so the creation offset is accumulated
// while walking y. A matched element sits at its expected position iff j + creations - deletions
// equals its position in y, everything else is a move.
func patches[T any](x, y []T, mx, my []int, eq func(a, b T) bool) []Patch {
	deleteOffsets := make([]int, len(mx))
	ndeletes := 0
	for i, j := range mx {
		deleteOffsets[i] = ndeletes
		if j == corr.Unmatched {
			ndeletes++
		}
	}

	// Compute the number of patches, this is relatively cheap and allows us to preallocate the
	// return value.
	npatches := ndeletes
	ncreates := 0
	for i, j := range my {
		if j == corr.Unmatched {
			npatches++
			ncreates++
			continue
		}
		if !eq(x[j], y[i]) {
			npatches++
		}
		if j+ncreates-deleteOffsets[j] != i {
			npatches++
		}
	}
	if npatches == 0 {
		return nil
	}

	out := make([]Patch, 0, npatches)
	for i, j := range mx {
		if j == corr.Unmatched {
			out = append(out, Patch{Op: Delete, X: i, Y: -1})
		}
	}
	ncreates = 0
	for i, j := range my {
		if j == corr.Unmatched {
			out = append(out, Patch{Op: Create, X: -1, Y: i})
			ncreates++
			continue
		}
		if !eq(x[j], y[i]) {
			out = append(out, Patch{Op: Update, X: -1, Y: i})
		}
		if j+ncreates-deleteOffsets[j] != i {
			out = append(out, Patch{Op: Move, X: j, Y: i})
		}
	}
	return out
}
