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

// Package impl contains the matching passes of Paul Heckel's algorithm.
//
// The algorithm builds a correspondence between the positions of two inputs x (the old input) and
// y (the new input) in five passes over shared working state. The passes must run in order, each
// one builds on the observations materialized by the previous ones.
//
// The working state is an occurrence table and the two correspondence arrays mx and my. The table
// maps every distinct element (more precisely: every distinct key, see below) to an entry counting
// its occurrences in x and y and recording the position of its last occurrence in x. The
// correspondence arrays record for every position of x the matched position in y and vice versa,
// or [corr.Unmatched].
//
// The five passes are:
//
//  1. Scan y and count every element's occurrences in y.
//  2. Scan x, count every element's occurrences in x and record the last position at which it was
//     seen. The last-occurrence semantics are deliberate and taken from the paper: every
//     occurrence overwrites the recorded position.
//  3. Match unique elements: an element that occurs exactly once in x and exactly once in y must
//     be the same element in both inputs, possibly relocated ("Observation 1" in the paper). These
//     pairs seed the correspondence arrays and are the only use of the occurrence table.
//  4. Extend matches forward: if the elements directly after a matched pair are equal and both
//     still unmatched, they must match as well, even if they are not unique ("Observation 2").
//     Scanning positions of y in ascending order lets a whole run of adjacent equal elements match
//     in a single sweep.
//  5. Extend matches backward: the mirror image of pass 4, scanning in descending order so that
//     runs in front of a seed match are picked up in a single sweep. Neither extension pass alone
//     saturates all matches, a run can sit on either side of its unique seed.
//
// Identity and equality are separate concerns: the table in passes 1-3 is keyed by an element's
// key, the adjacency extension in passes 4 and 5 compares elements for equality. For comparable
// element types both coincide ([Match]). [MatchFunc] accepts separate key and equality functions,
// which makes it possible to match elements by identity while detecting content changes, see the
// Update operation in the root package.
//
// The sixth pass of the paper, translating the correspondence arrays into edit operations, lives
// in the root package next to the patch representation it produces.
//
// # References
//
// Heckel, P. A technique for isolating differences between files. Commun. ACM 21, 4 (1978),
// 264-268. https://doi.org/10.1145/359460.359467
package impl

import (
	"znkr.io/heckel/internal/corr"
)

// entry is the occurrence table slot shared by all occurrences of one distinct element across
// both inputs.
type entry struct {
	xcount int // number of occurrences in x
	ycount int // number of occurrences in y
	xpos   int // position of the last occurrence in x
}

// Match compares the contents of x and y and returns the correspondence arrays pairing positions
// of x with positions of y. Unpaired positions are [corr.Unmatched].
func Match[K comparable](x, y []K) (mx, my []int) {
	return MatchFunc(x, y, func(k K) K { return k }, func(a, b K) bool { return a == b })
}

// MatchFunc compares the contents of x and y using the provided identity key and equality
// comparison and returns the correspondence arrays pairing positions of x with positions of y.
// Unpaired positions are [corr.Unmatched].
//
// Unique matching considers two elements the same if their keys are equal, adjacency extension
// requires eq. For the resulting correspondence to be meaningful, eq(a, b) must imply
// key(a) == key(b).
func MatchFunc[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool) (mx, my []int) {
	var h heckel[T, K]
	h.init(x, y, key, eq)
	h.scanNew()
	h.scanOld()
	h.matchUnique()
	h.extendForward()
	h.extendBackward()
	return h.mx, h.my
}

// heckel holds the working state shared by the passes.
type heckel[T any, K comparable] struct {
	x, y   []T
	key    func(T) K
	eq     func(a, b T) bool
	table  map[K]*entry
	mx, my []int
}

func (h *heckel[T, K]) init(x, y []T, key func(T) K, eq func(a, b T) bool) {
	h.x, h.y = x, y
	h.key, h.eq = key, eq
	h.table = make(map[K]*entry, len(x)+len(y))
	h.mx, h.my = corr.Make(x, y)
}

// scanNew is pass 1: count the occurrences of every element of y.
func (h *heckel[T, K]) scanNew() {
	for _, e := range h.y {
		k := h.key(e)
		t := h.table[k]
		if t == nil {
			t = &entry{}
			h.table[k] = t
		}
		t.ycount++
	}
}

// scanOld is pass 2: count the occurrences of every element of x and record the position of its
// last occurrence. Every occurrence overwrites xpos.
func (h *heckel[T, K]) scanOld() {
	for i, e := range h.x {
		k := h.key(e)
		t := h.table[k]
		if t == nil {
			t = &entry{}
			h.table[k] = t
		}
		t.xcount++
		t.xpos = i
	}
}

// matchUnique is pass 3: pair up every element that occurs exactly once in x and exactly once
// in y.
func (h *heckel[T, K]) matchUnique() {
	for i := range h.my {
		t := h.table[h.key(h.y[i])]
		if t == nil {
			// Pass 1 inserted an entry for every element of y.
			panic("element of y missing from occurrence table")
		}
		if t.ycount == 1 && t.xcount == 1 {
			h.my[i] = t.xpos
			h.mx[t.xpos] = i
		}
	}
}

// extendForward is pass 4: extend matched pairs through adjacent equal elements, scanning
// positions of y in ascending order.
func (h *heckel[T, K]) extendForward() {
	for i := 0; i+1 < len(h.my); i++ {
		j := h.my[i]
		if j == corr.Unmatched {
			continue
		}
		if j+1 < len(h.mx) && h.my[i+1] == corr.Unmatched && h.mx[j+1] == corr.Unmatched && h.eq(h.y[i+1], h.x[j+1]) {
			h.my[i+1] = j + 1
			h.mx[j+1] = i + 1
		}
	}
}

// extendBackward is pass 5: the mirror image of extendForward, scanning positions of y in
// descending order.
func (h *heckel[T, K]) extendBackward() {
	for i := len(h.my) - 1; i > 0; i-- {
		j := h.my[i]
		if j == corr.Unmatched {
			continue
		}
		if j > 0 && h.my[i-1] == corr.Unmatched && h.mx[j-1] == corr.Unmatched && h.eq(h.y[i-1], h.x[j-1]) {
			h.my[i-1] = j - 1
			h.mx[j-1] = i - 1
		}
	}
}
