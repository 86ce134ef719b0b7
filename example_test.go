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

package heckel_test

import (
	"fmt"
	"strings"

	"znkr.io/heckel"
)

// Compare the two word sequences from Heckel's paper. The moves show how the algorithm tracks
// relocated elements that an LCS-based diff would report as deleted and reinserted.
func ExampleDiff() {
	x := strings.Fields("MUCH WRITING IS LIKE SNOW , A MASS OF LONG WORDS AND PHRASES FALLS UPON THE RELEVANT FACTS COVERING UP THE DETAILS .")
	y := strings.Fields("A MASS OF LATIN WORDS FALLS UPON THE RELEVANT FACTS LIKE SOFT SNOW , COVERING UP THE DETAILS .")

	for _, p := range heckel.Diff(x, y) {
		switch p.Op {
		case heckel.Create:
			fmt.Printf("create %q at %d\n", y[p.Y], p.Y)
		case heckel.Move:
			fmt.Printf("move %q from %d to %d\n", y[p.Y], p.X, p.Y)
		case heckel.Delete:
			fmt.Printf("delete %q at %d\n", x[p.X], p.X)
		default:
			panic("never reached")
		}
	}
	// Output:
	// delete "MUCH" at 0
	// delete "WRITING" at 1
	// delete "IS" at 2
	// delete "LONG" at 9
	// delete "AND" at 11
	// delete "PHRASES" at 12
	// move "A" from 6 to 0
	// move "MASS" from 7 to 1
	// move "OF" from 8 to 2
	// create "LATIN" at 3
	// move "WORDS" from 10 to 4
	// move "FALLS" from 13 to 5
	// move "UPON" from 14 to 6
	// move "THE" from 15 to 7
	// move "RELEVANT" from 16 to 8
	// move "FACTS" from 17 to 9
	// move "LIKE" from 3 to 10
	// create "SOFT" at 11
	// move "SNOW" from 4 to 12
	// move "," from 5 to 13
}

// Compare two task lists where tasks are identified by an ID. Matching by ID and comparing the
// full element lets the diff report edited tasks as updates instead of delete/create pairs.
func ExampleDiffFunc() {
	type task struct {
		ID    int
		Title string
	}

	x := []task{
		{1, "write"},
		{2, "review"},
		{3, "publish"},
	}
	y := []task{
		{2, "review draft"},
		{1, "write"},
		{3, "publish"},
	}

	patches := heckel.DiffFunc(x, y,
		func(t task) int { return t.ID },
		func(a, b task) bool { return a == b },
	)
	for _, p := range patches {
		switch p.Op {
		case heckel.Create:
			fmt.Printf("create %q at %d\n", y[p.Y].Title, p.Y)
		case heckel.Update:
			fmt.Printf("update task %d to %q\n", y[p.Y].ID, y[p.Y].Title)
		case heckel.Move:
			fmt.Printf("move task %d from %d to %d\n", y[p.Y].ID, p.X, p.Y)
		case heckel.Delete:
			fmt.Printf("delete %q at %d\n", x[p.X].Title, p.X)
		default:
			panic("never reached")
		}
	}
	// Output:
	// update task 2 to "review draft"
	// move task 2 from 1 to 0
	// move task 1 from 0 to 1
}
