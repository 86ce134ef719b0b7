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

// Package heckel provides functions to compare two slices using Paul Heckel's algorithm for
// isolating differences.
//
// The main functions are [Diff], which compares slices of a comparable element type, and
// [DiffFunc], which matches elements by an identity key and compares their content with a
// separate equality function. Both return a flat list of [Patch] values describing creations,
// deletions, moves, and (for [DiffFunc]) content updates.
//
// Compared to the LCS-style algorithms used by most diff tools, Heckel's algorithm detects when
// an unchanged element merely changed position and reports it as a single Move instead of a
// Delete/Insert pair. The trade-off is optimality: the algorithm is a linear-time heuristic and
// the result is not guaranteed to be a minimal edit script.
//
// The algorithm runs in O(N) expected time and O(N) space where N is the sum of the input
// lengths. It performs no I/O, retains no state between calls, and never retains or mutates its
// inputs, so it is safe to call concurrently on independent inputs.
//
// Reference: Heckel, P. A technique for isolating differences between files. Commun. ACM 21, 4
// (1978), 264-268. https://doi.org/10.1145/359460.359467
package heckel
