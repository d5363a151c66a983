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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation in this package uses the basic greedy forward search described in section
// 3 of the paper. Every furthest reaching path carries the edit script that leads to it, so the
// result is available as soon as the first path reaches the end of both inputs. The runtime is
// O(ND) where N is the sum of the length of both inputs and D is the number of differences.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that the inputs are x = "ABCABBA" and y = "CBABAC". Then we can
// represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A step to the right deletes an element of x and a step down inserts an element of y. When both
// elements are identical, a diagonal edge represents a match. An optimal diff is a path from the
// top left to the bottom right with the fewest horizontal and vertical edges.
//
// We use s and t for positions in x and y. Unlike the paper, diagonals are numbered by k = t - s,
// that is, a deletion moves a path to diagonal k-1 and an insertion to diagonal k+1. Paths record
// the last consumed position in y, starting at -1 before anything is consumed; the position in x
// follows as s = t - k.
//
// A D-path is a path with exactly D non-diagonal edges. It ends on one of the diagonals in
// {-D, -D+2, ..., D-2, D}. A furthest reaching D-path on diagonal k is derived from the furthest
// reaching (D-1)-path on diagonal k-1 followed by an insertion or from the one on diagonal k+1
// followed by a deletion, each extended by the longest run of matches (a snake).
//
// Among the two candidates we pick the insertion unless it's infeasible or the deletion
// candidate reached further into y. That tie-break decides which of several optimal scripts is
// returned and must not change, callers compare outputs byte for byte.
//
// Paths are persistent: the edit script is a linked list of runs shared between paths. Extending
// a path never modifies a run that another path can see, it replaces the last run instead. This
// keeps extending a path O(1) while making sure that two paths derived from the same parent
// never interfere.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discoverd by Ekko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
