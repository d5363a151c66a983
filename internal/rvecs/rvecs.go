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

// Package rvecs contains functions to work with result vectors, an alternative representation of
// an edit script: rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted. Both
// vectors have one extra element at the end that's always false.
//
// Result vectors make it easy to move edits around without breaking the edit script, span lists
// make it easy to walk the edit script in order. We convert between them when needed.
package rvecs

import "znkr.io/tokendiff/internal/myers"

// Make allocates result vectors for inputs of length n and m.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, (n + m + 2))
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// FromSpans creates result vectors for an edit script that transforms x to y with len(x) = n
// and len(y) = m.
func FromSpans(spans []myers.Span, n, m int) (rx, ry []bool) {
	rx, ry = Make(n, m)
	for _, sp := range spans {
		switch sp.Op {
		case myers.Delete:
			for s := sp.S; s < sp.S+sp.N; s++ {
				rx[s] = true
			}
		case myers.Insert:
			for t := sp.T; t < sp.T+sp.N; t++ {
				ry[t] = true
			}
		}
	}
	return rx, ry
}

// Spans converts result vectors back into a list of spans. Within a group of changes, deletions
// come before insertions.
func Spans(rx, ry []bool) []myers.Span {
	var out []myers.Span
	push := func(op myers.Op, s, t, n int) {
		if n == 0 {
			return
		}
		if k := len(out) - 1; k >= 0 && out[k].Op == op {
			out[k].N += n
			return
		}
		out = append(out, myers.Span{Op: op, S: s, T: t, N: n})
	}

	n, m := len(rx)-1, len(ry)-1
	for s, t := 0, 0; s < n || t < m; {
		s0 := s
		for s < n && rx[s] {
			s++
		}
		push(myers.Delete, s0, t, s-s0)
		t0 := t
		for t < m && ry[t] {
			t++
		}
		push(myers.Insert, s, t0, t-t0)
		s0, t0 = s, t
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
		push(myers.Match, s0, t0, s-s0)
	}
	return out
}
