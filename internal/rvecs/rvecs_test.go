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

package rvecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/tokendiff/internal/myers"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		n, m  int
		spans []myers.Span
		want  []myers.Span
	}{
		{
			name: "empty",
		},
		{
			name:  "match-only",
			n:     3,
			m:     3,
			spans: []myers.Span{{Op: myers.Match, S: 0, T: 0, N: 3}},
			want:  []myers.Span{{Op: myers.Match, S: 0, T: 0, N: 3}},
		},
		{
			name: "insert-before-delete-is-normalized",
			n:    2,
			m:    2,
			spans: []myers.Span{
				{Op: myers.Insert, S: 0, T: 0, N: 1},
				{Op: myers.Delete, S: 0, T: 1, N: 1},
				{Op: myers.Match, S: 1, T: 1, N: 1},
			},
			want: []myers.Span{
				{Op: myers.Delete, S: 0, T: 0, N: 1},
				{Op: myers.Insert, S: 1, T: 0, N: 1},
				{Op: myers.Match, S: 1, T: 1, N: 1},
			},
		},
		{
			name: "mixed",
			n:    4,
			m:    3,
			spans: []myers.Span{
				{Op: myers.Match, S: 0, T: 0, N: 1},
				{Op: myers.Delete, S: 1, T: 1, N: 2},
				{Op: myers.Match, S: 3, T: 1, N: 1},
				{Op: myers.Insert, S: 4, T: 2, N: 1},
			},
			want: []myers.Span{
				{Op: myers.Match, S: 0, T: 0, N: 1},
				{Op: myers.Delete, S: 1, T: 1, N: 2},
				{Op: myers.Match, S: 3, T: 1, N: 1},
				{Op: myers.Insert, S: 4, T: 2, N: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := FromSpans(tt.spans, tt.n, tt.m)
			if len(rx) != tt.n+1 || len(ry) != tt.m+1 {
				t.Fatalf("FromSpans(...) returned vectors of length %d, %d, want %d, %d", len(rx), len(ry), tt.n+1, tt.m+1)
			}
			got := Spans(rx, ry)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Spans(FromSpans(...)) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}
