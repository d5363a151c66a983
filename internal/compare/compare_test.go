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

package compare

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/tokendiff/internal/config"
	"znkr.io/tokendiff/internal/myers"
	"znkr.io/tokendiff/internal/tokenize"
)

func TestCompare(t *testing.T) {
	withIndentHeuristic := config.Default
	withIndentHeuristic.IndentHeuristic = true

	tests := []struct {
		name string
		x, y string
		cfg  config.Config
		want []myers.Span
	}{
		{
			name: "empty",
			cfg:  config.Default,
			want: nil,
		},
		{
			name: "identical",
			x:    "a\nb\n",
			y:    "a\nb\n",
			cfg:  config.Default,
			want: []myers.Span{{Op: myers.Match, S: 0, T: 0, N: 2}},
		},
		{
			name: "x-empty",
			y:    "a\nb\n",
			cfg:  config.Default,
			want: []myers.Span{{Op: myers.Insert, S: 0, T: 0, N: 2}},
		},
		{
			name: "y-empty",
			x:    "a\nb\n",
			cfg:  config.Default,
			want: []myers.Span{{Op: myers.Delete, S: 0, T: 0, N: 2}},
		},
		{
			name: "replace",
			x:    "a\n",
			y:    "b\n",
			cfg:  config.Default,
			want: []myers.Span{
				{Op: myers.Insert, S: 0, T: 0, N: 1},
				{Op: myers.Delete, S: 0, T: 1, N: 1},
			},
		},
		{
			name: "replace-indent-heuristic",
			x:    "a\n",
			y:    "b\n",
			cfg:  withIndentHeuristic,
			want: []myers.Span{
				{Op: myers.Delete, S: 0, T: 0, N: 1},
				{Op: myers.Insert, S: 1, T: 0, N: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(context.Background(), tt.x, tt.y, tokenize.Lines{}, tt.cfg)
			if err != nil {
				t.Fatalf("Compare(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Spans); diff != "" {
				t.Errorf("Compare(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestCompare_maxEditLength(t *testing.T) {
	cfg := config.Default
	cfg.MaxEditLength = 1
	_, err := Compare(context.Background(), "abc", "xyz", tokenize.Chars{}, cfg)
	if !errors.Is(err, myers.ErrEditLengthExceeded) {
		t.Errorf("Compare(...) returned %v, want %v", err, myers.ErrEditLengthExceeded)
	}
}
