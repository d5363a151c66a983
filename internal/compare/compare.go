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

// Package compare runs a single comparison: tokenization, the search for an edit script, and
// optional post processing.
package compare

import (
	"context"

	"znkr.io/tokendiff/internal/config"
	"znkr.io/tokendiff/internal/indentheuristic"
	"znkr.io/tokendiff/internal/myers"
	"znkr.io/tokendiff/internal/rvecs"
	"znkr.io/tokendiff/internal/tokenize"
)

// Result is the outcome of a comparison of x and y.
type Result struct {
	X, Y  []string     // Tokens of x and y.
	Spans []myers.Span // Edit script to transform X to Y.
}

// Compare tokenizes x and y using tok and computes the edit script between them.
func Compare(ctx context.Context, x, y string, tok tokenize.Tokenizer, cfg config.Config) (Result, error) {
	r := Result{
		X: tok.Tokenize(x),
		Y: tok.Tokenize(y),
	}

	// Handle trivial cases without running the search.
	switch {
	case x == y:
		r.Spans = single(myers.Match, len(r.Y))
		return r, nil
	case y == "":
		r.Spans = single(myers.Delete, len(r.X))
		return r, nil
	case x == "":
		r.Spans = single(myers.Insert, len(r.Y))
		return r, nil
	}

	eq := func(a, b string) bool { return tok.Equal(a, b, cfg.IgnoreWhitespace) }
	spans, err := myers.Diff(ctx, r.X, r.Y, eq, cfg.MaxEditLength)
	if err != nil {
		return Result{}, err
	}
	r.Spans = spans

	if cfg.IndentHeuristic {
		rx, ry := rvecs.FromSpans(r.Spans, len(r.X), len(r.Y))
		indentheuristic.Apply(r.X, r.Y, rx, ry)
		r.Spans = rvecs.Spans(rx, ry)
	}
	return r, nil
}

func single(op myers.Op, n int) []myers.Span {
	if n == 0 {
		return nil
	}
	return []myers.Span{{Op: op, N: n}}
}
