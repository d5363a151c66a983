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

package tokendiff

import (
	"context"
	"strings"

	"znkr.io/tokendiff/internal/compare"
	"znkr.io/tokendiff/internal/config"
	"znkr.io/tokendiff/internal/myers"
	"znkr.io/tokendiff/internal/tokenize"
)

// ErrEditLengthExceeded is returned by [Diff] if the comparison was aborted, either because the
// texts differ by more than allowed by [MaxEditLength] or because the context is done.
var ErrEditLengthExceeded = myers.ErrEditLengthExceeded

// Change describes a run of consecutive tokens that are either unchanged, added, or removed.
//
// At most one of Added and Removed is set. If neither is set, the tokens are unchanged. Two
// consecutive changes in a result never have the same kind.
type Change struct {
	Value   string // Concatenated tokens
	Added   bool   // Tokens were added in the new text
	Removed bool   // Tokens were removed from the old text
	Count   int    // Number of tokens
}

// Tokenizer splits text into tokens and compares tokens.
//
// Tokenize must return tokens that concatenate to the input. Equal must be consistent, that is
// equal tokens must remain equal irrespective of the order of the arguments. Implementations
// must be safe for concurrent use.
type Tokenizer = tokenize.Tokenizer

// Tokenizers used by the functions in this package.
var (
	CharTokenizer     Tokenizer = tokenize.Chars{}
	WordTokenizer     Tokenizer = tokenize.Words{}
	LineTokenizer     Tokenizer = tokenize.Lines{}
	SentenceTokenizer Tokenizer = tokenize.Sentences{}
	CSSTokenizer      Tokenizer = tokenize.CSS{}
)

// Diff compares x and y token by token using tok and returns the changes necessary to convert
// from one to the other.
//
// The following options are supported: [IgnoreWhitespace], [MaxEditLength]
//
// Diff checks ctx periodically and returns an error wrapping [ErrEditLengthExceeded] and the
// context's error if ctx is done before the comparison is finished.
func Diff(ctx context.Context, x, y string, tok Tokenizer, opts ...Option) ([]Change, error) {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.MaxEditLength)
	return diff(ctx, x, y, tok, cfg)
}

// Chars compares x and y character by character. A character is a user perceived character
// (extended grapheme cluster), e.g. a letter followed by combining accents is a single character.
//
// The following option is supported: [IgnoreWhitespace]
func Chars(x, y string, opts ...Option) []Change {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace)
	return mustDiff(x, y, CharTokenizer, cfg)
}

// Words compares x and y word by word. Words are determined by Unicode word boundaries, every
// punctuation character and every run of whitespace is a token of its own.
//
// The following option is supported: [IgnoreWhitespace]
func Words(x, y string, opts ...Option) []Change {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace)
	return mustDiff(x, y, WordTokenizer, cfg)
}

// Lines compares x and y line by line. Every line includes its line terminator.
//
// The following options are supported: [IgnoreWhitespace], [textdiff.IndentHeuristic]
//
// [textdiff.IndentHeuristic]: https://pkg.go.dev/znkr.io/tokendiff/textdiff#IndentHeuristic
func Lines(x, y string, opts ...Option) []Change {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IndentHeuristic)
	return mustDiff(x, y, LineTokenizer, cfg)
}

// Sentences compares x and y sentence by sentence. Every sentence includes trailing whitespace.
//
// The following option is supported: [IgnoreWhitespace]
func Sentences(x, y string, opts ...Option) []Change {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace)
	return mustDiff(x, y, SentenceTokenizer, cfg)
}

// CSS compares two style sheets. The style sheets are split at "{", "}", ":", ";", ",", and
// whitespace. Whitespace is always ignored.
func CSS(x, y string) []Change {
	cfg := config.Default
	cfg.IgnoreWhitespace = true
	return mustDiff(x, y, CSSTokenizer, cfg)
}

func mustDiff(x, y string, tok Tokenizer, cfg config.Config) []Change {
	out, err := diff(context.Background(), x, y, tok, cfg)
	if err != nil {
		// Can't happen without a limit.
		panic("unexpected error: " + err.Error())
	}
	return out
}

func diff(ctx context.Context, x, y string, tok Tokenizer, cfg config.Config) ([]Change, error) {
	r, err := compare.Compare(ctx, x, y, tok, cfg)
	if err != nil {
		return nil, err
	}

	// Trivial cases always result in a single change, even for empty texts.
	switch {
	case x == y:
		return []Change{{Value: y, Count: len(r.Y)}}, nil
	case y == "":
		return []Change{{Value: x, Removed: true, Count: len(r.X)}}, nil
	case x == "":
		return []Change{{Value: y, Added: true, Count: len(r.Y)}}, nil
	}

	out := make([]Change, 0, len(r.Spans))
	for _, sp := range r.Spans {
		switch sp.Op {
		case myers.Match:
			out = append(out, Change{
				Value: strings.Join(r.Y[sp.T:sp.T+sp.N], ""),
				Count: sp.N,
			})
		case myers.Delete:
			out = append(out, Change{
				Value:   strings.Join(r.X[sp.S:sp.S+sp.N], ""),
				Removed: true,
				Count:   sp.N,
			})
		case myers.Insert:
			out = append(out, Change{
				Value: strings.Join(r.Y[sp.T:sp.T+sp.N], ""),
				Added: true,
				Count: sp.N,
			})
		default:
			panic("never reached")
		}
	}
	return out, nil
}
