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

// Package tokenize contains the strategies to split text into tokens and to compare tokens.
//
// All strategies are stateless. Everything that varies between calls is passed as an argument.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenizer splits text into tokens and defines when two tokens are equal.
//
// Concatenating the tokens returned by Tokenize must reproduce the input.
type Tokenizer interface {
	Tokenize(s string) []string
	Equal(a, b string, ignoreWhitespace bool) bool
}

// Equal reports if a and b are equal. If ignoreWhitespace is set, two tokens that consist only
// of whitespace are equal.
func Equal(a, b string, ignoreWhitespace bool) bool {
	return a == b || ignoreWhitespace && isSpace(a) && isSpace(b)
}

func isSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// Chars splits text into user perceived characters (extended grapheme clusters).
type Chars struct{}

func (Chars) Tokenize(s string) []string {
	var out []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

func (Chars) Equal(a, b string, ignoreWhitespace bool) bool { return Equal(a, b, ignoreWhitespace) }

// Words splits text at word boundaries. Every run of whitespace is a token of its own.
type Words struct{}

func (Words) Tokenize(s string) []string {
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		tok := iter.Value()
		// Word segmentation breaks around line breaks, but we want the whole run of whitespace
		// in a single token.
		if n := len(out); n > 0 && isSpace(tok) && isSpace(out[n-1]) {
			out[n-1] = s[iter.Start()-len(out[n-1]) : iter.End()]
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (Words) Equal(a, b string, ignoreWhitespace bool) bool { return Equal(a, b, ignoreWhitespace) }

// Sentences splits text into sentences, each including its trailing whitespace.
type Sentences struct{}

func (Sentences) Tokenize(s string) []string {
	var out []string
	iter := sentences.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

func (Sentences) Equal(a, b string, ignoreWhitespace bool) bool {
	return Equal(a, b, ignoreWhitespace)
}
