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

package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// CSS splits style sheets at the punctuation characters "{}:;," and at runs of whitespace. The
// punctuation characters and whitespace runs are tokens of their own.
type CSS struct{}

func (CSS) Tokenize(s string) []string {
	var out []string
	start := 0 // start of the current token
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case isCSSPunct(r):
			if start < i {
				out = append(out, s[start:i])
			}
			out = append(out, s[i:i+size])
			i += size
			start = i
		case unicode.IsSpace(r):
			if start < i {
				out = append(out, s[start:i])
			}
			j := i + size
			for j < len(s) {
				r, size := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsSpace(r) {
					break
				}
				j += size
			}
			out = append(out, s[i:j])
			i = j
			start = i
		default:
			i += size
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func (CSS) Equal(a, b string, ignoreWhitespace bool) bool { return Equal(a, b, ignoreWhitespace) }

func isCSSPunct(r rune) bool {
	switch r {
	case '{', '}', ':', ';', ',':
		return true
	default:
		return false
	}
}
