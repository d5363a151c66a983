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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		tok  Tokenizer
		in   string
		want []string
	}{
		{
			name: "chars-empty",
			tok:  Chars{},
			in:   "",
			want: nil,
		},
		{
			name: "chars",
			tok:  Chars{},
			in:   "abc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "chars-graphemes",
			tok:  Chars{},
			in:   "e\u0301te\u0301",
			want: []string{"e\u0301", "t", "e\u0301"},
		},
		{
			name: "words",
			tok:  Words{},
			in:   "New  Values",
			want: []string{"New", "  ", "Values"},
		},
		{
			name: "words-punctuation",
			tok:  Words{},
			in:   "foo.bar, baz",
			want: []string{"foo.bar", ",", " ", "baz"},
		},
		{
			name: "words-whitespace-run",
			tok:  Words{},
			in:   "a \n\t b",
			want: []string{"a", " \n\t ", "b"},
		},
		{
			name: "lines-empty",
			tok:  Lines{},
			in:   "",
			want: nil,
		},
		{
			name: "lines",
			tok:  Lines{},
			in:   "a\nb\r\n\nc",
			want: []string{"a\n", "b\r\n", "\n", "c"},
		},
		{
			name: "lines-terminated",
			tok:  Lines{},
			in:   "a\nb\n",
			want: []string{"a\n", "b\n"},
		},
		{
			name: "sentences",
			tok:  Sentences{},
			in:   "This is one. This is two!",
			want: []string{"This is one. ", "This is two!"},
		},
		{
			name: "css",
			tok:  CSS{},
			in:   ".a{color:red; margin: 0 1px}",
			want: []string{".a", "{", "color", ":", "red", ";", " ", "margin", ":", " ", "0", " ", "1px", "}"},
		},
		{
			name: "css-whitespace",
			tok:  CSS{},
			in:   "a ,\n  b",
			want: []string{"a", " ", ",", "\n  ", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tok.Tokenize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) differs [-want,+got]:\n%s", tt.in, diff)
			}
			if joined := strings.Join(got, ""); joined != tt.in {
				t.Errorf("Tokenize(%q) tokens join to %q", tt.in, joined)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name             string
		tok              Tokenizer
		a, b             string
		ignoreWhitespace bool
		want             bool
	}{
		{"identical", Words{}, "foo", "foo", false, true},
		{"different", Words{}, "foo", "bar", false, false},
		{"whitespace-strict", Words{}, " ", "  ", false, false},
		{"whitespace-ignored", Words{}, " ", "\t\n", true, true},
		{"whitespace-vs-word", Words{}, " ", "a", true, false},
		{"lines-strict", Lines{}, "a \n", "a\n", false, false},
		{"lines-trailing", Lines{}, "a \n", "a\n", true, true},
		{"lines-leading", Lines{}, "  a\n", "a\n", true, true},
		{"lines-interior", Lines{}, "a   b\n", "a b\n", true, true},
		{"lines-interior-missing", Lines{}, "ab\n", "a b\n", true, false},
		{"css-whitespace", CSS{}, "\n  ", " ", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.Equal(tt.a, tt.b, tt.ignoreWhitespace); got != tt.want {
				t.Errorf("Equal(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.ignoreWhitespace, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in             string
		want           []string
		missingNewline int
	}{
		{"", nil, -1},
		{"\n", []string{"\n"}, -1},
		{"a", []string{"a"}, 0},
		{"a\nb", []string{"a\n", "b"}, 1},
		{"a\nb\n", []string{"a\n", "b\n"}, -1},
	}
	for _, tt := range tests {
		got, missingNewline := SplitLines(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitLines(%q) differs [-want,+got]:\n%s", tt.in, diff)
		}
		if missingNewline != tt.missingNewline {
			t.Errorf("SplitLines(%q) missing newline = %d, want %d", tt.in, missingNewline, tt.missingNewline)
		}
	}
}
