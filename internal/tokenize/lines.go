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

import "strings"

// Lines splits text into lines. Every line includes its line terminator, only the last line may
// be missing one.
type Lines struct{}

func (Lines) Tokenize(s string) []string {
	lines, _ := SplitLines(s)
	return lines
}

// Equal compares two lines. If ignoreWhitespace is set, leading and trailing whitespace
// (including the line terminator) is ignored and runs of whitespace compare equal to a single
// space.
func (Lines) Equal(a, b string, ignoreWhitespace bool) bool {
	if a == b {
		return true
	}
	if !ignoreWhitespace {
		return false
	}
	fa, fb := strings.Fields(a), strings.Fields(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}
	return true
}

// SplitLines splits the input on '\n' and returns the lines including the newline character and
// either -1 if the last line ends in a newline character or the index of the last line if it's
// missing a newline character.
func SplitLines(s string) (lines []string, missingNewline int) {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	if n == 0 {
		return nil, -1
	}
	a := make([]string, n)
	for i := range n {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			break
		}
		a[i] = s[:m+1]
		s = s[m+1:]
	}
	missingNewline = -1
	if len(s) > 0 {
		a[n-1] = s
		missingNewline = n - 1
	}
	return a, missingNewline
}
