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

package textdiff

import (
	"errors"
	"fmt"
	"strings"

	"znkr.io/tokendiff/internal/tokenize"
)

// ErrConflict is returned by [ApplyPatch] if a patch doesn't match the text it's applied to.
var ErrConflict = errors.New("patch does not apply")

// ApplyPatch applies the hunks of p to s and returns the result.
//
// Hunks are applied at the positions they declare. Context and removed lines must match s
// exactly, otherwise an error wrapping [ErrConflict] is returned.
func ApplyPatch(s string, p Patch) (string, error) {
	lines, _ := tokenize.SplitLines(s)

	var sb strings.Builder
	pos := 0 // index of the next unconsumed line in lines
	for i, h := range p.Hunks {
		start := h.OldStart - 1
		if h.OldLines == 0 {
			start = h.OldStart
		}
		if start < pos || start > len(lines) {
			return "", fmt.Errorf("%w: hunk %d: start line %d out of range", ErrConflict, i+1, h.OldStart)
		}
		for _, line := range lines[pos:start] {
			sb.WriteString(line)
		}
		pos = start

		for j, hl := range h.Lines {
			if hl == NoNewline {
				continue
			}
			if hl == "" {
				return "", fmt.Errorf("hunk %d: empty line without prefix", i+1)
			}
			text := hl[1:] + "\n"
			if j+1 < len(h.Lines) && h.Lines[j+1] == NoNewline {
				text = hl[1:]
			}
			switch hl[:1] {
			case prefixMatch, prefixDelete:
				if pos >= len(lines) {
					return "", fmt.Errorf("%w: hunk %d: line %d: unexpected end of text", ErrConflict, i+1, pos+1)
				}
				if lines[pos] != text {
					return "", fmt.Errorf("%w: hunk %d: line %d: got %q, want %q", ErrConflict, i+1, pos+1, lines[pos], text)
				}
				if hl[:1] == prefixMatch {
					sb.WriteString(text)
				}
				pos++
			case prefixInsert:
				sb.WriteString(text)
			default:
				return "", fmt.Errorf("hunk %d: invalid line %q", i+1, hl)
			}
		}
	}
	for _, line := range lines[pos:] {
		sb.WriteString(line)
	}
	return sb.String(), nil
}
