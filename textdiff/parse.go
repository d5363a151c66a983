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
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// ParsePatch parses one or more unified diffs.
//
// Lines before the "---" line of each file (like "Index:" lines, separators, or git extended
// headers) are skipped. Hunk line counts that are omitted default to 1. A hunk that doesn't match
// its declared line counts is an error.
func ParsePatch(s string) ([]Patch, error) {
	fds, err := diff.ParseMultiFileDiff([]byte(escapePatch(s)))
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	var out []Patch
	for _, fd := range fds {
		var p Patch
		p.OldName, p.OldHeader = splitFileHeader(fd.OrigName)
		p.NewName, p.NewHeader = splitFileHeader(fd.NewName)
		for i, dh := range fd.Hunks {
			h, err := convertHunk(dh)
			if err != nil {
				return nil, fmt.Errorf("parse patch: %s: hunk %d: %w", p.OldName, i+1, err)
			}
			p.Hunks = append(p.Hunks, h)
		}
		out = append(out, p)
	}
	return out, nil
}

// The diff reader parses text after a tab in a file header as a timestamp and drops carriage
// returns. It also folds the missing newline marker into the hunk body. Patches are escaped before
// reading so that every line comes back verbatim.
var (
	patchEscaper   = strings.NewReplacer("%", "%25", "\t", "%09", "\r", "%0D")
	patchUnescaper = strings.NewReplacer("%25", "%", "%09", "\t", "%0D", "\r")
)

// escapedNoNewline stands in for [NoNewline]. A bare "%" never appears in escaped text.
const escapedNoNewline = `\%`

func escapePatch(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for line := range strings.Lines(s) {
		text, nl := strings.CutSuffix(line, "\n")
		if text == NoNewline {
			sb.WriteString(escapedNoNewline)
		} else {
			sb.WriteString(patchEscaper.Replace(text))
		}
		if nl {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitFileHeader(s string) (name, header string) {
	name, header, _ = strings.Cut(patchUnescaper.Replace(s), "\t")
	return name, header
}

func convertHunk(dh *diff.Hunk) (Hunk, error) {
	h := Hunk{
		OldStart: int(dh.OrigStartLine),
		OldLines: int(dh.OrigLines),
		NewStart: int(dh.NewStartLine),
		NewLines: int(dh.NewLines),
	}
	if h.OldStart < 0 || h.OldLines < 0 || h.NewStart < 0 || h.NewLines < 0 {
		return Hunk{}, fmt.Errorf("negative range in @@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
	}

	oldLeft, newLeft := h.OldLines, h.NewLines
	for raw := range strings.Lines(string(dh.Body)) {
		raw = strings.TrimSuffix(raw, "\n")
		if raw == escapedNoNewline {
			if len(h.Lines) == 0 {
				return Hunk{}, fmt.Errorf("%q without a preceding line", NoNewline)
			}
			h.Lines = append(h.Lines, NoNewline)
			continue
		}
		line := patchUnescaper.Replace(raw)
		if oldLeft == 0 && newLeft == 0 {
			// Blank lines between files end up in the body of the last hunk.
			if strings.TrimSpace(line) != "" {
				return Hunk{}, fmt.Errorf("hunk has more lines than declared: %q", line)
			}
			continue
		}
		switch {
		case line == "":
			// Some tools strip the trailing space from empty context lines.
			line = prefixMatch
			fallthrough
		case strings.HasPrefix(line, prefixMatch):
			oldLeft--
			newLeft--
		case strings.HasPrefix(line, prefixDelete):
			oldLeft--
		case strings.HasPrefix(line, prefixInsert):
			newLeft--
		default:
			return Hunk{}, fmt.Errorf("unexpected line in hunk: %q", line)
		}
		if oldLeft < 0 || newLeft < 0 {
			return Hunk{}, fmt.Errorf("hunk has more lines than declared")
		}
		h.Lines = append(h.Lines, line)
	}
	if oldLeft > 0 || newLeft > 0 {
		return Hunk{}, fmt.Errorf("hunk ends early, missing %d old and %d new lines", oldLeft, newLeft)
	}
	return h, nil
}
