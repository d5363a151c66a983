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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Markup renders changes as HTML. Added text is wrapped in <ins> and removed text in <del>
// elements, unchanged text is not wrapped. All text is escaped.
func Markup(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		switch {
		case c.Added:
			sb.WriteString("<ins>")
			htmlEscaper.WriteString(&sb, c.Value)
			sb.WriteString("</ins>")
		case c.Removed:
			sb.WriteString("<del>")
			htmlEscaper.WriteString(&sb, c.Value)
			sb.WriteString("</del>")
		default:
			htmlEscaper.WriteString(&sb, c.Value)
		}
	}
	return sb.String()
}

// ToDMP converts changes to diffs as used by [github.com/sergi/go-diff/diffmatchpatch]. This
// makes it possible to use the patch functionality of that package with the results of this one.
func ToDMP(changes []Change) []diffmatchpatch.Diff {
	out := make([]diffmatchpatch.Diff, 0, len(changes))
	for _, c := range changes {
		d := diffmatchpatch.Diff{Type: diffmatchpatch.DiffEqual, Text: c.Value}
		switch {
		case c.Added:
			d.Type = diffmatchpatch.DiffInsert
		case c.Removed:
			d.Type = diffmatchpatch.DiffDelete
		}
		out = append(out, d)
	}
	return out
}
