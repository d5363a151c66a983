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

	"znkr.io/tokendiff"
	"znkr.io/tokendiff/internal/config"
)

const separator = "==================================================================="

const resetColor = "\033[0m"

// Format renders p as a unified diff. If both file names are identical, the diff starts with an
// "Index:" line.
//
// The following option is supported: [TerminalColors]
func (p Patch) Format(opts ...tokendiff.Option) string {
	cfg := config.FromOptions(opts, config.TerminalColors)
	return p.format(cfg.Color)
}

func (p Patch) format(cc config.ColorConfig) string {
	var sb strings.Builder
	w := writer{&sb}

	if p.OldName == p.NewName {
		w.line(cc.FileHeader, "Index: "+p.OldName)
		w.line(cc.FileHeader, separator)
	}
	w.line(cc.FileHeader, fileHeader("--- ", p.OldName, p.OldHeader))
	w.line(cc.FileHeader, fileHeader("+++ ", p.NewName, p.NewHeader))

	for _, h := range p.Hunks {
		w.line(cc.HunkHeader, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines))
		for _, line := range h.Lines {
			code := ""
			switch {
			case strings.HasPrefix(line, prefixMatch):
				code = cc.Match
			case strings.HasPrefix(line, prefixDelete):
				code = cc.Delete
			case strings.HasPrefix(line, prefixInsert):
				code = cc.Insert
			}
			w.line(code, line)
		}
	}
	return sb.String()
}

func fileHeader(prefix, name, header string) string {
	if header == "" {
		return prefix + name
	}
	return prefix + name + "\t" + header
}

// writer writes lines, optionally wrapped in an ANSI escape sequence.
type writer struct {
	sb *strings.Builder
}

func (w writer) line(code, s string) {
	if code == "" {
		w.sb.WriteString(s)
		w.sb.WriteByte('\n')
		return
	}
	w.sb.WriteString(code)
	w.sb.WriteString(s)
	w.sb.WriteString(resetColor)
	w.sb.WriteByte('\n')
}
