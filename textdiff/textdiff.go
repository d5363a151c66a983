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
// Package textdiff compares text line by line and works with the results as unified diffs.
//
// [StructuredPatch] computes the hunks of a unified diff as data, [CreatePatch] renders them as
// text. [ParsePatch] and [ApplyPatch] read unified diffs and apply them to text.
package textdiff

import (
	"context"

	"znkr.io/tokendiff"
	"znkr.io/tokendiff/internal/compare"
	"znkr.io/tokendiff/internal/config"
	"znkr.io/tokendiff/internal/myers"
	"znkr.io/tokendiff/internal/tokenize"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// NoNewline is the marker line that follows a line without a line terminator.
const NoNewline = `\ No newline at end of file`

// Patch describes the changes between two files.
type Patch struct {
	OldName, NewName     string
	OldHeader, NewHeader string // Typically a timestamp or revision, may be empty.
	Hunks                []Hunk
}

// Hunk is a contiguous block of changes with surrounding context.
//
// Every entry in Lines starts with a prefix: " " for context, "-" for removed, and "+" for added
// lines. Lines don't include line terminators. A line without a line terminator in the original
// text is followed by [NoNewline].
//
// Line numbers are 1-based. If a side of the hunk is empty, its start is the line before the hunk.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []string
}

// StructuredPatch compares the lines in x and y and returns the changes necessary to convert from
// one to the other as a patch.
//
// Unchanged lines are taken from x. Unchanged runs between two changes are folded into a single
// hunk if they are at most twice as long as the context.
//
// The following options are supported: [tokendiff.Context], [tokendiff.IgnoreWhitespace],
// [IndentHeuristic]
func StructuredPatch(oldName, newName, x, y, oldHeader, newHeader string, opts ...tokendiff.Option) Patch {
	cfg := config.FromOptions(opts, config.Context|config.IgnoreWhitespace|config.IndentHeuristic)
	return structuredPatch(oldName, newName, x, y, oldHeader, newHeader, cfg)
}

// CreatePatch compares the lines in x and y and returns the changes necessary to convert from one
// to the other as a unified diff. The file name is used for both sides.
//
// The following options are supported: [tokendiff.Context], [tokendiff.IgnoreWhitespace],
// [IndentHeuristic], [TerminalColors]
func CreatePatch(name, x, y, oldHeader, newHeader string, opts ...tokendiff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.IgnoreWhitespace|config.IndentHeuristic|config.TerminalColors)
	p := structuredPatch(name, name, x, y, oldHeader, newHeader, cfg)
	return p.format(cfg.Color)
}

func structuredPatch(oldName, newName, x, y, oldHeader, newHeader string, cfg config.Config) Patch {
	p := Patch{
		OldName:   oldName,
		NewName:   newName,
		OldHeader: oldHeader,
		NewHeader: newHeader,
	}

	r, err := compare.Compare(context.Background(), x, y, tokenize.Lines{}, cfg)
	if err != nil {
		// Can't happen without a limit.
		panic("unexpected error: " + err.Error())
	}

	b := hunkBuilder{x: r.X, y: r.Y, context: cfg.Context}
	// The sentinel closes the last hunk.
	spans := append(r.Spans, myers.Span{Op: myers.Match, S: len(r.X), T: len(r.Y)})
	for i, sp := range spans {
		if sp.Op != myers.Match {
			if !b.open {
				var prev myers.Span
				if i > 0 {
					prev = spans[i-1]
				}
				b.start(prev)
			}
			b.change(sp)
			continue
		}
		if b.open {
			if sp.N <= 2*b.context && i < len(spans)-2 {
				b.lines(prefixMatch, r.X, sp.S, sp.S+sp.N)
			} else {
				p.Hunks = append(p.Hunks, b.close(sp))
			}
		}
		b.oldLine += sp.N
		b.newLine += sp.N
	}
	return p
}

// hunkBuilder accumulates the lines of one hunk at a time.
type hunkBuilder struct {
	x, y    []string
	context int

	oldLine, newLine int // Number of lines consumed on each side.

	open               bool
	oldStart, newStart int // 0-based
	body               []string
}

// start opens a new hunk with up to context lines from the unchanged span before it.
func (b *hunkBuilder) start(prev myers.Span) {
	n := min(b.context, prev.N)
	b.open = true
	b.oldStart = b.oldLine - n
	b.newStart = b.newLine - n
	b.body = nil
	b.lines(prefixMatch, b.x, prev.S+prev.N-n, prev.S+prev.N)
}

func (b *hunkBuilder) change(sp myers.Span) {
	switch sp.Op {
	case myers.Delete:
		b.lines(prefixDelete, b.x, sp.S, sp.S+sp.N)
		b.oldLine += sp.N
	case myers.Insert:
		b.lines(prefixInsert, b.y, sp.T, sp.T+sp.N)
		b.newLine += sp.N
	default:
		panic("never reached")
	}
}

// close completes the current hunk with up to context lines from the unchanged span after it.
func (b *hunkBuilder) close(next myers.Span) Hunk {
	n := min(b.context, next.N)
	b.lines(prefixMatch, b.x, next.S, next.S+n)
	h := Hunk{
		OldStart: b.oldStart + 1,
		OldLines: b.oldLine - b.oldStart + n,
		NewStart: b.newStart + 1,
		NewLines: b.newLine - b.newStart + n,
		Lines:    b.body,
	}
	if h.OldLines == 0 {
		h.OldStart--
	}
	if h.NewLines == 0 {
		h.NewStart--
	}
	b.open = false
	b.body = nil
	return h
}

func (b *hunkBuilder) lines(prefix string, lines []string, lo, hi int) {
	for _, line := range lines[lo:hi] {
		if n := len(line); n > 0 && line[n-1] == '\n' {
			b.body = append(b.body, prefix+line[:n-1])
		} else {
			b.body = append(b.body, prefix+line, NoNewline)
		}
	}
}
