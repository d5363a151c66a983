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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"znkr.io/tokendiff"
	"znkr.io/tokendiff/textdiff/color"
)

// flavor is a way to split text into tokens.
type flavor struct {
	name  string
	short string
	tok   tokendiff.Tokenizer
	// Whitespace is always ignored.
	ignoresWhitespace bool
}

var flavors = []flavor{
	{name: "chars", short: "Compare two files character by character", tok: tokendiff.CharTokenizer},
	{name: "words", short: "Compare two files word by word", tok: tokendiff.WordTokenizer},
	{name: "lines", short: "Compare two files line by line", tok: tokendiff.LineTokenizer},
	{name: "sentences", short: "Compare two files sentence by sentence", tok: tokendiff.SentenceTokenizer},
	{name: "css", short: "Compare two style sheets", tok: tokendiff.CSSTokenizer, ignoresWhitespace: true},
}

type inlineOpts struct {
	*rootOpts
	flavor           flavor
	format           string
	ignoreWhitespace bool
	maxEditLength    int
}

func newInline(root *rootOpts, f flavor) *inlineOpts {
	return &inlineOpts{rootOpts: root, flavor: f}
}

func (opts *inlineOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   opts.flavor.name + " OLD NEW",
		Short: opts.flavor.short,
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.format, "output", "o", "text", "(text|html|dmp) whether to output changes inline, as HTML markup, or as a diff-match-patch delta")
	if !opts.flavor.ignoresWhitespace {
		cmd.Flags().BoolVarP(&opts.ignoreWhitespace, "ignore-all-space", "w", false, "ignore whitespace when comparing tokens")
	}
	cmd.Flags().IntVar(&opts.maxEditLength, "max-edit-length", 0, "give up if the files differ by more than this many tokens, 0 means no limit")
	return cmd
}

func (opts *inlineOpts) RunE(cmd *cobra.Command, args []string) error {
	var output func(w io.Writer, changes []tokendiff.Change) error
	switch opts.format {
	case "text":
		colored, err := opts.useColor(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		output = func(w io.Writer, changes []tokendiff.Change) error {
			_, err := io.WriteString(w, inline(changes, colored))
			return err
		}
	case "html":
		output = func(w io.Writer, changes []tokendiff.Change) error {
			_, err := fmt.Fprintln(w, tokendiff.Markup(changes))
			return err
		}
	case "dmp":
		output = func(w io.Writer, changes []tokendiff.Change) error {
			dmp := diffmatchpatch.New()
			_, err := fmt.Fprintln(w, dmp.DiffToDelta(tokendiff.ToDMP(changes)))
			return err
		}
	default:
		return newUsageError("output format --output,-o must be 'text', 'html' or 'dmp'")
	}

	x, y, err := readPair(cmd, args)
	if err != nil {
		return err
	}

	var diffOpts []tokendiff.Option
	if opts.ignoreWhitespace || opts.flavor.ignoresWhitespace {
		diffOpts = append(diffOpts, tokendiff.IgnoreWhitespace())
	}
	if opts.maxEditLength > 0 {
		diffOpts = append(diffOpts, tokendiff.MaxEditLength(opts.maxEditLength))
	}
	changes, err := tokendiff.Diff(cmd.Context(), x, y, opts.flavor.tok, diffOpts...)
	if err != nil {
		return err
	}
	return output(cmd.OutOrStdout(), changes)
}

// inline renders changes in the style of git's word diff: removed text is enclosed in [-...-] and
// added text in {+...+}. With colors, the markers are replaced by red and green text.
func inline(changes []tokendiff.Change, colored bool) string {
	cc := color.Default()
	var sb strings.Builder
	for _, c := range changes {
		switch {
		case c.Added && colored:
			sb.WriteString(cc.Insert + c.Value + "\033[0m")
		case c.Added:
			sb.WriteString("{+" + c.Value + "+}")
		case c.Removed && colored:
			sb.WriteString(cc.Delete + c.Value + "\033[0m")
		case c.Removed:
			sb.WriteString("[-" + c.Value + "-]")
		default:
			sb.WriteString(c.Value)
		}
	}
	return sb.String()
}
