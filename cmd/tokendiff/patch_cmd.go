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
	"io"

	"github.com/spf13/cobra"
	"znkr.io/tokendiff"
	"znkr.io/tokendiff/textdiff"
)

type patchOpts struct {
	*rootOpts
	context          int
	ignoreWhitespace bool
	indentHeuristic  bool
	label            string
	oldHeader        string
	newHeader        string
}

func newPatch(root *rootOpts) *patchOpts {
	return &patchOpts{rootOpts: root}
}

func (opts *patchOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch OLD NEW",
		Short: "Create a unified diff between two files",
		RunE:  opts.RunE,
	}
	cmd.Flags().IntVarP(&opts.context, "unified", "U", 4, "number of context lines")
	cmd.Flags().BoolVarP(&opts.ignoreWhitespace, "ignore-all-space", "w", false, "ignore whitespace when comparing lines")
	cmd.Flags().BoolVar(&opts.indentHeuristic, "indent-heuristic", false, "shift change boundaries to make the diff easier to read")
	cmd.Flags().StringVar(&opts.label, "label", "", "file name to use in the diff instead of the names of both files")
	cmd.Flags().StringVar(&opts.oldHeader, "old-header", "", "header for the old file, e.g. a timestamp")
	cmd.Flags().StringVar(&opts.newHeader, "new-header", "", "header for the new file, e.g. a timestamp")
	return cmd
}

func (opts *patchOpts) RunE(cmd *cobra.Command, args []string) error {
	colored, err := opts.useColor(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	x, y, err := readPair(cmd, args)
	if err != nil {
		return err
	}

	diffOpts := []tokendiff.Option{tokendiff.Context(opts.context)}
	if opts.ignoreWhitespace {
		diffOpts = append(diffOpts, tokendiff.IgnoreWhitespace())
	}
	if opts.indentHeuristic {
		diffOpts = append(diffOpts, textdiff.IndentHeuristic())
	}
	var formatOpts []tokendiff.Option
	if colored {
		formatOpts = append(formatOpts, textdiff.TerminalColors())
	}

	oldName, newName := args[0], args[1]
	if opts.label != "" {
		oldName, newName = opts.label, opts.label
	}
	p := textdiff.StructuredPatch(oldName, newName, x, y, opts.oldHeader, opts.newHeader, diffOpts...)
	if len(p.Hunks) == 0 {
		return nil
	}
	_, err = io.WriteString(cmd.OutOrStdout(), p.Format(formatOpts...))
	return err
}
