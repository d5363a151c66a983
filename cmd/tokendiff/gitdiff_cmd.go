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

	"github.com/spf13/cobra"
	"znkr.io/tokendiff"
	"znkr.io/tokendiff/textdiff"
)

const devNull = "/dev/null"

// gitDiffOpts implements the GIT_EXTERNAL_DIFF protocol. git calls the external diff with the
// arguments
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// for every changed file.
type gitDiffOpts struct {
	*rootOpts
	context         int
	indentHeuristic bool
}

func newGitDiff(root *rootOpts) *gitDiffOpts {
	return &gitDiffOpts{rootOpts: root}
}

func (opts *gitDiffOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitdiff PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Create a diff in git's format, for use as GIT_EXTERNAL_DIFF",
		Long: `Create a diff in git's format. To use tokendiff with git, set

  GIT_EXTERNAL_DIFF="tokendiff gitdiff"`,
		RunE: opts.RunE,
	}
	cmd.Flags().IntVarP(&opts.context, "unified", "U", 3, "number of context lines")
	cmd.Flags().BoolVar(&opts.indentHeuristic, "indent-heuristic", true, "shift change boundaries to make the diff easier to read")
	return cmd
}

func (opts *gitDiffOpts) RunE(cmd *cobra.Command, args []string) error {
	// git passes additional arguments for renames.
	if len(args) < 7 {
		return newUsageError(fmt.Sprintf("expected at least 7 arguments, got %d", len(args)))
	}
	path, oldFile, oldHex, newFile, newHex, newMode := args[0], args[1], args[2], args[4], args[5], args[6]

	colored, err := opts.useColor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	read := func(file string) (string, error) {
		if file == devNull {
			return "", nil
		}
		return readInput(cmd, file)
	}
	x, err := read(oldFile)
	if err != nil {
		return err
	}
	y, err := read(newFile)
	if err != nil {
		return err
	}

	oldName, newName := "a/"+path, "b/"+path
	if oldFile == devNull {
		oldName = devNull
	}
	if newFile == devNull {
		newName = devNull
	}

	diffOpts := []tokendiff.Option{tokendiff.Context(opts.context)}
	if opts.indentHeuristic {
		diffOpts = append(diffOpts, textdiff.IndentHeuristic())
	}
	var formatOpts []tokendiff.Option
	if colored {
		formatOpts = append(formatOpts, textdiff.TerminalColors())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
	p := textdiff.StructuredPatch(oldName, newName, x, y, "", "", diffOpts...)
	_, err = io.WriteString(w, p.Format(formatOpts...))
	return err
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
