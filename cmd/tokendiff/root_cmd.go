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
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	color string
}

func newRoot() *rootOpts {
	return &rootOpts{}
}

var rootLongHelp = strings.TrimSpace(`
tokendiff compares two versions of a text.

Examples:
  tokendiff words old.txt new.txt          # Show changed words inline.
  tokendiff chars -o html old.txt new.txt  # Render changed characters as HTML.
  tokendiff patch -U 3 old.go new.go       # Create a unified diff.
  tokendiff apply old.go changes.patch     # Apply a unified diff.
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokendiff",
		Long:          rootLongHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "(auto|always|never) whether to color the output")

	for _, f := range flavors {
		cmd.AddCommand(newInline(opts, f).Command())
	}
	cmd.AddCommand(
		newPatch(opts).Command(),
		newApply(opts).Command(),
		newGitDiff(opts).Command(),
	)
	return cmd
}

// useColor reports if output written to w should be colored.
func (opts *rootOpts) useColor(w io.Writer) (bool, error) {
	switch opts.color {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, newUsageError(fmt.Sprintf("invalid value for --color: %q, must be 'auto', 'always' or 'never'", opts.color))
	}
}

// readInput reads the file at path, "-" reads from the command's input.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// readPair reads the two files to compare.
func readPair(cmd *cobra.Command, args []string) (x, y string, err error) {
	if len(args) != 2 {
		return "", "", errorWantedTwoArgs
	}
	if args[0] == "-" && args[1] == "-" {
		return "", "", newUsageError("only one file can be read from stdin")
	}
	if x, err = readInput(cmd, args[0]); err != nil {
		return "", "", err
	}
	if y, err = readInput(cmd, args[1]); err != nil {
		return "", "", err
	}
	return x, y, nil
}
