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

	"github.com/spf13/cobra"
	"znkr.io/tokendiff/textdiff"
)

type applyOpts struct {
	*rootOpts
	output string
}

func newApply(root *rootOpts) *applyOpts {
	return &applyOpts{rootOpts: root}
}

func (opts *applyOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply FILE PATCH",
		Short: "Apply a unified diff to a file",
		RunE:  opts.RunE,
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "file to write the result to, - writes to stdout")
	return cmd
}

func (opts *applyOpts) RunE(cmd *cobra.Command, args []string) error {
	source, patch, err := readPair(cmd, args)
	if err != nil {
		return err
	}

	patches, err := textdiff.ParsePatch(patch)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[1], err)
	}
	if len(patches) != 1 {
		return fmt.Errorf("%s contains changes for %d files, expected exactly one", args[1], len(patches))
	}

	out, err := textdiff.ApplyPatch(source, patches[0])
	if err != nil {
		return fmt.Errorf("applying %s: %w", args[1], err)
	}

	if opts.output == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(opts.output, []byte(out), 0o644)
}
