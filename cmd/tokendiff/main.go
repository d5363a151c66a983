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

// tokendiff compares files by characters, words, lines, sentences, or CSS tokens and creates and
// applies unified diffs.
//
// Usage:
//
//	tokendiff words OLD NEW
//	tokendiff patch [-U n] [-w] [--indent-heuristic] [--color auto|always|never] OLD NEW
//	tokendiff apply [-o OUT] FILE PATCH
//
// Arguments are file paths, "-" reads from stdin. tokendiff gitdiff can be used as
// GIT_EXTERNAL_DIFF.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRoot()
	cmd := root.Command()
	cmd.SetContext(ctx)
	if c, err := cmd.ExecuteC(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, c.UsageString())
		}
		stop()
		os.Exit(1)
	}
}
