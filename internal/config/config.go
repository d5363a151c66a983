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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// tokendiff.Option.
package config

// ColorConfig holds the ANSI escape sequences used to color unified diffs. An empty string means
// that the corresponding part is not colored.
type ColorConfig struct {
	FileHeader string
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// Enabled reports if any part of the output is colored.
func (cc ColorConfig) Enabled() bool {
	return cc != ColorConfig{}
}

// Config collects all configurable parameters for comparison functions in this module.
//
// A Config is created once per call from the options passed to that call and never changes
// afterwards.
type Config struct {
	// Context is the number of lines to include as a prefix and postfix for hunks. Unchanged runs
	// of at most 2*Context lines between two changes are folded into a single hunk.
	Context int

	// If set, tokens are compared whitespace insensitive. The exact meaning depends on the
	// tokenizer.
	IgnoreWhitespace bool

	// If > 0, the search is aborted once the edit length exceeds this number.
	MaxEditLength int

	// If set, line diffs will apply indent heuristics.
	IndentHeuristic bool

	// Colors for unified diff output.
	Color ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Context:          4,
	IgnoreWhitespace: false,
	MaxEditLength:    0,
	IndentHeuristic:  false,
	Color:            ColorConfig{},
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	IgnoreWhitespace
	MaxEditLength
	IndentHeuristic
	TerminalColors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "tokendiff.Context"
	case IgnoreWhitespace:
		return "tokendiff.IgnoreWhitespace"
	case MaxEditLength:
		return "tokendiff.MaxEditLength"
	case IndentHeuristic:
		return "textdiff.IndentHeuristic"
	case TerminalColors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
