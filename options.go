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

import "znkr.io/tokendiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// IgnoreWhitespace compares tokens whitespace insensitive.
//
// For most tokenizers, this means that two tokens that consist only of whitespace are equal. For
// lines, leading and trailing whitespace is ignored and runs of whitespace inside a line are
// equal to a single space.
//
// Unchanged runs always report the tokens from the new text.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// Context sets the number of lines to include before and after changes in unified diffs. The
// default is 4.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// MaxEditLength aborts the comparison with [ErrEditLengthExceeded] if the texts differ by more
// than n tokens. A value <= 0 means no limit.
func MaxEditLength(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxEditLength = max(0, n)
		return config.MaxEditLength
	}
}
