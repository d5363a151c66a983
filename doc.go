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

// Package tokendiff provides functions to compute minimal differences between two texts.
//
// The texts are split into tokens (characters, words, lines, sentences, or CSS tokens) and the
// result is a list of [Change] values that describe which runs of tokens are unchanged, added, or
// removed. Use [Diff] with a custom [Tokenizer] for other granularities.
//
// The result can be rendered as HTML with [Markup] or converted to diff-match-patch diffs with
// [ToDMP].
//
// Performance: The time complexity is O(ND) where N is the total number of tokens in both texts
// and D is the number of added and removed tokens. Use [Diff] with [MaxEditLength] or a context
// with a deadline to bound the work for inputs that differ a lot.
//
// Note: For unified diffs, please see [znkr.io/tokendiff/textdiff].
//
// [znkr.io/tokendiff/textdiff]: https://pkg.go.dev/znkr.io/tokendiff/textdiff
package tokendiff
