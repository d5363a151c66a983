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

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFlavors(t *testing.T) {
	tests := []struct {
		name string
		diff func(x, y string) []Change
		x, y string
		want []Change
	}{
		{
			name: "chars-identical",
			diff: func(x, y string) []Change { return Chars(x, y) },
			x:    "abc",
			y:    "abc",
			want: []Change{{Value: "abc", Count: 3}},
		},
		{
			name: "chars-both-empty",
			diff: func(x, y string) []Change { return Chars(x, y) },
			want: []Change{{Value: "", Count: 0}},
		},
		{
			name: "chars-y-empty",
			diff: func(x, y string) []Change { return Chars(x, y) },
			x:    "abc",
			want: []Change{{Value: "abc", Removed: true, Count: 3}},
		},
		{
			name: "chars-x-empty",
			diff: func(x, y string) []Change { return Chars(x, y) },
			y:    "abc",
			want: []Change{{Value: "abc", Added: true, Count: 3}},
		},
		{
			name: "chars",
			diff: func(x, y string) []Change { return Chars(x, y) },
			x:    "abcd",
			y:    "acbd",
			want: []Change{
				{Value: "a", Count: 1},
				{Value: "c", Added: true, Count: 1},
				{Value: "b", Count: 1},
				{Value: "c", Removed: true, Count: 1},
				{Value: "d", Count: 1},
			},
		},
		{
			name: "chars-restaurant",
			diff: func(x, y string) []Change { return Chars(x, y) },
			x:    "restaurant",
			y:    "aura",
			want: []Change{
				{Value: "rest", Removed: true, Count: 4},
				{Value: "aura", Count: 4},
				{Value: "nt", Removed: true, Count: 2},
			},
		},
		{
			name: "chars-graphemes",
			diff: func(x, y string) []Change { return Chars(x, y) },
			x:    "Hello, World",
			y:    "Hello, 世界",
			want: []Change{
				{Value: "Hello, ", Count: 7},
				{Value: "世界", Added: true, Count: 2},
				{Value: "World", Removed: true, Count: 5},
			},
		},
		{
			name: "words",
			diff: func(x, y string) []Change { return Words(x, y) },
			x:    "The quick brown fox",
			y:    "The slow brown dog",
			want: []Change{
				{Value: "The ", Count: 2},
				{Value: "slow", Added: true, Count: 1},
				{Value: "quick", Removed: true, Count: 1},
				{Value: " brown ", Count: 3},
				{Value: "dog", Added: true, Count: 1},
				{Value: "fox", Removed: true, Count: 1},
			},
		},
		{
			name: "words-whitespace",
			diff: func(x, y string) []Change { return Words(x, y) },
			x:    "New Value",
			y:    "New  Values",
			want: []Change{
				{Value: "New", Count: 1},
				{Value: "  Values", Added: true, Count: 2},
				{Value: " Value", Removed: true, Count: 2},
			},
		},
		{
			name: "words-ignore-whitespace",
			diff: func(x, y string) []Change { return Words(x, y, IgnoreWhitespace()) },
			x:    "New Value",
			y:    "New  Values",
			want: []Change{
				{Value: "New  ", Count: 2},
				{Value: "Values", Added: true, Count: 1},
				{Value: "Value", Removed: true, Count: 1},
			},
		},
		{
			name: "lines",
			diff: func(x, y string) []Change { return Lines(x, y) },
			x:    "a\nb\nc\n",
			y:    "a\nc\n",
			want: []Change{
				{Value: "a\n", Count: 1},
				{Value: "b\n", Removed: true, Count: 1},
				{Value: "c\n", Count: 1},
			},
		},
		{
			name: "lines-ignore-whitespace",
			diff: func(x, y string) []Change { return Lines(x, y, IgnoreWhitespace()) },
			x:    "a \n",
			y:    "a\n",
			want: []Change{{Value: "a\n", Count: 1}},
		},
		{
			name: "lines-missing-newline",
			diff: func(x, y string) []Change { return Lines(x, y) },
			x:    "a\nb",
			y:    "a\nb\n",
			want: []Change{
				{Value: "a\n", Count: 1},
				{Value: "b\n", Added: true, Count: 1},
				{Value: "b", Removed: true, Count: 1},
			},
		},
		{
			name: "sentences",
			diff: func(x, y string) []Change { return Sentences(x, y) },
			x:    "This is one. This is two. This is three.",
			y:    "This is one. This is three.",
			want: []Change{
				{Value: "This is one. ", Count: 1},
				{Value: "This is two. ", Removed: true, Count: 1},
				{Value: "This is three.", Count: 1},
			},
		},
		{
			name: "css",
			diff: CSS,
			x:    ".a{color:red;}",
			y:    ".a{\n  color: blue;}",
			want: []Change{
				{Value: ".a{", Count: 2},
				{Value: "\n  ", Added: true, Count: 1},
				{Value: "color:", Count: 2},
				{Value: " blue", Added: true, Count: 2},
				{Value: "red", Removed: true, Count: 1},
				{Value: ";}", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.diff(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("diff(%q, %q) differs [-want,+got]:\n%s", tt.x, tt.y, diff)
			}
		})
	}
}

// reconstruct concatenates the values of all changes that are not skipped.
func reconstruct(changes []Change, skip func(c Change) bool) string {
	var sb strings.Builder
	for _, c := range changes {
		if !skip(c) {
			sb.WriteString(c.Value)
		}
	}
	return sb.String()
}

func checkChanges(t *testing.T, x, y string, changes []Change) {
	t.Helper()
	if got := reconstruct(changes, func(c Change) bool { return c.Added }); got != x {
		t.Errorf("old text reconstructed as %q, want %q", got, x)
	}
	if got := reconstruct(changes, func(c Change) bool { return c.Removed }); got != y {
		t.Errorf("new text reconstructed as %q, want %q", got, y)
	}
	for i, c := range changes {
		if c.Added && c.Removed {
			t.Errorf("change %d is added and removed", i)
		}
		if i > 0 && changes[i-1].Added == c.Added && changes[i-1].Removed == c.Removed {
			t.Errorf("changes %d and %d have the same kind", i-1, i)
		}
	}
}

// lcs computes the length of the longest common subsequence using dynamic programming.
func lcs(x, y []string) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for s := range x {
		for t := range y {
			if x[s] == y[t] {
				cur[t+1] = prev[t] + 1
			} else {
				cur[t+1] = max(prev[t+1], cur[t])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(y)]
}

func randomText(rng *rand.Rand, alphabet []string) string {
	var sb strings.Builder
	for range rng.IntN(25) {
		sb.WriteString(alphabet[rng.IntN(len(alphabet))])
	}
	return sb.String()
}

func TestProperties(t *testing.T) {
	flavors := []struct {
		name     string
		tok      Tokenizer
		diff     func(x, y string) []Change
		alphabet []string
	}{
		{"chars", CharTokenizer, func(x, y string) []Change { return Chars(x, y) }, []string{"a", "b", "c", " "}},
		{"words", WordTokenizer, func(x, y string) []Change { return Words(x, y) }, []string{"foo", "bar", " ", ", "}},
		{"lines", LineTokenizer, func(x, y string) []Change { return Lines(x, y) }, []string{"a\n", "b\n", "c", "\n"}},
		{"css", CSSTokenizer, CSS, []string{"a", "{", "}", ":", ";", "b"}},
	}

	for _, f := range flavors {
		t.Run(f.name, func(t *testing.T) {
			for i := range 100 {
				seed := sha256.Sum256(fmt.Append(nil, f.name, i))
				rng := rand.New(rand.NewChaCha8(seed))
				x, y := randomText(rng, f.alphabet), randomText(rng, f.alphabet)

				changes := f.diff(x, y)
				checkChanges(t, x, y, changes)

				// Minimality only holds for exact token equality.
				if f.name == "css" {
					continue
				}
				xt, yt := f.tok.Tokenize(x), f.tok.Tokenize(y)
				edits := 0
				for _, c := range changes {
					if c.Added || c.Removed {
						edits += c.Count
					}
				}
				if want := len(xt) + len(yt) - 2*lcs(xt, yt); edits != want {
					t.Errorf("diff(%q, %q) has %d edits, want %d", x, y, edits, want)
				}
			}
		})
	}
}

func TestDiff_maxEditLength(t *testing.T) {
	x, y := "abcdef", "uvwxyz"

	_, err := Diff(context.Background(), x, y, CharTokenizer, MaxEditLength(5))
	if !errors.Is(err, ErrEditLengthExceeded) {
		t.Errorf("Diff(...) returned %v, want %v", err, ErrEditLengthExceeded)
	}

	got, err := Diff(context.Background(), x, y, CharTokenizer, MaxEditLength(12))
	if err != nil {
		t.Fatalf("Diff(...) failed: %v", err)
	}
	checkChanges(t, x, y, got)
}

func TestDiff_deadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := Diff(ctx, "abc", "xyz", CharTokenizer)
	if !errors.Is(err, ErrEditLengthExceeded) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Diff(...) returned %v, want %v and %v", err, ErrEditLengthExceeded, context.DeadlineExceeded)
	}
}

func TestOptionNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Chars(...) with MaxEditLength did not panic")
		}
		if want := "Option tokendiff.MaxEditLength not allowed here"; r != want {
			t.Errorf("Chars(...) panicked with %q, want %q", r, want)
		}
	}()
	Chars("a", "b", MaxEditLength(1))
}

func TestConcurrentUse(t *testing.T) {
	x, y := "New Value", "New  Values"
	strict := Words(x, y)
	ignoring := Words(x, y, IgnoreWhitespace())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			want, opts := strict, []Option(nil)
			if i%2 == 1 {
				want, opts = ignoring, []Option{IgnoreWhitespace()}
			}
			for range 50 {
				if diff := cmp.Diff(want, Words(x, y, opts...)); diff != "" {
					t.Errorf("Words(...) differs [-want,+got]:\n%s", diff)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzChars(f *testing.F) {
	f.Add("ABCABBA", "CBABAC")
	f.Add("", "abc")
	f.Fuzz(func(t *testing.T, x, y string) {
		if len(x) > 500 || len(y) > 500 {
			t.Skip()
		}
		checkChanges(t, x, y, Chars(x, y))
	})
}
