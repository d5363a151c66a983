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

package myers

import (
	"context"
	"errors"
	"fmt"
)

// ErrEditLengthExceeded is returned if the search is aborted before an edit script was found.
var ErrEditLengthExceeded = errors.New("edit length exceeded bound")

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Elements in both slices match
	Delete           // Elements from x are removed
	Insert           // Elements from y are inserted
)

// Span is a run of consecutive edits of the same kind.
//
// S and T are the positions in x and y where the span starts. For a Match, x[S:S+N] and
// y[T:T+N] match, for a Delete x[S:S+N] is deleted before y[T], and for an Insert y[T:T+N] is
// inserted before x[S].
type Span struct {
	Op   Op
	S, T int
	N    int
}

// run is a node in the persistent list of spans that make up a path. Runs are never modified
// once they are reachable from a path.
type run struct {
	span Span
	prev *run
}

// path is a candidate edit script that reached position t in y (the last consumed element).
type path struct {
	t    int
	last *run
}

// push appends n edits of kind op starting at s and t to p. If the last span of p has the same
// kind, it is replaced by a longer copy instead.
func (p *path) push(op Op, s, t, n int) {
	if p.last != nil && p.last.span.Op == op {
		sp := p.last.span
		sp.N += n
		p.last = &run{span: sp, prev: p.last.prev}
		return
	}
	p.last = &run{span: Span{Op: op, S: s, T: t, N: n}, prev: p.last}
}

// snake follows the matches on diagonal k as far as possible and returns the last consumed
// position in x.
func snake[T any](p *path, x, y []T, eq func(a, b T) bool, k int) int {
	t := p.t
	s := t - k
	t0 := t
	for t+1 < len(y) && s+1 < len(x) && eq(x[s+1], y[t+1]) {
		s++
		t++
	}
	if n := t - t0; n > 0 {
		p.push(Match, s-n+1, t0+1, n)
	}
	p.t = t
	return s
}

func (p *path) spans() []Span {
	n := 0
	for r := p.last; r != nil; r = r.prev {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]Span, n)
	for r := p.last; r != nil; r = r.prev {
		n--
		out[n] = r.span
	}
	return out
}

// Diff compares the contents of x and y and returns the edit script to transform x into y as
// a sequence of spans. Consecutive spans never have the same Op.
//
// If limit > 0, the search is aborted with [ErrEditLengthExceeded] once the edit length exceeds
// limit. The search is also aborted if ctx is done, the error then wraps both
// [ErrEditLengthExceeded] and the context's error.
func Diff[T any](ctx context.Context, x, y []T, eq func(a, b T) bool, limit int) ([]Span, error) {
	n, m := len(x), len(y)

	seed := &path{t: -1}
	if s := snake(seed, x, y, eq, 0); seed.t+1 >= m && s+1 >= n {
		return seed.spans(), nil
	}

	maxd := n + m
	if limit > 0 {
		maxd = min(maxd, limit)
	}

	// best[v0+k] is the furthest reaching path on diagonal k for the previous edit length (before
	// it's overwritten in the current iteration). The borders absorb the k-1 and k+1 lookups at
	// the outermost diagonals.
	v0 := maxd + 1
	best := make([]*path, 2*maxd+3)
	best[v0] = seed

	for d := 1; d <= maxd; d++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEditLengthExceeded, err)
		}
		for k := -d; k <= d; k += 2 {
			add, del := best[v0+k-1], best[v0+k+1]

			s := -k
			if del != nil {
				s = del.t - k
			}
			if add != nil {
				// Not needed anymore, no other diagonal in this iteration looks at it.
				best[v0+k-1] = nil
			}

			canAdd := add != nil && add.t+1 < m
			canDel := del != nil && 0 <= s && s < n
			if !canAdd && !canDel {
				best[v0+k] = nil
				continue
			}

			var p path
			if !canAdd || (canDel && add.t < del.t) {
				p = *del
				p.push(Delete, s, p.t+1, 1)
			} else {
				p = *add
				p.t++
				p.push(Insert, p.t-k+1, p.t, 1)
			}

			if s := snake(&p, x, y, eq, k); p.t+1 >= m && s+1 >= n {
				return p.spans(), nil
			}
			best[v0+k] = &p
		}
	}
	if limit > 0 && limit < n+m {
		return nil, ErrEditLengthExceeded
	}
	panic("never reached")
}
