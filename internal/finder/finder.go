package finder

import "github.com/roach88/ksum/internal/report"

// DefaultTarget is the sum the expense report puzzle asks for.
const DefaultTarget int64 = 2020

// Finder searches reports for a fixed target.
type Finder struct {
	Target   int64
	Strategy Strategy
}

// Option configures a Finder.
type Option func(*Finder)

// WithTarget sets the target sum.
func WithTarget(target int64) Option {
	return func(f *Finder) {
		f.Target = target
	}
}

// WithStrategy sets the triple search strategy.
func WithStrategy(s Strategy) Option {
	return func(f *Finder) {
		f.Strategy = s
	}
}

// New creates a Finder for DefaultTarget using StrategyAscending,
// then applies opts.
func New(opts ...Option) *Finder {
	f := &Finder{
		Target:   DefaultTarget,
		Strategy: StrategyAscending,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Pair finds two entries summing to the finder's target.
func (f *Finder) Pair(r *report.Report) Solution {
	return FindPair(r, f.Target)
}

// Triple finds three entries summing to the finder's target.
func (f *Finder) Triple(r *report.Report) Solution {
	return FindTriple(r, f.Target, f.Strategy)
}

// FindPair returns two entries a, b of r with a+b == target.
// A complement outside the int64 range never matches.
//
// Entries are tried in input order, so the result is deterministic for a
// given report. A value equal to half the target pairs with itself only if
// it occurs at least twice.
func FindPair(r *report.Report, target int64) Solution {
	examined := 0
	for _, a := range r.Entries() {
		examined++
		b := target - a
		if !sumEquals(target, a, b) {
			continue
		}
		need := 1
		if b == a {
			need = 2
		}
		if r.Contains(b, need) {
			return found(examined, a, b)
		}
	}
	return notFound(examined)
}

// FindTriple returns three entries of r summing to target, in ascending
// order. An unknown strategy falls back to StrategyAscending.
func FindTriple(r *report.Report, target int64, strategy Strategy) Solution {
	if strategy == StrategyComplement {
		return tripleByComplement(r, target)
	}
	return tripleAscending(r, target)
}

// tripleAscending walks sorted 3-combinations i<j<k. Because the entries
// are sorted, s[i]+s[j]+s[j+1] is the smallest sum reachable from (i, j)
// and it never decreases as j grows, so the loops can stop early. Sums are
// taken in 128 bits so extreme entries cannot wrap past the target.
func tripleAscending(r *report.Report, target int64) Solution {
	s := r.Sorted()
	n := len(s)
	examined := 0

	for i := 0; i < n-2; i++ {
		if widen(s[i]).add(s[i+1]).add(s[i+2]).cmp(target) > 0 {
			break
		}
		for j := i + 1; j < n-1; j++ {
			partial := widen(s[i]).add(s[j])
			if partial.add(s[j+1]).cmp(target) > 0 {
				break
			}
			for k := j + 1; k < n; k++ {
				examined++
				c := partial.add(s[k]).cmp(target)
				if c == 0 {
					return found(examined, s[i], s[j], s[k])
				}
				if c > 0 {
					break
				}
			}
		}
	}
	return notFound(examined)
}

// tripleByComplement walks position pairs i<j and looks up the entry that
// completes the sum. The lookup must leave room for b and c themselves when
// they share its value.
func tripleByComplement(r *report.Report, target int64) Solution {
	entries := r.Entries()
	n := len(entries)
	examined := 0

	for i := 0; i < n-1; i++ {
		b := entries[i]
		for j := i + 1; j < n; j++ {
			examined++
			c := entries[j]
			a := target - b - c
			if !sumEquals(target, a, b, c) {
				continue
			}

			need := 1
			if a == b {
				need++
			}
			if a == c {
				need++
			}
			if r.Contains(a, need) {
				return found(examined, sortThree(a, b, c)...)
			}
		}
	}
	return notFound(examined)
}

func sortThree(a, b, c report.Entry) []report.Entry {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return []report.Entry{a, b, c}
}
