package finder

import "github.com/roach88/ksum/internal/report"

// Solution is the outcome of a search.
// The zero value means no solution was found.
type Solution struct {
	entries []report.Entry

	// Examined counts the candidates tried before the search stopped.
	Examined int
}

func found(examined int, entries ...report.Entry) Solution {
	return Solution{entries: entries, Examined: examined}
}

func notFound(examined int) Solution {
	return Solution{Examined: examined}
}

// Found reports whether the search produced a solution.
func (s Solution) Found() bool {
	return len(s.entries) > 0
}

// Entries returns a copy of the chosen entries, or nil when not found.
func (s Solution) Entries() []report.Entry {
	if !s.Found() {
		return nil
	}
	out := make([]report.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Product multiplies the chosen entries. It returns 0 when not found;
// check Found first, since 0 is also a valid product.
func (s Solution) Product() int64 {
	if !s.Found() {
		return 0
	}
	p := int64(1)
	for _, e := range s.entries {
		p *= e
	}
	return p
}

// Sum adds the chosen entries. It returns 0 when not found.
func (s Solution) Sum() int64 {
	var sum int64
	for _, e := range s.entries {
		sum += e
	}
	return sum
}
