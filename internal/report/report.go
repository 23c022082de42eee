package report

import "sort"

// Entry is a single value from the expense report.
type Entry = int64

// Report is an immutable multiset of entries.
// The zero value is an empty report.
type Report struct {
	entries []Entry
	counts  map[Entry]int
}

// New builds a report from the given entries. The slice is copied.
func New(entries ...Entry) *Report {
	r := &Report{
		entries: make([]Entry, len(entries)),
		counts:  make(map[Entry]int, len(entries)),
	}
	copy(r.entries, entries)
	for _, e := range entries {
		r.counts[e]++
	}
	return r
}

// Len returns the number of entries, duplicates included.
func (r *Report) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in input order.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Sorted returns a copy of the entries in ascending order.
func (r *Report) Sorted() []Entry {
	out := r.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns how many times v occurs in the report.
func (r *Report) Count(v Entry) int {
	return r.counts[v]
}

// Contains reports whether v occurs at least n times.
func (r *Report) Contains(v Entry, n int) bool {
	return r.counts[v] >= n
}
