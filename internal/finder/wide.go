package finder

import "math/bits"

// wide is a 128-bit two's complement integer. Sums of up to three entries
// fit without wrapping, so comparisons against the target stay exact.
type wide struct {
	hi int64
	lo uint64
}

func widen(v int64) wide {
	return wide{hi: v >> 63, lo: uint64(v)}
}

func (w wide) add(v int64) wide {
	lo, carry := bits.Add64(w.lo, uint64(v), 0)
	return wide{hi: w.hi + v>>63 + int64(carry), lo: lo}
}

// cmp compares w with v, returning -1, 0 or +1.
func (w wide) cmp(v int64) int {
	o := widen(v)
	switch {
	case w.hi < o.hi:
		return -1
	case w.hi > o.hi:
		return 1
	case w.lo < o.lo:
		return -1
	case w.lo > o.lo:
		return 1
	}
	return 0
}

// sumEquals reports whether the exact sum of xs equals target.
func sumEquals(target int64, xs ...int64) bool {
	var w wide
	for _, x := range xs {
		w = w.add(x)
	}
	return w.cmp(target) == 0
}
