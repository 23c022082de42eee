// Package finder searches an expense report for two or three entries that
// sum to a target and reports their product.
//
// Both searches are pure functions of an immutable *report.Report. Not
// finding a solution is an expected outcome: the zero Solution is returned
// and Found reports false.
//
// Pairs use a single pass over the entries with a count lookup for the
// complement. Triples offer two strategies:
//
//   - StrategyAscending sorts the entries and walks each 3-combination once
//     in ascending order, abandoning a branch as soon as its smallest
//     possible sum exceeds the target. Inputs whose target is small relative
//     to the value range prune almost everything.
//   - StrategyComplement walks each pair of positions once and looks up the
//     third entry by count, for O(n²) time regardless of value range.
//
// A value may appear in a solution only as many times as it occurs in the
// report.
package finder
