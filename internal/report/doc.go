// Package report holds the expense report: an immutable multiset of integer
// entries parsed from whitespace-separated text.
//
// A Report keeps the entries in input order and an occurrence count per
// value. Finders use the counts to decide whether a value may be used more
// than once in a solution; input order keeps their results deterministic.
//
// Parsing is strict. A token that is not a base-10 integer fails the whole
// parse with a *ParseError; nothing is skipped.
package report
