// Package record produces deterministic, content-addressed records of a
// solve run.
//
// Records serialize through MarshalCanonical, an RFC 8785 style encoder:
// object keys sorted by UTF-16 code units, no insignificant whitespace, no
// HTML escaping, NFC-normalized strings. Floats and nulls are rejected.
// Identical inputs always yield identical bytes, which keeps golden files
// and report IDs stable.
package record
