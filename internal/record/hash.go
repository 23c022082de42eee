package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/ksum/internal/report"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for changing the encoding later.
const (
	DomainReport = "ksum/report/v1"
	DomainRecord = "ksum/record/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ReportID computes the content-addressed ID of a report.
// Entry order does not matter: the ID covers the sorted multiset.
func ReportID(r *report.Report) (string, error) {
	canonical, err := MarshalCanonical(r.Sorted())
	if err != nil {
		return "", fmt.Errorf("ReportID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}

// ID computes the content-addressed ID of the record.
func (r *Record) ID() (string, error) {
	canonical, err := MarshalCanonical(r)
	if err != nil {
		return "", fmt.Errorf("record ID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRecord, canonical), nil
}
