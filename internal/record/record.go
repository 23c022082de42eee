package record

import (
	"github.com/roach88/ksum/internal/finder"
	"github.com/roach88/ksum/internal/report"
)

// Record captures one solve run: the report identity, the target and both
// outcomes.
type Record struct {
	Target   int64   `json:"target"`
	ReportID string  `json:"report_id"`
	Entries  int     `json:"entries"`
	Strategy string  `json:"strategy"`
	Pair     Outcome `json:"pair"`
	Triple   Outcome `json:"triple"`
}

// Outcome is the serialized form of a finder.Solution.
type Outcome struct {
	Found    bool    `json:"found"`
	Entries  []int64 `json:"entries,omitempty"`
	Product  *int64  `json:"product,omitempty"`
	Examined int     `json:"examined"`
}

// NewOutcome converts a solution.
func NewOutcome(s finder.Solution) Outcome {
	o := Outcome{
		Found:    s.Found(),
		Examined: s.Examined,
	}
	if s.Found() {
		p := s.Product()
		o.Entries = s.Entries()
		o.Product = &p
	}
	return o
}

// NewRecord builds the record of solving r for target.
func NewRecord(r *report.Report, target int64, strategy finder.Strategy, pair, triple finder.Solution) (*Record, error) {
	id, err := ReportID(r)
	if err != nil {
		return nil, err
	}
	return &Record{
		Target:   target,
		ReportID: id,
		Entries:  r.Len(),
		Strategy: strategy.String(),
		Pair:     NewOutcome(pair),
		Triple:   NewOutcome(triple),
	}, nil
}

// Canonical implements Canonicalizer.
func (o Outcome) Canonical() map[string]any {
	m := map[string]any{
		"found":    o.Found,
		"examined": o.Examined,
	}
	if o.Found {
		m["entries"] = o.Entries
		m["product"] = *o.Product
	}
	return m
}

// Canonical implements Canonicalizer.
func (r *Record) Canonical() map[string]any {
	return map[string]any{
		"target":    r.Target,
		"report_id": r.ReportID,
		"entries":   r.Entries,
		"strategy":  r.Strategy,
		"pair":      r.Pair,
		"triple":    r.Triple,
	}
}
