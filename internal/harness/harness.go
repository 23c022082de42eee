package harness

import (
	"fmt"
	"log/slog"

	"github.com/roach88/ksum/internal/finder"
	"github.com/roach88/ksum/internal/record"
)

// Result is the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Record is the canonical record of the run.
	Record *record.Record

	// Failures lists every expectation that did not hold.
	Failures []string
}

// Passed reports whether all expectations held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

func (r *Result) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Run solves the scenario's report and checks the expectations.
//
// Failed expectations are collected in the Result. Run returns an error only
// when the scenario cannot be executed, e.g. its report does not parse.
func Run(scenario *Scenario) (*Result, error) {
	r, err := scenario.Report()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	strategy, err := finder.ParseStrategy(scenario.Strategy)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	f := finder.New(finder.WithTarget(scenario.Target), finder.WithStrategy(strategy))
	pair := f.Pair(r)
	triple := f.Triple(r)

	rec, err := record.NewRecord(r, f.Target, strategy, pair, triple)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := &Result{Scenario: scenario.Name, Record: rec}
	check(result, "pair", scenario.Expect.Pair, pair)
	check(result, "triple", scenario.Expect.Triple, triple)

	slog.Debug("scenario run",
		"scenario", scenario.Name,
		"entries", r.Len(),
		"target", f.Target,
		"strategy", strategy,
		"passed", result.Passed())
	return result, nil
}

func check(result *Result, label string, want *Expectation, got finder.Solution) {
	if want == nil {
		return
	}
	switch {
	case want.None && got.Found():
		result.fail("%s: expected no solution, found %v (product %d)", label, got.Entries(), got.Product())
	case !want.None && !got.Found():
		result.fail("%s: expected product %d, found no solution", label, want.Product)
	case !want.None && got.Product() != want.Product:
		result.fail("%s: expected product %d, got %d from %v", label, want.Product, got.Product(), got.Entries())
	}
}
