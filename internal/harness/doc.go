// Package harness runs expense report puzzle scenarios.
//
// A scenario is a YAML file naming a report (inline or as a file next to the
// scenario), a target and the expected products of the pair and triple
// searches:
//
//	name: puzzle_example
//	description: "Worked example from the puzzle text"
//	target: 2020
//	input: |
//	  1721
//	  979
//	  366
//	  299
//	  675
//	  1456
//	expect:
//	  pair: 514579
//	  triple: 241861950
//
// An expectation of "none" asserts that no solution exists.
//
// Scenario files are checked against the embedded CUE schema (schema.cue)
// before they are decoded, so typos and wrongly typed fields are reported
// with their position in the file.
//
// Golden files (testdata/golden/<name>.golden) hold the canonical JSON record
// of a run. Regenerate them with:
//
//	go test ./internal/harness -update
package harness
