package finder

import (
	"fmt"
	"strings"
)

// Strategy selects how FindTriple enumerates candidates.
type Strategy string

const (
	// StrategyAscending enumerates sorted 3-combinations with pruning.
	StrategyAscending Strategy = "ascending"

	// StrategyComplement enumerates pairs and looks up the third entry.
	StrategyComplement Strategy = "complement"
)

// ValidStrategies lists the accepted strategy names.
var ValidStrategies = []Strategy{StrategyAscending, StrategyComplement}

// ParseStrategy converts a configuration string to a Strategy.
// The empty string selects StrategyAscending.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyAscending:
		return StrategyAscending, nil
	case StrategyComplement:
		return StrategyComplement, nil
	}
	return "", fmt.Errorf("unknown strategy %q: must be one of %v", s, ValidStrategies)
}

func (s Strategy) String() string {
	return string(s)
}
