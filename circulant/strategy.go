// SPDX-License-Identifier: MIT

package circulant

import (
	"fmt"
	"strings"
)

// Strategy selects how a generator vector is derived from A.
type Strategy int

const (
	// StrategyDirectColumn takes the first column of A verbatim: c[i] = A[i,0].
	StrategyDirectColumn Strategy = iota

	// StrategyOptimalNorm averages each cyclic diagonal and divides by ω.
	// With ω = 1 this is the Frobenius-closest circulant to A.
	StrategyOptimalNorm

	// StrategyMax takes the largest entry on each cyclic diagonal (upper envelope).
	StrategyMax

	// StrategyMin takes the smallest entry on each cyclic diagonal (lower envelope).
	StrategyMin
)

// strategyNames is indexed by Strategy; keep in enum order.
var strategyNames = [...]string{
	StrategyDirectColumn: "direct-column",
	StrategyOptimalNorm:  "optimal-norm",
	StrategyMax:          "max",
	StrategyMin:          "min",
}

// Strategies lists every supported strategy in enum order.
func Strategies() []Strategy {
	return []Strategy{StrategyDirectColumn, StrategyOptimalNorm, StrategyMax, StrategyMin}
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s >= StrategyDirectColumn && s <= StrategyMin
}

// String returns the canonical kebab-case name, or "Strategy(N)" when unknown.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a canonical name (case-insensitive) back to its Strategy.
// Errors: ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if strategyNames[s] == want {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}
