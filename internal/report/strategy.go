package report

import (
	"github.com/dripfolio/dripfolio/internal/models"
)

// Strategy extracts dividend entries from one grid. Strategies are pure:
// same grid in, same entries out.
type Strategy func(Grid) []models.DividendEntry

// strategies are tried in declaration order; the first one to produce any
// entries wins. Broker reports don't declare their layout, so the
// section-aware scan runs first and the positional scan mops up simple
// exports.
var strategies = []Strategy{ExtractSectioned, ExtractPositional}

// ExtractEntries runs the strategy list against a grid and returns the
// first non-empty result. An empty result from every strategy is a normal
// "no dividend data" outcome, not an error.
func ExtractEntries(grid Grid) []models.DividendEntry {
	for _, strategy := range strategies {
		if entries := strategy(grid); len(entries) > 0 {
			return entries
		}
	}
	return nil
}
