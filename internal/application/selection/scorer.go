// Package selection picks one catalog ingredient per macro slot by scoring
// candidates against what is already on the plate
package selection

import (
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
)

// Scorer averages the registered strategies
type Scorer struct {
	strategies []Strategy
}

// NewScorer registers the six compatibility strategies in a fixed order
func NewScorer(ledger *UsageLedger, varietyWindow time.Duration, now func() time.Time) *Scorer {
	return &Scorer{
		strategies: []Strategy{
			CuisineStrategy{},
			CategoryStrategy{},
			CookingMethodStrategy{},
			NewSeasonalStrategy(now),
			FlavourStrategy{},
			NewVarietyStrategy(ledger, varietyWindow, now),
		},
	}
}

// Strategies returns the registered strategies
func (s *Scorer) Strategies() []Strategy {
	return s.strategies
}

// Score returns the mean strategy score
func (s *Scorer) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(s.strategies) == 0 {
		return 1
	}
	total := 0.0
	for _, strategy := range s.strategies {
		total += strategy.Score(candidate, selection)
	}
	return total / float64(len(s.strategies))
}
