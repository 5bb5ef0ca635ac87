package selection

import (
	"math"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
)

// Strategy is one compatibility heuristic. Scores are in [0,1] and every
// strategy scores 1 against an empty selection.
type Strategy interface {
	Name() string
	Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64
}

// CuisineStrategy rewards candidates whose cuisines are already on the plate
type CuisineStrategy struct{}

func (CuisineStrategy) Name() string { return "cuisine" }

func (CuisineStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 || len(candidate.Cuisines) == 0 {
		return 1
	}
	present := make(map[ingredient.Cuisine]bool)
	for _, s := range selection {
		for _, c := range s.Cuisines {
			present[c] = true
		}
	}
	matched := 0
	for _, c := range candidate.Cuisines {
		if present[c] {
			matched++
		}
	}
	return float64(matched) / float64(len(candidate.Cuisines))
}

// CategoryStrategy scores the share of the candidate's categories that
// combine with every category already selected
type CategoryStrategy struct{}

func (CategoryStrategy) Name() string { return "category" }

func (CategoryStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 || len(candidate.Categories) == 0 {
		return 1
	}
	var selected []ingredient.Category
	for _, s := range selection {
		selected = append(selected, s.Categories...)
	}
	if len(selected) == 0 {
		return 1
	}

	allowed := 0
	for _, c := range candidate.Categories {
		ok := true
		for _, s := range selected {
			if !CategoriesCombine(c, s) {
				ok = false
				break
			}
		}
		if ok {
			allowed++
		}
	}
	return float64(allowed) / float64(len(candidate.Categories))
}

// CookingMethodStrategy averages, over the selection, whether the candidate
// shares at least one cooking method with each selected ingredient
type CookingMethodStrategy struct{}

func (CookingMethodStrategy) Name() string { return "cooking_method" }

func (CookingMethodStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 {
		return 1
	}
	own := make(map[ingredient.CookingMethod]bool, len(candidate.CookingMethods))
	for _, m := range candidate.CookingMethods {
		own[m] = true
	}
	total := 0.0
	for _, s := range selection {
		for _, m := range s.CookingMethods {
			if own[m] {
				total++
				break
			}
		}
	}
	return total / float64(len(selection))
}

// SeasonalStrategy prefers in-season ingredients but never excludes one
type SeasonalStrategy struct {
	now func() time.Time
}

// NewSeasonalStrategy creates a seasonal strategy reading the given clock
func NewSeasonalStrategy(now func() time.Time) *SeasonalStrategy {
	return &SeasonalStrategy{now: now}
}

func (s *SeasonalStrategy) Name() string { return "seasonal" }

func (s *SeasonalStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 || len(candidate.Seasonality) == 0 {
		return 1
	}
	current := ingredient.SeasonOf(s.now())
	for _, season := range candidate.Seasonality {
		if season == ingredient.SeasonAllYear || season == current {
			return 1
		}
	}
	return 0.5
}

// FlavourStrategy rewards a candidate whose flavours complement the plate
type FlavourStrategy struct{}

func (FlavourStrategy) Name() string { return "flavour_profile" }

func (FlavourStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 {
		return 1
	}
	for _, own := range candidate.Flavours {
		for _, s := range selection {
			for _, other := range s.Flavours {
				if FlavoursComplement(own, other) {
					return 1
				}
			}
		}
	}
	return 0.5
}

// VarietyStrategy penalizes ingredients used recently, reading the ledger
// the caller records finalized selections into
type VarietyStrategy struct {
	ledger *UsageLedger
	window time.Duration
	now    func() time.Time
}

// DefaultVarietyWindow is how far back usage counts against an ingredient
const DefaultVarietyWindow = 14 * 24 * time.Hour

// varietyPenalty is subtracted per recent use
const varietyPenalty = 0.5

// NewVarietyStrategy creates a variety strategy over a ledger
func NewVarietyStrategy(ledger *UsageLedger, window time.Duration, now func() time.Time) *VarietyStrategy {
	if window <= 0 {
		window = DefaultVarietyWindow
	}
	return &VarietyStrategy{ledger: ledger, window: window, now: now}
}

func (v *VarietyStrategy) Name() string { return "variety" }

func (v *VarietyStrategy) Score(candidate ingredient.Ingredient, selection []ingredient.Ingredient) float64 {
	if len(selection) == 0 {
		return 1
	}
	v.ledger.Prune(v.now().Add(-v.window))
	return math.Max(0, 1-float64(v.ledger.Count(candidate.ID))*varietyPenalty)
}
