package selection

import (
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// Service picks catalog ingredients for macro slots
type Service struct {
	catalog []ingredient.Ingredient
	scorer  *Scorer
	ledger  *UsageLedger
	rng     *rand.Rand
	now     func() time.Time
	logger  *zap.Logger
}

// NewService creates a selection service over a catalog. The ledger must be
// the one the scorer's variety strategy reads.
func NewService(
	catalog []ingredient.Ingredient,
	scorer *Scorer,
	ledger *UsageLedger,
	rng *rand.Rand,
	now func() time.Time,
	logger *zap.Logger,
) *Service {
	return &Service{
		catalog: catalog,
		scorer:  scorer,
		ledger:  ledger,
		rng:     rng,
		now:     now,
		logger:  logger.Named("ingredient-selection"),
	}
}

type scoredCandidate struct {
	ingredient ingredient.Ingredient
	score      float64
}

// FindCompatibleIngredient picks the best scoring catalog ingredient for the
// macro. Ties at one decimal are broken uniformly at random. The second
// return value is false when no candidate passes the filters. Picking does
// not count as usage; see RecordUsage.
func (s *Service) FindCompatibleIngredient(
	macro nutrition.Macro,
	mealType nutrition.MealType,
	dietType nutrition.DietType,
	allergens []nutrition.Allergen,
	current []ingredient.Ingredient,
) (ingredient.Ingredient, bool) {
	candidates := s.filter(macro, mealType, dietType, allergens)
	if len(candidates) == 0 {
		s.logger.Warn("no compatible ingredient found",
			zap.String("macro", string(macro)),
			zap.String("meal_type", string(mealType)),
			zap.String("diet_type", string(dietType)),
		)
		return ingredient.Ingredient{}, false
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := math.Round(s.scorer.Score(c, current)*10) / 10
		scored = append(scored, scoredCandidate{ingredient: c, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := 1
	for top < len(scored) && scored[top].score == scored[0].score {
		top++
	}
	chosen := scored[s.rng.IntN(top)]

	s.logger.Debug("ingredient selected",
		zap.String("ingredient", chosen.ingredient.ID),
		zap.Float64("score", chosen.score),
		zap.Int("tied", top),
	)
	return chosen.ingredient, true
}

// RecordUsage notes that the ingredient made it into a meal, which lowers
// its variety score for the rest of the window
func (s *Service) RecordUsage(ingredientID string) {
	s.ledger.Record(ingredientID, s.now())
}

// SelectCompatibleIngredients selects one ingredient per macro in order,
// skipping macros nothing could be found for
func (s *Service) SelectCompatibleIngredients(
	dietType nutrition.DietType,
	mealType nutrition.MealType,
	allergens []nutrition.Allergen,
	macros []nutrition.Macro,
) []ingredient.Ingredient {
	selected := make([]ingredient.Ingredient, 0, len(macros))
	for _, macro := range macros {
		ing, ok := s.FindCompatibleIngredient(macro, mealType, dietType, allergens, selected)
		if !ok {
			continue
		}
		selected = append(selected, ing)
	}
	return selected
}

func (s *Service) filter(
	macro nutrition.Macro,
	mealType nutrition.MealType,
	dietType nutrition.DietType,
	allergens []nutrition.Allergen,
) []ingredient.Ingredient {
	var out []ingredient.Ingredient
	for _, ing := range s.catalog {
		if ing.Macro != macro || !ing.SuitsMeal(mealType) || !ing.SuitsDiet(dietType) {
			continue
		}
		if ing.HasAnyAllergen(allergens) {
			continue
		}
		out = append(out, ing)
	}
	return out
}
