package recipeplan

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
)

// Strategy selects how recipes are assigned to meal slots
type Strategy string

const (
	StrategyBalanced   Strategy = "balanced"
	StrategyRandom     Strategy = "random"
	StrategyPreference Strategy = "preference"
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBalanced, StrategyRandom, StrategyPreference:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: distribution strategy %q", nutrition.ErrInvalidEnum, s)
}

// Slot is one meal of a day with the recipe assigned to it
type Slot struct {
	Index    int                `json:"index"`
	MealType nutrition.MealType `json:"meal_type"`
	Recipe   recipe.Recipe      `json:"recipe"`
}

// DistributionService spreads a recipe pool across the days of a week
type DistributionService struct {
	rng    *rand.Rand
	logger *zap.Logger
}

// NewDistributionService creates a distribution service drawing random
// picks from rng
func NewDistributionService(rng *rand.Rand, logger *zap.Logger) *DistributionService {
	return &DistributionService{
		rng:    rng,
		logger: logger.Named("recipe-distribution"),
	}
}

// MealTypeSequence returns the meal types of a day, warning when the count
// is out of range
func (d *DistributionService) MealTypeSequence(mealCount int) []nutrition.MealType {
	seq, ok := nutrition.MealTypesFor(mealCount)
	if !ok {
		d.logger.Warn("invalid meal count, using default",
			zap.Int("meal_count", mealCount),
			zap.Int("default", nutrition.DefaultMealCount),
		)
	}
	return seq
}

// Distribute assigns recipes from one flat pool to every day of the week
func (d *DistributionService) Distribute(pool []recipe.Recipe, mealCount int, strategy Strategy) [][]Slot {
	buckets := bucketByMealType(pool)
	sequence := d.MealTypeSequence(mealCount)

	days := make([][]Slot, 7)
	for day := range days {
		days[day] = d.assign(buckets, sequence, day, strategy)
	}
	return days
}

// AssignDay assigns recipes from a pool dedicated to a single day
func (d *DistributionService) AssignDay(pool []recipe.Recipe, mealCount, dayIndex int, strategy Strategy) []Slot {
	return d.assign(bucketByMealType(pool), d.MealTypeSequence(mealCount), dayIndex, strategy)
}

func (d *DistributionService) assign(
	buckets map[nutrition.MealType][]recipe.Recipe,
	sequence []nutrition.MealType,
	day int,
	strategy Strategy,
) []Slot {
	slots := make([]Slot, 0, len(sequence))
	for index, mealType := range sequence {
		candidates := buckets[mealType]
		if len(candidates) == 0 {
			d.logger.Warn("no recipes for meal type, slot omitted",
				zap.Int("day", day),
				zap.Int("slot", index),
				zap.String("meal_type", string(mealType)),
			)
			continue
		}
		slots = append(slots, Slot{
			Index:    index,
			MealType: mealType,
			Recipe:   d.pick(candidates, strategy, day, index, len(sequence)),
		})
	}
	return slots
}

func (d *DistributionService) pick(candidates []recipe.Recipe, strategy Strategy, day, index, mealsPerDay int) recipe.Recipe {
	switch strategy {
	case StrategyRandom:
		return candidates[d.rng.IntN(len(candidates))]
	case StrategyPreference:
		if index == 0 {
			if easy := easyRecipes(candidates); len(easy) > 0 {
				return easy[day%len(easy)]
			}
		}
	}
	return candidates[(day*mealsPerDay+index)%len(candidates)]
}

func bucketByMealType(pool []recipe.Recipe) map[nutrition.MealType][]recipe.Recipe {
	buckets := make(map[nutrition.MealType][]recipe.Recipe)
	for _, mealType := range []nutrition.MealType{
		nutrition.MealBreakfast, nutrition.MealLunch, nutrition.MealDinner, nutrition.MealSnack,
	} {
		for _, r := range pool {
			if r.SuitsMeal(mealType) {
				buckets[mealType] = append(buckets[mealType], r)
			}
		}
	}
	return buckets
}

func easyRecipes(candidates []recipe.Recipe) []recipe.Recipe {
	var easy []recipe.Recipe
	for _, r := range candidates {
		if r.Difficulty == recipe.DifficultyLevelEasy {
			easy = append(easy, r)
		}
	}
	return easy
}
