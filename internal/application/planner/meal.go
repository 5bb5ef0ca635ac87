// Package planner orchestrates plan generation: meals are built from
// selected ingredients or scaled recipes, rolled up into days and then into
// a week.
package planner

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/intake"
	"github.com/alchemorsel/mealplan/internal/application/quantity"
	"github.com/alchemorsel/mealplan/internal/application/selection"
	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// MealFactory builds a single ingredient meal for a calorie budget
type MealFactory interface {
	CreateMeal(alloc nutrition.MacroAllocation, mealType nutrition.MealType, dietType nutrition.DietType, allergens []nutrition.Allergen) (mealplan.Meal, error)
}

// requestedMacros are selected for every ingredient meal, in order
var requestedMacros = []nutrition.Macro{nutrition.MacroProtein, nutrition.MacroCarbs, nutrition.MacroFat}

// MealService builds ingredient meals
type MealService struct {
	selection *selection.Service
	quantity  *quantity.Service
	macros    *intake.MacroService
	weights   map[int][]float64
	now       func() time.Time
	logger    *zap.Logger
}

// NewMealService creates a meal service. weights maps a meal count to the
// percentage split of the day across meals; counts without an entry split
// evenly.
func NewMealService(
	sel *selection.Service,
	qty *quantity.Service,
	macros *intake.MacroService,
	weights map[int][]float64,
	now func() time.Time,
	logger *zap.Logger,
) *MealService {
	return &MealService{
		selection: sel,
		quantity:  qty,
		macros:    macros,
		weights:   weights,
		now:       now,
		logger:    logger.Named("meal"),
	}
}

// CreateMeals splits the day allocation over mealCount meals and builds each
// one. Calories a meal returns to or borrows from the day are carried into
// the next meal's budget. Meals nothing could be selected for are omitted.
func (s *MealService) CreateMeals(
	day nutrition.MacroAllocation,
	mealCount int,
	dietType nutrition.DietType,
	allergens []nutrition.Allergen,
) ([]mealplan.Meal, error) {
	mealTypes, ok := nutrition.MealTypesFor(mealCount)
	if !ok {
		s.logger.Warn("invalid meal count, using default",
			zap.Int("meal_count", mealCount),
			zap.Int("default", nutrition.DefaultMealCount),
		)
	}

	buckets, err := s.macros.Distribute(day, len(mealTypes), s.weights[len(mealTypes)])
	if err != nil {
		return nil, fmt.Errorf("distribute day across meals: %w", err)
	}

	meals := make([]mealplan.Meal, 0, len(mealTypes))
	var carry nutrition.MacroAllocation
	for i, mealType := range mealTypes {
		alloc := buckets[i].Add(carry).ClampNonNegative()

		meal, pool, err := s.build(alloc, day, mealType, dietType, allergens)
		if errors.Is(err, nutrition.ErrEmptyResult) {
			s.logger.Warn("meal skipped",
				zap.Int("slot", i),
				zap.String("meal_type", string(mealType)),
				zap.Error(err),
			)
			carry = alloc
			continue
		}
		if err != nil {
			return nil, err
		}
		carry = pool.Sub(day)
		meals = append(meals, meal)
	}
	return meals, nil
}

// CreateMeal builds one meal against its own budget. It returns
// ErrEmptyResult when no ingredient could be selected.
func (s *MealService) CreateMeal(
	alloc nutrition.MacroAllocation,
	mealType nutrition.MealType,
	dietType nutrition.DietType,
	allergens []nutrition.Allergen,
) (mealplan.Meal, error) {
	meal, _, err := s.build(alloc, alloc, mealType, dietType, allergens)
	return meal, err
}

// build selects and quantifies the meal's ingredients and returns the meal
// with the day pool after reallocation
func (s *MealService) build(
	alloc, pool nutrition.MacroAllocation,
	mealType nutrition.MealType,
	dietType nutrition.DietType,
	allergens []nutrition.Allergen,
) (mealplan.Meal, nutrition.MacroAllocation, error) {
	selected := s.selection.SelectCompatibleIngredients(dietType, mealType, allergens, requestedMacros)

	ingredients := make([]ingredient.Ingredient, 0, len(selected))
	for _, ing := range selected {
		result, err := s.quantity.Calculate(ing, alloc, pool)
		if err != nil {
			return mealplan.Meal{}, pool, fmt.Errorf("quantity for %q: %w", ing.ID, err)
		}
		alloc, pool = result.Meal, result.Day
		if result.Quantity == 0 {
			s.logger.Debug("ingredient dropped at zero quantity", zap.String("ingredient", ing.ID))
			continue
		}
		s.selection.RecordUsage(ing.ID)
		ingredients = append(ingredients, ing.WithQuantity(result.Quantity))
	}

	if len(ingredients) == 0 {
		return mealplan.Meal{}, pool, fmt.Errorf("%w: no ingredients for %s", nutrition.ErrEmptyResult, mealType)
	}
	return mealplan.NewIngredientMeal(mealType, ingredients, s.now()), pool, nil
}
