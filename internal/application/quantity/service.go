// Package quantity turns a macro calorie budget into grams of a chosen
// ingredient, moving any calories the ingredient cannot absorb between the
// meal and its day.
package quantity

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// Step is the granularity quantities are rounded to, in grams
const Step = ingredient.QuantityStep

// Result is the resolved quantity plus the meal and day allocations after
// reallocation. The inputs to Calculate are never modified.
type Result struct {
	Quantity float64
	Meal     nutrition.MacroAllocation
	Day      nutrition.MacroAllocation
}

// Service calculates ingredient quantities
type Service struct {
	logger *zap.Logger
}

// NewService creates a quantity calculation service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger.Named("quantity")}
}

// Calculate resolves grams of ing for the meal allocation. Calories freed by
// clamping to the maximum go back to the day; calories needed to reach the
// minimum are borrowed from the day.
func (s *Service) Calculate(ing ingredient.Ingredient, meal, day nutrition.MacroAllocation) (Result, error) {
	result := Result{Meal: meal, Day: day}

	switch ing.Macro {
	case nutrition.MacroVeggie:
		return result, nil
	case nutrition.MacroProtein, nutrition.MacroCarbs, nutrition.MacroFat:
	default:
		return result, fmt.Errorf("%w: %q", nutrition.ErrUnsupportedMacro, ing.Macro)
	}

	budget, err := meal.Get(ing.Macro)
	if err != nil {
		return result, err
	}
	if budget == 0 {
		return result, nil
	}

	kcal, err := nutrition.KcalPerGram(ing.Macro)
	if err != nil {
		return result, err
	}
	density := ing.PrimaryGrams() * kcal
	if density <= 0 {
		s.logger.Warn("ingredient carries none of its primary macro",
			zap.String("ingredient", ing.ID),
			zap.String("macro", string(ing.Macro)),
		)
		return result, nil
	}

	quantity := budget / density * 100
	quantity = s.clawBack(ing, quantity, meal)

	// The moved calories count every macro of the clamped grams but are
	// booked against the primary macro only.
	switch {
	case quantity > ing.MaxQuantity:
		excess := ing.CaloriesAt(quantity - ing.MaxQuantity)
		result.Meal = result.Meal.Shift(ing.Macro, -excess)
		result.Day = result.Day.Shift(ing.Macro, excess)
		quantity = ing.MaxQuantity
	case quantity < ing.MinQuantity:
		shortfall := ing.CaloriesAt(ing.MinQuantity - quantity)
		result.Day = result.Day.Shift(ing.Macro, -shortfall)
		result.Meal = result.Meal.Shift(ing.Macro, shortfall)
		quantity = ing.MinQuantity
	}

	result.Quantity = roundWithin(quantity, ing.MinQuantity, ing.MaxQuantity)
	s.logger.Debug("quantity resolved",
		zap.String("ingredient", ing.ID),
		zap.Float64("grams", result.Quantity),
	)
	return result, nil
}

// clawBack shrinks quantity so no secondary macro exceeds its meal budget.
// Shrinking for one macro only lowers the others, so the smallest ratio is
// the same as applying each macro's ratio in turn.
func (s *Service) clawBack(ing ingredient.Ingredient, quantity float64, meal nutrition.MacroAllocation) float64 {
	ratio := 1.0
	for _, m := range nutrition.CalorieMacros {
		if m == ing.Macro {
			continue
		}
		contribution := ing.MacroCalories(m, quantity)
		allowed, _ := meal.Get(m)
		if contribution <= allowed {
			continue
		}
		ratio = math.Min(ratio, math.Max(allowed, 0)/contribution)
	}
	return quantity * ratio
}

// roundWithin rounds to the nearest step, stepping back inside [min, max]
// when rounding pushed the value out
func roundWithin(quantity, min, max float64) float64 {
	rounded := ingredient.RoundToStep(quantity, Step)
	if rounded > max {
		rounded = math.Floor(max/Step) * Step
	}
	if rounded < min {
		rounded = math.Ceil(min/Step) * Step
	}
	return rounded
}
