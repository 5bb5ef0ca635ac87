// Package recipeplan is the recipe-based planning pipeline: it spreads a
// recipe pool over the week and scales each recipe to its slot's budget.
package recipeplan

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
)

// ScalingLimits bounds the factors considered reasonable for a recipe
type ScalingLimits struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

var defaultLimits = ScalingLimits{Min: 0.1, Max: 10.0}

// ScalingPreview describes what scaling would produce without doing it
type ScalingPreview struct {
	Factor       float64                   `json:"factor"`
	Servings     int                       `json:"servings"`
	Nutrition    nutrition.NutritionalInfo `json:"nutrition"`
	WithinLimits bool                      `json:"within_limits"`
}

// ScalingService adjusts recipe quantities to a calorie target
type ScalingService struct {
	limits ScalingLimits
	logger *zap.Logger
}

// NewScalingService creates a recipe scaling service
func NewScalingService(logger *zap.Logger) *ScalingService {
	return &ScalingService{
		limits: defaultLimits,
		logger: logger.Named("recipe-scaling"),
	}
}

// GetScalingLimits returns the reasonable factor range
func (s *ScalingService) GetScalingLimits() ScalingLimits {
	return s.limits
}

// CanScaleRecipe reports whether the recipe has calories, ingredients and servings
func (s *ScalingService) CanScaleRecipe(r recipe.Recipe) bool {
	return r.Calories() > 0 && len(r.Ingredients) > 0 && r.Servings > 0
}

// ScaleRecipeForMacros returns a copy of the recipe scaled so its calories
// match the target allocation's total
func (s *ScalingService) ScaleRecipeForMacros(r recipe.Recipe, target nutrition.MacroAllocation) (recipe.Recipe, error) {
	factor, err := s.factor(r, target.Total())
	if err != nil {
		return recipe.Recipe{}, err
	}
	if !s.within(factor) {
		s.logger.Warn("scaling factor outside reasonable limits",
			zap.String("recipe", r.ID),
			zap.Float64("factor", factor),
			zap.Float64("min", s.limits.Min),
			zap.Float64("max", s.limits.Max),
		)
	}

	scaled := r.Clone()
	for i := range scaled.Ingredients {
		scaled.Ingredients[i].Amount *= factor
	}
	scaled.Nutrition = r.Nutrition.Scale(factor)
	scaled.Servings = scaledServings(r.Servings, factor)
	return scaled, nil
}

// CalculateRequiredServings returns how many servings cover targetCalories
func (s *ScalingService) CalculateRequiredServings(r recipe.Recipe, targetCalories float64) (int, error) {
	if r.Servings <= 0 {
		return 0, recipe.ErrInvalidServings
	}
	if r.Calories() <= 0 {
		return 0, fmt.Errorf("recipe %q: %w", r.ID, recipe.ErrZeroCalorieRecipe)
	}
	if targetCalories <= 0 {
		return 0, fmt.Errorf("%w: target calories %v", nutrition.ErrInvalidInput, targetCalories)
	}
	perServing := r.Calories() / float64(r.Servings)
	return int(math.Max(1, math.Ceil(targetCalories/perServing))), nil
}

// PreviewScaling reports the factor and resulting nutrition without
// producing a scaled recipe
func (s *ScalingService) PreviewScaling(r recipe.Recipe, target nutrition.MacroAllocation) (ScalingPreview, error) {
	factor, err := s.factor(r, target.Total())
	if err != nil {
		return ScalingPreview{}, err
	}
	return ScalingPreview{
		Factor:       factor,
		Servings:     scaledServings(r.Servings, factor),
		Nutrition:    r.Nutrition.Scale(factor),
		WithinLimits: s.within(factor),
	}, nil
}

func (s *ScalingService) factor(r recipe.Recipe, targetCalories float64) (float64, error) {
	if r.Calories() <= 0 {
		return 0, fmt.Errorf("recipe %q: %w", r.ID, recipe.ErrZeroCalorieRecipe)
	}
	factor := targetCalories / r.Calories()
	if factor <= 0 {
		return 0, fmt.Errorf("recipe %q: %w: %v", r.ID, recipe.ErrInvalidScalingFactor, factor)
	}
	return factor, nil
}

func (s *ScalingService) within(factor float64) bool {
	return factor >= s.limits.Min && factor <= s.limits.Max
}

func scaledServings(servings int, factor float64) int {
	return int(math.Max(1, math.Round(float64(servings)*factor)))
}
