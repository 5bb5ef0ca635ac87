// Package ingredient defines catalog ingredients and the compatibility tags
// the selection heuristics score them on.
package ingredient

import (
	"errors"
	"fmt"
	"math"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QuantityStep is the granularity resolved quantities are rounded to, in grams
const QuantityStep = 10.0

// ErrNoQuantityStep is returned when no rounded quantity fits the bounds
var ErrNoQuantityStep = errors.New("no quantity step within bounds")

// Ingredient is a catalog entry. Nutrient values are per 100 grams and the
// quantity bounds are grams. Quantity is only set on copies placed in a meal.
type Ingredient struct {
	ID       string          `json:"id" yaml:"id" validate:"required"`
	Name     string          `json:"name" yaml:"name" validate:"required"`
	Macro    nutrition.Macro `json:"macro" yaml:"macro" validate:"oneof=protein carbs fat veggie"`
	Protein  float64         `json:"protein" yaml:"protein" validate:"gte=0,lte=100"`
	Carbs    float64         `json:"carbs" yaml:"carbs" validate:"gte=0,lte=100"`
	Fat      float64         `json:"fat" yaml:"fat" validate:"gte=0,lte=100"`
	Calories float64         `json:"calories" yaml:"calories" validate:"gte=0"`
	Fiber    float64         `json:"fiber,omitempty" yaml:"fiber" validate:"gte=0,lte=100"`

	MinQuantity float64 `json:"min_quantity" yaml:"min_quantity" validate:"gte=0"`
	MaxQuantity float64 `json:"max_quantity" yaml:"max_quantity" validate:"gtefield=MinQuantity"`

	Categories     []Category           `json:"categories,omitempty" yaml:"categories"`
	Cuisines       []Cuisine            `json:"cuisines,omitempty" yaml:"cuisines"`
	CookingMethods []CookingMethod      `json:"cooking_methods,omitempty" yaml:"cooking_methods"`
	Seasonality    []Season             `json:"seasonality,omitempty" yaml:"seasonality"`
	Flavours       []Flavour            `json:"flavours,omitempty" yaml:"flavours"`
	Allergens      []nutrition.Allergen `json:"allergens,omitempty" yaml:"allergens"`
	MealTypes      []nutrition.MealType `json:"meal_types,omitempty" yaml:"meal_types"`
	DietTypes      []nutrition.DietType `json:"diet_types,omitempty" yaml:"diet_types"`

	Quantity float64 `json:"quantity" yaml:"-"`
}

// Validate checks the catalog entry
func (i Ingredient) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("ingredient %q: %w", i.ID, err)
	}
	if math.Floor(i.MaxQuantity/QuantityStep)*QuantityStep < i.MinQuantity {
		return fmt.Errorf("ingredient %q: %w: [%g, %g] with step %g",
			i.ID, ErrNoQuantityStep, i.MinQuantity, i.MaxQuantity, QuantityStep)
	}
	return nil
}

// PrimaryGrams returns grams per 100g of the ingredient's primary macro
func (i Ingredient) PrimaryGrams() float64 {
	return i.GramsOf(i.Macro)
}

// GramsOf returns grams per 100g of the given macro
func (i Ingredient) GramsOf(m nutrition.Macro) float64 {
	switch m {
	case nutrition.MacroProtein:
		return i.Protein
	case nutrition.MacroCarbs:
		return i.Carbs
	case nutrition.MacroFat:
		return i.Fat
	default:
		return 0
	}
}

// MacroCalories returns the calories the given macro contributes at quantity grams
func (i Ingredient) MacroCalories(m nutrition.Macro, quantity float64) float64 {
	kcal, err := nutrition.KcalPerGram(m)
	if err != nil {
		return 0
	}
	return i.GramsOf(m) * quantity / 100 * kcal
}

// CaloriesAt returns the energy of quantity grams from all three macros
func (i Ingredient) CaloriesAt(quantity float64) float64 {
	perGram := i.Protein*nutrition.KcalPerGramProtein +
		i.Carbs*nutrition.KcalPerGramCarbs +
		i.Fat*nutrition.KcalPerGramFat
	return perGram * quantity / 100
}

// NutritionAt returns the nutrition of quantity grams of the ingredient
func (i Ingredient) NutritionAt(quantity float64) nutrition.NutritionalInfo {
	factor := quantity / 100
	return nutrition.NutritionalInfo{
		Calories:      i.Calories * factor,
		Protein:       i.Protein * factor,
		Carbohydrates: i.Carbs * factor,
		Fat:           i.Fat * factor,
		Fiber:         i.Fiber * factor,
	}
}

// Nutrition returns the nutrition of the resolved quantity
func (i Ingredient) Nutrition() nutrition.NutritionalInfo {
	return i.NutritionAt(i.Quantity)
}

// WithQuantity returns a copy with the resolved quantity set
func (i Ingredient) WithQuantity(quantity float64) Ingredient {
	out := i
	out.Quantity = quantity
	return out
}

// SuitsMeal reports whether the ingredient is tagged for the meal type
func (i Ingredient) SuitsMeal(m nutrition.MealType) bool {
	for _, t := range i.MealTypes {
		if t == m {
			return true
		}
	}
	return false
}

// SuitsDiet reports whether the ingredient is tagged for the diet type
func (i Ingredient) SuitsDiet(d nutrition.DietType) bool {
	for _, t := range i.DietTypes {
		if t == d {
			return true
		}
	}
	return false
}

// HasAnyAllergen reports whether any of the given allergens is tagged on the
// ingredient. This is strict enum equality, not text matching.
func (i Ingredient) HasAnyAllergen(allergens []nutrition.Allergen) bool {
	for _, own := range i.Allergens {
		for _, excluded := range allergens {
			if own == excluded {
				return true
			}
		}
	}
	return false
}

// RoundToStep rounds grams to the nearest multiple of step
func RoundToStep(grams, step float64) float64 {
	return math.Round(grams/step) * step
}
