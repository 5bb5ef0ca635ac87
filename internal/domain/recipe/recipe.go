// Package recipe contains the recipe value used by the recipe-based
// planning pipeline. Recipes arrive from an external search facility and
// are scaled, never edited in place.
package recipe

import (
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// Recipe is a candidate recipe with whole-recipe nutrition
type Recipe struct {
	ID          string                    `json:"id" yaml:"id"`
	Title       string                    `json:"title" yaml:"title"`
	Ingredients []Ingredient              `json:"ingredients" yaml:"ingredients"`
	Servings    int                       `json:"servings" yaml:"servings"`
	Nutrition   nutrition.NutritionalInfo `json:"nutrition" yaml:"nutrition"`
	MealTypes   []nutrition.MealType      `json:"meal_types" yaml:"meal_types"`
	DietTypes   []nutrition.DietType      `json:"diet_types,omitempty" yaml:"diet_types"`
	Cuisine     CuisineType               `json:"cuisine,omitempty" yaml:"cuisine"`
	Difficulty  DifficultyLevel           `json:"difficulty,omitempty" yaml:"difficulty"`
	PrepTime    time.Duration             `json:"prep_time,omitempty" yaml:"prep_time"`
	Tags        []string                  `json:"tags,omitempty" yaml:"tags"`
}

// Calories returns the calorie count of the whole recipe
func (r Recipe) Calories() float64 {
	return r.Nutrition.Calories
}

// SuitsMeal reports whether the recipe can be served at the meal type
func (r Recipe) SuitsMeal(m nutrition.MealType) bool {
	for _, t := range r.MealTypes {
		if t == m {
			return true
		}
	}
	return false
}

// SuitsDiet reports whether the recipe fits a diet. Recipes without diet
// tags are treated as omnivore only.
func (r Recipe) SuitsDiet(d nutrition.DietType) bool {
	if len(r.DietTypes) == 0 {
		return d == nutrition.DietOmnivore
	}
	for _, t := range r.DietTypes {
		if t == d {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the recipe
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.MealTypes = append([]nutrition.MealType(nil), r.MealTypes...)
	out.DietTypes = append([]nutrition.DietType(nil), r.DietTypes...)
	out.Tags = append([]string(nil), r.Tags...)
	return out
}
