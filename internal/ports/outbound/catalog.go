// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces the application uses to reach data it does not own
package outbound

import (
	"context"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
)

// IngredientCatalog supplies the static ingredient catalog
type IngredientCatalog interface {
	Ingredients(ctx context.Context) ([]ingredient.Ingredient, error)
}

// RecipeSource is an external recipe search facility
type RecipeSource interface {
	// FindRecipes returns candidate recipes. When the source groups results by
	// day, Daily holds one pool per day; otherwise Recipes is a flat pool.
	FindRecipes(ctx context.Context, query RecipeQuery) (*RecipeResult, error)
}

// RecipeQuery describes the recipes a plan needs
type RecipeQuery struct {
	DietType         nutrition.DietType
	Allergens        []nutrition.Allergen
	FavoriteCuisines []string
	MealTypes        []nutrition.MealType
	Limit            int
}

// RecipeResult is what a recipe source returns
type RecipeResult struct {
	Recipes []recipe.Recipe
	Daily   [][]recipe.Recipe
}

// AllergenValidator recognizes allergen names. It is used to warn about
// unrecognized names, never to reject a request.
type AllergenValidator interface {
	SupportedAllergens() []string
	IsValidAllergen(name string) bool
}

// Metrics records plan generation outcomes
type Metrics interface {
	RecordGeneration(pipeline string, status string, duration time.Duration)
	RecordPlan(meals int, weeklyCalories float64)
	RecordSkippedAllergens(count int)
}
