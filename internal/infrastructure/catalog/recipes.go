package catalog

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
)

// recipeFile is the on-disk layout of a recipe pool. A file carries either a
// flat pool under recipes or one pool per day under days.
type recipeFile struct {
	Recipes []recipe.Recipe   `yaml:"recipes"`
	Days    [][]recipe.Recipe `yaml:"days"`
}

// FileRecipeSource answers recipe queries from a YAML file
type FileRecipeSource struct {
	path   string
	logger *zap.Logger
}

// NewFileRecipeSource creates a recipe source backed by the file at path
func NewFileRecipeSource(path string, logger *zap.Logger) *FileRecipeSource {
	return &FileRecipeSource{
		path:   path,
		logger: logger.Named("recipe-source"),
	}
}

var _ outbound.RecipeSource = (*FileRecipeSource)(nil)

// FindRecipes reads the file and keeps recipes that fit the query's diet and
// meal types. Allergen screening is left to the planner.
func (s *FileRecipeSource) FindRecipes(ctx context.Context, query outbound.RecipeQuery) (*outbound.RecipeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read recipe pool: %w", err)
	}

	var file recipeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse recipe pool: %w", err)
	}

	result := &outbound.RecipeResult{
		Recipes: filterRecipes(file.Recipes, query),
	}
	if len(file.Days) > 0 {
		result.Daily = make([][]recipe.Recipe, len(file.Days))
		for i, day := range file.Days {
			result.Daily[i] = filterRecipes(day, query)
		}
	}

	s.logger.Debug("Recipes found",
		zap.String("diet_type", string(query.DietType)),
		zap.Int("recipes", len(result.Recipes)),
		zap.Int("days", len(result.Daily)),
	)

	return result, nil
}

func filterRecipes(recipes []recipe.Recipe, query outbound.RecipeQuery) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if query.DietType != "" && !r.SuitsDiet(query.DietType) {
			continue
		}
		if len(query.MealTypes) > 0 && !suitsAnyMeal(r, query.MealTypes) {
			continue
		}
		out = append(out, r)
		if query.Limit > 0 && len(out) == query.Limit {
			break
		}
	}
	return out
}

func suitsAnyMeal(r recipe.Recipe, mealTypes []nutrition.MealType) bool {
	for _, m := range mealTypes {
		if r.SuitsMeal(m) {
			return true
		}
	}
	return false
}
