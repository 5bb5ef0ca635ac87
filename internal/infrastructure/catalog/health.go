package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
	"github.com/alchemorsel/mealplan/pkg/healthcheck"
)

// NewCatalogChecker reports whether the ingredient catalog loads. A catalog
// missing a calorie macro is degraded because every meal would skip it.
func NewCatalogChecker(catalog outbound.IngredientCatalog) healthcheck.Checker {
	return healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
		start := time.Now()
		check := healthcheck.Check{LastChecked: start}

		ingredients, err := catalog.Ingredients(ctx)
		check.Duration = time.Since(start)
		if err != nil {
			check.Status = healthcheck.StatusUnhealthy
			check.Message = err.Error()
			return check
		}

		perMacro := make(map[nutrition.Macro]int)
		for _, ing := range ingredients {
			perMacro[ing.Macro]++
		}
		check.Status = healthcheck.StatusHealthy
		check.Metadata = map[string]interface{}{
			"ingredients": len(ingredients),
			"protein":     perMacro[nutrition.MacroProtein],
			"carbs":       perMacro[nutrition.MacroCarbs],
			"fat":         perMacro[nutrition.MacroFat],
		}
		for _, macro := range nutrition.CalorieMacros {
			if perMacro[macro] == 0 {
				check.Status = healthcheck.StatusDegraded
				check.Message = fmt.Sprintf("no %s ingredients", macro)
				break
			}
		}
		return check
	})
}

// NewRecipeSourceChecker reports whether the recipe source answers and
// holds any recipes
func NewRecipeSourceChecker(source outbound.RecipeSource) healthcheck.Checker {
	return healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
		start := time.Now()
		check := healthcheck.Check{LastChecked: start}

		found, err := source.FindRecipes(ctx, outbound.RecipeQuery{})
		check.Duration = time.Since(start)
		if err != nil {
			check.Status = healthcheck.StatusUnhealthy
			check.Message = err.Error()
			return check
		}

		check.Status = healthcheck.StatusHealthy
		check.Metadata = map[string]interface{}{
			"recipes": len(found.Recipes),
			"days":    len(found.Daily),
		}
		if len(found.Recipes) == 0 && len(found.Daily) == 0 {
			check.Status = healthcheck.StatusDegraded
			check.Message = "recipe pool is empty"
		}
		return check
	})
}
