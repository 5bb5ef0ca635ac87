// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/user"
)

// MealPlanService defines the meal plan generation use case
// This is the primary port the CLI and any other driving adapter use
type MealPlanService interface {
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (*MealPlanResult, error)
}

// Pipeline selects where meals are built from
type Pipeline string

const (
	PipelineAuto        Pipeline = "auto"
	PipelineIngredients Pipeline = "ingredients"
	PipelineRecipes     Pipeline = "recipes"
)

// GenerateMealPlanCommand contains data for generating a week plan
type GenerateMealPlanCommand struct {
	Profile   user.UserProfile
	StartDate time.Time
	Pipeline  Pipeline
	// Seed overrides the configured seed when non-nil
	Seed *uint64
}

// MealPlanResult is a generated plan plus anything the caller should be told
type MealPlanResult struct {
	Plan                  *mealplan.WeekMealPlan `json:"plan"`
	UnrecognizedAllergens []string               `json:"unrecognized_allergens,omitempty"`
	Pipeline              Pipeline               `json:"pipeline"`
}
