// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"math"
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nutritionTolerance = 1e-6

// PlanAssertions provides plan-specific assertion methods
type PlanAssertions struct {
	t *testing.T
}

// NewPlanAssertions creates a new plan assertions helper
func NewPlanAssertions(t *testing.T) *PlanAssertions {
	return &PlanAssertions{t: t}
}

// ValidWeek asserts the structural invariants of a generated week
func (pa *PlanAssertions) ValidWeek(plan *mealplan.WeekMealPlan) {
	require.NotNil(pa.t, plan, "Plan should not be nil")
	require.Len(pa.t, plan.Days, mealplan.DaysPerWeek, "Week should have seven days")
	assert.Equal(pa.t, plan.StartDate.AddDate(0, 0, mealplan.DaysPerWeek), plan.EndDate)

	days := make([]nutrition.NutritionalInfo, 0, len(plan.Days))
	for i, day := range plan.Days {
		if i == mealplan.FreeDayIndex {
			pa.FreeDay(day)
		} else {
			assert.False(pa.t, day.IsFreeDay, "Day %d should not be a free day", i)
		}
		pa.DaySumsMeals(day)
		days = append(days, day.Nutrition)
	}
	pa.NutritionEqual(nutrition.Sum(days...), plan.Nutrition, "Week nutrition should be the sum of its days")
}

// FreeDay asserts that a day is an empty free day
func (pa *PlanAssertions) FreeDay(day mealplan.DayMealPlan) {
	assert.True(pa.t, day.IsFreeDay, "Day should be a free day")
	assert.Empty(pa.t, day.Meals, "Free day should have no meals")
	assert.Equal(pa.t, nutrition.NutritionalInfo{}, day.Nutrition, "Free day should have zero nutrition")
}

// DaySumsMeals asserts that a day's nutrition is the sum of its meals
func (pa *PlanAssertions) DaySumsMeals(day mealplan.DayMealPlan) {
	meals := make([]nutrition.NutritionalInfo, 0, len(day.Meals))
	for _, m := range day.Meals {
		meals = append(meals, m.Nutrition)
	}
	pa.NutritionEqual(nutrition.Sum(meals...), day.Nutrition, "Day nutrition should be the sum of its meals")
}

// QuantitiesOnStep asserts every ingredient quantity is a multiple of 10
// within the ingredient's bounds
func (pa *PlanAssertions) QuantitiesOnStep(plan *mealplan.WeekMealPlan) {
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				assert.InDelta(pa.t, 0, math.Mod(ing.Quantity, 10), nutritionTolerance, "%s quantity %v", ing.ID, ing.Quantity)
				assert.GreaterOrEqual(pa.t, ing.Quantity, ing.MinQuantity, ing.ID)
				assert.LessOrEqual(pa.t, ing.Quantity, ing.MaxQuantity, ing.ID)
			}
		}
	}
}

// NutritionEqual compares nutrition component-wise within tolerance
func (pa *PlanAssertions) NutritionEqual(expected, actual nutrition.NutritionalInfo, msgAndArgs ...interface{}) {
	assert.InDelta(pa.t, expected.Calories, actual.Calories, nutritionTolerance, msgAndArgs...)
	assert.InDelta(pa.t, expected.Protein, actual.Protein, nutritionTolerance, msgAndArgs...)
	assert.InDelta(pa.t, expected.Carbohydrates, actual.Carbohydrates, nutritionTolerance, msgAndArgs...)
	assert.InDelta(pa.t, expected.Fat, actual.Fat, nutritionTolerance, msgAndArgs...)
	assert.InDelta(pa.t, expected.Fiber, actual.Fiber, nutritionTolerance, msgAndArgs...)
}
