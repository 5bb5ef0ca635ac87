package planner

import (
	"testing"
	"time"

	"github.com/alchemorsel/mealplan/internal/application/intake"
	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newDayService(t *testing.T) *DayMealPlanService {
	logger := zaptest.NewLogger(t)
	return NewDayMealPlanService(
		intake.NewMacroService(), nil, recipeplan.NewScalingService(logger), nil,
		func() time.Time { return monday }, logger,
	)
}

func TestCreateDailyRecipeMealPlan_FreeDay(t *testing.T) {
	service := newDayService(t)
	slots := []recipeplan.Slot{{MealType: nutrition.MealDinner, Recipe: testutils.NewRecipeFactory(1).Recipe(nutrition.MealDinner)}}

	day, err := service.CreateDailyRecipeMealPlan(monday, mealplan.FreeDayIndex, nutrition.NewMacroAllocation(600, 800, 600), slots, Preferences{})

	require.NoError(t, err)
	testutils.NewPlanAssertions(t).FreeDay(day)
}

func TestCreateDailyRecipeMealPlan_EmptySlots(t *testing.T) {
	service := newDayService(t)

	day, err := service.CreateDailyRecipeMealPlan(monday, 2, nutrition.NewMacroAllocation(600, 800, 600), nil, Preferences{})

	require.NoError(t, err)
	assert.False(t, day.IsFreeDay)
	assert.Empty(t, day.Meals)
	assert.Zero(t, day.Nutrition.Calories)
}

func TestCreateDailyRecipeMealPlan_EvenShares(t *testing.T) {
	service := newDayService(t)
	factory := testutils.NewRecipeFactory(5)
	slots := []recipeplan.Slot{
		{Index: 0, MealType: nutrition.MealBreakfast, Recipe: factory.Recipe(nutrition.MealBreakfast)},
		{Index: 1, MealType: nutrition.MealDinner, Recipe: factory.Recipe(nutrition.MealDinner)},
	}

	day, err := service.CreateDailyRecipeMealPlan(monday, 0, nutrition.NewMacroAllocation(600, 800, 600), slots, Preferences{})

	require.NoError(t, err)
	require.Len(t, day.Meals, 2)
	for _, meal := range day.Meals {
		assert.InDelta(t, 1000, meal.Nutrition.Calories, 1e-6)
	}
	testutils.NewPlanAssertions(t).DaySumsMeals(day)
}

func TestCreateWeekDays_RequiresMealService(t *testing.T) {
	_, err := newDayService(t).CreateWeekDays(nutrition.NewMacroAllocation(1, 1, 1), monday, Preferences{MealCount: 3})

	assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
}

func TestAssemble_RejectsWrongDayCount(t *testing.T) {
	service := NewWeekMealPlanService(zaptest.NewLogger(t))

	_, err := service.Assemble(monday, []mealplan.DayMealPlan{mealplan.NewFreeDay(monday)}, mealplan.Targets{})

	assert.ErrorIs(t, err, mealplan.ErrWrongDayCount)
}
