package planner

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/intake"
	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// Preferences are the dietary constraints every meal of the plan honours
type Preferences struct {
	MealCount int
	DietType  nutrition.DietType
	Allergens []nutrition.Allergen
}

// SlotError reports a recipe slot that could not be scaled
type SlotError struct {
	Day      int
	Slot     int
	RecipeID string
	Err      error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("day %d slot %d: recipe %q: %v", e.Day, e.Slot, e.RecipeID, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}

// DayMealPlanService builds the days of a week
type DayMealPlanService struct {
	macros   *intake.MacroService
	meals    *MealService
	scaling  *recipeplan.ScalingService
	fallback MealFactory
	now      func() time.Time
	logger   *zap.Logger
}

// NewDayMealPlanService creates a day service. meals may be nil when only the
// recipe pipeline is used; fallback may be nil to surface scaling failures.
func NewDayMealPlanService(
	macros *intake.MacroService,
	meals *MealService,
	scaling *recipeplan.ScalingService,
	fallback MealFactory,
	now func() time.Time,
	logger *zap.Logger,
) *DayMealPlanService {
	return &DayMealPlanService{
		macros:   macros,
		meals:    meals,
		scaling:  scaling,
		fallback: fallback,
		now:      now,
		logger:   logger.Named("day-plan"),
	}
}

// CreateWeekDays splits the week allocation seven ways and builds an
// ingredient plan for every day except the free day
func (s *DayMealPlanService) CreateWeekDays(
	week nutrition.MacroAllocation,
	start time.Time,
	prefs Preferences,
) ([]mealplan.DayMealPlan, error) {
	if s.meals == nil {
		return nil, fmt.Errorf("%w: ingredient pipeline is not configured", nutrition.ErrInvalidInput)
	}
	allocs, err := s.macros.Distribute(week, mealplan.DaysPerWeek, nil)
	if err != nil {
		return nil, fmt.Errorf("distribute week across days: %w", err)
	}

	days := make([]mealplan.DayMealPlan, 0, mealplan.DaysPerWeek)
	for i, alloc := range allocs {
		date := start.AddDate(0, 0, i)
		if i == mealplan.FreeDayIndex {
			days = append(days, mealplan.NewFreeDay(date))
			continue
		}

		meals, err := s.meals.CreateMeals(alloc, prefs.MealCount, prefs.DietType, prefs.Allergens)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		days = append(days, mealplan.NewDayMealPlan(date, meals))
	}
	return days, nil
}

// CreateDailyRecipeMealPlan scales each slot's recipe to an even share of
// the day's budget. Slots whose recipe cannot be scaled are rebuilt from
// ingredients when a fallback is configured.
func (s *DayMealPlanService) CreateDailyRecipeMealPlan(
	date time.Time,
	dayIndex int,
	day nutrition.MacroAllocation,
	slots []recipeplan.Slot,
	prefs Preferences,
) (mealplan.DayMealPlan, error) {
	if dayIndex == mealplan.FreeDayIndex {
		return mealplan.NewFreeDay(date), nil
	}
	if len(slots) == 0 {
		s.logger.Warn("no recipes for day", zap.Int("day", dayIndex))
		return mealplan.NewDayMealPlan(date, nil), nil
	}

	allocs, err := s.macros.Distribute(day, len(slots), nil)
	if err != nil {
		return mealplan.DayMealPlan{}, fmt.Errorf("distribute day across recipes: %w", err)
	}

	meals := make([]mealplan.Meal, 0, len(slots))
	for i, slot := range slots {
		scaled, err := s.scaling.ScaleRecipeForMacros(slot.Recipe, allocs[i])
		if err == nil {
			meals = append(meals, mealplan.NewRecipeMeal(slot.MealType, scaled, s.now()))
			continue
		}

		slotErr := &SlotError{Day: dayIndex, Slot: slot.Index, RecipeID: slot.Recipe.ID, Err: err}
		if s.fallback == nil {
			return mealplan.DayMealPlan{}, slotErr
		}

		s.logger.Warn("recipe could not be scaled, building from ingredients", zap.Error(slotErr))
		meal, err := s.fallback.CreateMeal(allocs[i], slot.MealType, prefs.DietType, prefs.Allergens)
		if errors.Is(err, nutrition.ErrEmptyResult) {
			s.logger.Warn("fallback meal skipped", zap.Error(err))
			continue
		}
		if err != nil {
			return mealplan.DayMealPlan{}, err
		}
		meals = append(meals, meal)
	}
	return mealplan.NewDayMealPlan(date, meals), nil
}
