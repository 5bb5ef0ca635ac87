// Package mealplan defines the generated plan hierarchy: meals roll up into
// days and days roll up into a week. Nutrition at every level is the
// component-wise sum of its children.
package mealplan

import (
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/google/uuid"
)

// DaysPerWeek is the fixed length of a plan
const DaysPerWeek = 7

// FreeDayIndex is the zero-based day with no structured meals
const FreeDayIndex = 5

// Meal is one eating occasion, built either from ingredients or from a
// single scaled recipe
type Meal struct {
	ID          uuid.UUID                 `json:"id"`
	MealType    nutrition.MealType        `json:"meal_type"`
	Ingredients []ingredient.Ingredient   `json:"ingredients,omitempty"`
	Recipe      *recipe.Recipe            `json:"recipe,omitempty"`
	Nutrition   nutrition.NutritionalInfo `json:"nutrition"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// NewIngredientMeal builds a meal whose nutrition is the sum of its ingredients
func NewIngredientMeal(mealType nutrition.MealType, ingredients []ingredient.Ingredient, now time.Time) Meal {
	total := nutrition.NutritionalInfo{}
	for _, ing := range ingredients {
		total = total.Add(ing.Nutrition())
	}
	return Meal{
		ID:          uuid.New(),
		MealType:    mealType,
		Ingredients: ingredients,
		Nutrition:   total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewRecipeMeal builds a meal around a scaled recipe
func NewRecipeMeal(mealType nutrition.MealType, r recipe.Recipe, now time.Time) Meal {
	scaled := r
	return Meal{
		ID:        uuid.New(),
		MealType:  mealType,
		Recipe:    &scaled,
		Nutrition: r.Nutrition,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DayMealPlan is one day of the week. Free days carry no meals.
type DayMealPlan struct {
	ID        uuid.UUID                 `json:"id"`
	Date      time.Time                 `json:"date"`
	IsFreeDay bool                      `json:"is_free_day"`
	Meals     []Meal                    `json:"meals"`
	Nutrition nutrition.NutritionalInfo `json:"nutrition"`
}

// NewDayMealPlan aggregates meals into a day
func NewDayMealPlan(date time.Time, meals []Meal) DayMealPlan {
	if meals == nil {
		meals = []Meal{}
	}
	total := nutrition.NutritionalInfo{}
	for _, m := range meals {
		total = total.Add(m.Nutrition)
	}
	return DayMealPlan{
		ID:        uuid.New(),
		Date:      date,
		Meals:     meals,
		Nutrition: total,
	}
}

// NewFreeDay returns a day with no meals and zero nutrition
func NewFreeDay(date time.Time) DayMealPlan {
	return DayMealPlan{
		ID:        uuid.New(),
		Date:      date,
		IsFreeDay: true,
		Meals:     []Meal{},
	}
}

// Targets records what the plan was solved against
type Targets struct {
	DailyCalories float64                   `json:"daily_calories"`
	Weekly        nutrition.MacroAllocation `json:"weekly"`
}

// WeekMealPlan is exactly seven days starting at StartDate
type WeekMealPlan struct {
	ID        uuid.UUID                 `json:"id"`
	StartDate time.Time                 `json:"start_date"`
	EndDate   time.Time                 `json:"end_date"`
	Days      []DayMealPlan             `json:"days"`
	Nutrition nutrition.NutritionalInfo `json:"nutrition"`
	Targets   Targets                   `json:"targets"`
}

// NewWeekMealPlan aggregates days into a week ending seven days after start
func NewWeekMealPlan(start time.Time, days []DayMealPlan, targets Targets) (*WeekMealPlan, error) {
	if len(days) != DaysPerWeek {
		return nil, ErrWrongDayCount
	}
	total := nutrition.NutritionalInfo{}
	for _, d := range days {
		total = total.Add(d.Nutrition)
	}
	return &WeekMealPlan{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, DaysPerWeek),
		Days:      days,
		Nutrition: total,
		Targets:   targets,
	}, nil
}

// MealCount returns the number of meals across the week
func (w *WeekMealPlan) MealCount() int {
	count := 0
	for _, d := range w.Days {
		count += len(d.Meals)
	}
	return count
}
