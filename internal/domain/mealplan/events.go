package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// WeekPlanGeneratedEvent is raised when a week plan has been assembled
type WeekPlanGeneratedEvent struct {
	PlanID      uuid.UUID
	StartDate   time.Time
	Meals       int
	Calories    float64
	GeneratedAt time.Time
}

func (e WeekPlanGeneratedEvent) EventName() string     { return "mealplan.week_generated" }
func (e WeekPlanGeneratedEvent) OccurredAt() time.Time { return e.GeneratedAt }

// NewWeekPlanGeneratedEvent describes a finished plan
func NewWeekPlanGeneratedEvent(plan *WeekMealPlan, at time.Time) WeekPlanGeneratedEvent {
	return WeekPlanGeneratedEvent{
		PlanID:      plan.ID,
		StartDate:   plan.StartDate,
		Meals:       plan.MealCount(),
		Calories:    plan.Nutrition.Calories,
		GeneratedAt: at,
	}
}
