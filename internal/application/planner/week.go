package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
)

// WeekMealPlanService rolls days up into a week
type WeekMealPlanService struct {
	logger *zap.Logger
}

// NewWeekMealPlanService creates a week service
func NewWeekMealPlanService(logger *zap.Logger) *WeekMealPlanService {
	return &WeekMealPlanService{logger: logger.Named("week-plan")}
}

// Assemble aggregates seven days into a week starting at start
func (s *WeekMealPlanService) Assemble(start time.Time, days []mealplan.DayMealPlan, targets mealplan.Targets) (*mealplan.WeekMealPlan, error) {
	week, err := mealplan.NewWeekMealPlan(start, days, targets)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("week assembled",
		zap.String("plan_id", week.ID.String()),
		zap.Int("meals", week.MealCount()),
		zap.Float64("calories", week.Nutrition.Calories),
	)
	return week, nil
}
