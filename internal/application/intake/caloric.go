// Package intake computes calorie targets and splits them into macronutrient
// budgets
package intake

import (
	"fmt"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/user"
	"go.uber.org/zap"
)

// activityMultipliers maps an activity level to its TDEE multiplier
var activityMultipliers = map[nutrition.ActivityLevel]float64{
	nutrition.ActivitySedentary:  1.2,
	nutrition.ActivityLight:      1.375,
	nutrition.ActivityModerate:   1.55,
	nutrition.ActivityVeryActive: 1.725,
}

// paceAdjustments is the daily kcal surplus or deficit per pace
var paceAdjustments = map[nutrition.Pace]float64{
	nutrition.PaceModerate: 500,
	nutrition.PaceFast:     800,
}

// CaloricService turns a physiology into a daily calorie target
type CaloricService struct {
	logger *zap.Logger
}

// NewCaloricService creates a new caloric intake service
func NewCaloricService(logger *zap.Logger) *CaloricService {
	return &CaloricService{logger: logger.Named("caloric-intake")}
}

// CalculateBMR returns the basal metabolic rate using Mifflin-St Jeor
func (s *CaloricService) CalculateBMR(gender nutrition.Gender, weightKg, heightCm float64, age int) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive (weight=%v height=%v age=%d)",
			nutrition.ErrInvalidInput, weightKg, heightCm, age)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case nutrition.GenderMale:
		bmr += 5
	case nutrition.GenderFemale:
		bmr -= 161
	default:
		return 0, fmt.Errorf("%w: gender %q", nutrition.ErrInvalidEnum, gender)
	}
	return bmr, nil
}

// AdjustForActivityLevel multiplies BMR into total daily energy expenditure
func (s *CaloricService) AdjustForActivityLevel(bmr float64, level nutrition.ActivityLevel) (float64, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("%w: bmr must be positive, got %v", nutrition.ErrInvalidInput, bmr)
	}
	multiplier, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: activity level %q", nutrition.ErrInvalidEnum, level)
	}
	return bmr * multiplier, nil
}

// AdjustForDietGoal applies the goal's surplus or deficit to TDEE.
// Maintenance is rejected with ErrInvalidGoal; use DailyCalories, which
// handles it before reaching this step.
func (s *CaloricService) AdjustForDietGoal(tdee float64, goal nutrition.DietGoal, pace nutrition.Pace) (float64, error) {
	if pace == "" {
		pace = nutrition.PaceModerate
	}
	adjustment, ok := paceAdjustments[pace]
	if !ok {
		return 0, fmt.Errorf("%w: pace %q", nutrition.ErrInvalidEnum, pace)
	}

	switch goal {
	case nutrition.GoalWeightLoss:
		return tdee - adjustment, nil
	case nutrition.GoalWeightGain:
		return tdee + adjustment, nil
	case nutrition.GoalMaintenance:
		return 0, fmt.Errorf("%w: %q", nutrition.ErrInvalidGoal, goal)
	default:
		return 0, fmt.Errorf("%w: goal %q", nutrition.ErrInvalidEnum, goal)
	}
}

// DailyCalories runs BMR, activity and goal adjustment for a profile
func (s *CaloricService) DailyCalories(profile user.UserProfile) (float64, error) {
	bmr, err := s.CalculateBMR(profile.Gender, profile.WeightKg, profile.HeightCm, profile.Age)
	if err != nil {
		return 0, err
	}

	tdee, err := s.AdjustForActivityLevel(bmr, profile.ActivityLevel)
	if err != nil {
		return 0, err
	}

	if profile.Goal == nutrition.GoalMaintenance {
		s.logger.Debug("Maintenance goal, using TDEE as target", zap.Float64("tdee", tdee))
		return tdee, nil
	}

	daily, err := s.AdjustForDietGoal(tdee, profile.Goal, profile.EffectivePace())
	if err != nil {
		return 0, err
	}
	if daily <= 0 {
		return 0, fmt.Errorf("%w: goal adjustment leaves %v kcal per day", nutrition.ErrInvalidInput, daily)
	}

	s.logger.Debug("Calculated daily calories",
		zap.Float64("bmr", bmr),
		zap.Float64("tdee", tdee),
		zap.Float64("daily", daily),
		zap.String("goal", string(profile.Goal)),
	)
	return daily, nil
}
