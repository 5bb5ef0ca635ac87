// Package user defines the physiological profile and dietary filters a
// meal plan is generated for
package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/go-playground/validator/v10"
)

// UnitSystem is the user's preferred measurement system
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// UserProfile contains everything the engine needs to compute targets
type UserProfile struct {
	Age           int                     `json:"age" yaml:"age" validate:"gt=0,lte=120"`
	Gender        nutrition.Gender        `json:"gender" yaml:"gender" validate:"oneof=male female"`
	HeightCm      float64                 `json:"height_cm" yaml:"height_cm" validate:"gt=0,lte=300"`
	WeightKg      float64                 `json:"weight_kg" yaml:"weight_kg" validate:"gt=0,lte=500"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level" yaml:"activity_level" validate:"oneof=sedentary light moderate very_active"`
	Goal          nutrition.DietGoal      `json:"goal" yaml:"goal" validate:"oneof=weight_loss maintenance weight_gain"`
	Pace          nutrition.Pace          `json:"pace,omitempty" yaml:"pace" validate:"omitempty,oneof=moderate fast"`
	DietType      nutrition.DietType      `json:"diet_type" yaml:"diet_type" validate:"oneof=omnivore vegetarian vegan pescatarian keto paleo"`
	UnitSystem    UnitSystem              `json:"unit_system,omitempty" yaml:"unit_system" validate:"omitempty,oneof=metric imperial"`
	DietFilters   DietFilters             `json:"diet_filters" yaml:"diet_filters"`
}

// DietFilters narrows what may appear in the plan
type DietFilters struct {
	MealCount        int      `json:"meal_count" yaml:"meal_count" validate:"gte=1,lte=6"`
	Allergies        []string `json:"allergies,omitempty" yaml:"allergies"`
	FavoriteCuisines []string `json:"favorite_cuisines,omitempty" yaml:"favorite_cuisines"`
}

var validate = validator.New()

// Validate checks the profile and reports every offending field
func (p UserProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", nutrition.ErrInvalidInput, strings.Join(messages, "; "))
}

// EffectivePace returns the configured pace, defaulting to moderate
func (p UserProfile) EffectivePace() nutrition.Pace {
	if p.Pace == "" {
		return nutrition.PaceModerate
	}
	return p.Pace
}
