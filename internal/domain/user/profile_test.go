package user

import (
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
)

func validProfile() UserProfile {
	return UserProfile{
		Age:           30,
		Gender:        nutrition.GenderMale,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: nutrition.ActivityModerate,
		Goal:          nutrition.GoalWeightLoss,
		DietType:      nutrition.DietOmnivore,
		DietFilters:   DietFilters{MealCount: 3},
	}
}

func TestUserProfileValidate(t *testing.T) {
	t.Run("ValidProfile_ShouldPass", func(t *testing.T) {
		assert.NoError(t, validProfile().Validate())
	})

	t.Run("NonPositiveWeight_ShouldFail", func(t *testing.T) {
		p := validProfile()
		p.WeightKg = 0

		err := p.Validate()

		assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
		assert.Contains(t, err.Error(), "WeightKg")
	})

	t.Run("MealCountOutOfRange_ShouldFail", func(t *testing.T) {
		p := validProfile()
		p.DietFilters.MealCount = 7

		err := p.Validate()

		assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
		assert.Contains(t, err.Error(), "MealCount")
	})

	t.Run("UnknownActivityLevel_ShouldFail", func(t *testing.T) {
		p := validProfile()
		p.ActivityLevel = "couch"

		assert.ErrorIs(t, p.Validate(), nutrition.ErrInvalidInput)
	})
}

func TestEffectivePace(t *testing.T) {
	p := validProfile()
	assert.Equal(t, nutrition.PaceModerate, p.EffectivePace())

	p.Pace = nutrition.PaceFast
	assert.Equal(t, nutrition.PaceFast, p.EffectivePace())
}
