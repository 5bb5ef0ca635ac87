package intake

import (
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// CaloricServiceTestSuite covers BMR, TDEE and goal adjustment
type CaloricServiceTestSuite struct {
	suite.Suite
	service *CaloricService
}

func (suite *CaloricServiceTestSuite) SetupTest() {
	suite.service = NewCaloricService(zaptest.NewLogger(suite.T()))
}

func (suite *CaloricServiceTestSuite) TestCalculateBMR() {
	suite.Run("Male_MifflinStJeor", func() {
		bmr, err := suite.service.CalculateBMR(nutrition.GenderMale, 70, 175, 30)

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1648.75, bmr, 1e-9)
	})

	suite.Run("Female_MifflinStJeor", func() {
		bmr, err := suite.service.CalculateBMR(nutrition.GenderFemale, 60, 165, 25)

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 600+1031.25-125-161, bmr, 1e-9)
	})

	suite.Run("NonPositiveInputs_ShouldFail", func() {
		cases := []struct {
			weight, height float64
			age            int
		}{
			{0, 175, 30},
			{70, -1, 30},
			{70, 175, 0},
		}
		for _, c := range cases {
			_, err := suite.service.CalculateBMR(nutrition.GenderMale, c.weight, c.height, c.age)
			assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidInput)
		}
	})

	suite.Run("UnknownGender_ShouldFail", func() {
		_, err := suite.service.CalculateBMR("other", 70, 175, 30)
		assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidEnum)
	})
}

func (suite *CaloricServiceTestSuite) TestAdjustForActivityLevel() {
	expected := map[nutrition.ActivityLevel]float64{
		nutrition.ActivitySedentary:  1200,
		nutrition.ActivityLight:      1375,
		nutrition.ActivityModerate:   1550,
		nutrition.ActivityVeryActive: 1725,
	}
	for level, want := range expected {
		tdee, err := suite.service.AdjustForActivityLevel(1000, level)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), want, tdee, 1e-9, string(level))
	}

	_, err := suite.service.AdjustForActivityLevel(0, nutrition.ActivityLight)
	assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidInput)

	_, err = suite.service.AdjustForActivityLevel(1000, "extreme")
	assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidEnum)
}

func (suite *CaloricServiceTestSuite) TestAdjustForDietGoal() {
	suite.Run("WeightLoss_Moderate", func() {
		got, err := suite.service.AdjustForDietGoal(2500, nutrition.GoalWeightLoss, nutrition.PaceModerate)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 2000.0, got)
	})

	suite.Run("WeightGain_Fast", func() {
		got, err := suite.service.AdjustForDietGoal(2500, nutrition.GoalWeightGain, nutrition.PaceFast)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 3300.0, got)
	})

	suite.Run("EmptyPace_DefaultsToModerate", func() {
		got, err := suite.service.AdjustForDietGoal(2500, nutrition.GoalWeightGain, "")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 3000.0, got)
	})

	suite.Run("Maintenance_IsRejected", func() {
		_, err := suite.service.AdjustForDietGoal(2500, nutrition.GoalMaintenance, nutrition.PaceModerate)
		assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidGoal)
	})

	suite.Run("UnknownPace_IsRejected", func() {
		_, err := suite.service.AdjustForDietGoal(2500, nutrition.GoalWeightLoss, "glacial")
		assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidEnum)
	})
}

func (suite *CaloricServiceTestSuite) TestDailyCalories() {
	profile := user.UserProfile{
		Age:           30,
		Gender:        nutrition.GenderMale,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: nutrition.ActivitySedentary,
		Goal:          nutrition.GoalMaintenance,
	}

	suite.Run("Maintenance_ReturnsTDEE", func() {
		daily, err := suite.service.DailyCalories(profile)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1648.75*1.2, daily, 1e-9)
	})

	suite.Run("WeightLoss_SubtractsDeficit", func() {
		p := profile
		p.Goal = nutrition.GoalWeightLoss
		daily, err := suite.service.DailyCalories(p)
		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 1648.75*1.2-500, daily, 1e-9)
	})
}

func TestCaloricServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CaloricServiceTestSuite))
}
