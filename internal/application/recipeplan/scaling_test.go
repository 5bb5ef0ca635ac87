package recipeplan

import (
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// ScalingServiceTestSuite covers recipe scaling to calorie targets
type ScalingServiceTestSuite struct {
	suite.Suite
	service *ScalingService
	stew    recipe.Recipe
}

func (suite *ScalingServiceTestSuite) SetupTest() {
	suite.service = NewScalingService(zaptest.NewLogger(suite.T()))
	suite.stew = recipe.Recipe{
		ID:    "lentil-stew",
		Title: "Lentil stew",
		Ingredients: []recipe.Ingredient{
			{Name: "Red lentils", Amount: 200, Unit: recipe.MeasurementUnitGram},
			{Name: "Carrot", Amount: 2, Unit: recipe.MeasurementUnitPiece},
		},
		Servings: 4,
		Nutrition: nutrition.NutritionalInfo{
			Calories: 800, Protein: 48, Carbohydrates: 120, Fat: 12, Fiber: 30,
		},
		MealTypes: []nutrition.MealType{nutrition.MealDinner},
	}
}

func (suite *ScalingServiceTestSuite) TestScaleRecipeForMacros() {
	// Arrange
	target := nutrition.NewMacroAllocation(300, 600, 300)

	// Act
	scaled, err := suite.service.ScaleRecipeForMacros(suite.stew, target)

	// Assert
	require.NoError(suite.T(), err)
	assert.InDelta(suite.T(), 1200, scaled.Nutrition.Calories, 1e-9)
	assert.InDelta(suite.T(), 72, scaled.Nutrition.Protein, 1e-9)
	assert.InDelta(suite.T(), 300, scaled.Ingredients[0].Amount, 1e-9)
	assert.InDelta(suite.T(), 3, scaled.Ingredients[1].Amount, 1e-9)
	assert.Equal(suite.T(), 6, scaled.Servings)

	assert.Equal(suite.T(), 200.0, suite.stew.Ingredients[0].Amount, "original must not change")
	assert.Equal(suite.T(), 4, suite.stew.Servings)
}

func (suite *ScalingServiceTestSuite) TestScaleRecipeForMacros_ServingsNeverBelowOne() {
	scaled, err := suite.service.ScaleRecipeForMacros(suite.stew, nutrition.NewMacroAllocation(10, 10, 10))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, scaled.Servings)
}

func (suite *ScalingServiceTestSuite) TestScaleRecipeForMacros_Failures() {
	suite.Run("ZeroCalories", func() {
		empty := suite.stew
		empty.Nutrition = nutrition.NutritionalInfo{}

		_, err := suite.service.ScaleRecipeForMacros(empty, nutrition.NewMacroAllocation(100, 100, 100))
		assert.ErrorIs(suite.T(), err, recipe.ErrZeroCalorieRecipe)
	})

	suite.Run("NonPositiveFactor", func() {
		_, err := suite.service.ScaleRecipeForMacros(suite.stew, nutrition.NewMacroAllocation(0, 0, 0))
		assert.ErrorIs(suite.T(), err, recipe.ErrInvalidScalingFactor)
	})
}

func (suite *ScalingServiceTestSuite) TestScaleRecipeForMacros_OutsideLimitsStillApplies() {
	scaled, err := suite.service.ScaleRecipeForMacros(suite.stew, nutrition.NewMacroAllocation(4000, 4000, 4000))

	require.NoError(suite.T(), err)
	assert.InDelta(suite.T(), 12000, scaled.Nutrition.Calories, 1e-9)
}

func (suite *ScalingServiceTestSuite) TestCanScaleRecipe() {
	assert.True(suite.T(), suite.service.CanScaleRecipe(suite.stew))

	noServings := suite.stew
	noServings.Servings = 0
	assert.False(suite.T(), suite.service.CanScaleRecipe(noServings))

	noIngredients := suite.stew
	noIngredients.Ingredients = nil
	assert.False(suite.T(), suite.service.CanScaleRecipe(noIngredients))
}

func (suite *ScalingServiceTestSuite) TestCalculateRequiredServings() {
	servings, err := suite.service.CalculateRequiredServings(suite.stew, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, servings)

	_, err = suite.service.CalculateRequiredServings(suite.stew, 0)
	assert.ErrorIs(suite.T(), err, nutrition.ErrInvalidInput)
}

func (suite *ScalingServiceTestSuite) TestPreviewScaling() {
	preview, err := suite.service.PreviewScaling(suite.stew, nutrition.NewMacroAllocation(100, 200, 100))

	require.NoError(suite.T(), err)
	assert.InDelta(suite.T(), 0.5, preview.Factor, 1e-9)
	assert.Equal(suite.T(), 2, preview.Servings)
	assert.InDelta(suite.T(), 400, preview.Nutrition.Calories, 1e-9)
	assert.True(suite.T(), preview.WithinLimits)
	assert.Equal(suite.T(), 800.0, suite.stew.Nutrition.Calories)

	limits := suite.service.GetScalingLimits()
	assert.Equal(suite.T(), 0.1, limits.Min)
	assert.Equal(suite.T(), 10.0, limits.Max)
}

func TestScalingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScalingServiceTestSuite))
}
