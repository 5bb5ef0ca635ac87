package quantity

import (
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// QuantityServiceTestSuite covers quantity resolution and reallocation
type QuantityServiceTestSuite struct {
	suite.Suite
	service *Service
	chicken ingredient.Ingredient
	day     nutrition.MacroAllocation
}

func (suite *QuantityServiceTestSuite) SetupTest() {
	suite.service = NewService(zaptest.NewLogger(suite.T()))
	suite.chicken = ingredient.Ingredient{
		ID:          "chicken-breast",
		Name:        "Chicken breast",
		Macro:       nutrition.MacroProtein,
		Protein:     30,
		Fat:         5,
		Calories:    165,
		MinQuantity: 100,
		MaxQuantity: 300,
	}
	suite.day = nutrition.NewMacroAllocation(1500, 2000, 1500)
}

func (suite *QuantityServiceTestSuite) TestCalculate_WithinBounds() {
	// Arrange
	meal := nutrition.NewMacroAllocation(300, 300, 99)

	// Act
	result, err := suite.service.Calculate(suite.chicken, meal, suite.day)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 220.0, result.Quantity)
	assert.Equal(suite.T(), meal, result.Meal)
	assert.Equal(suite.T(), suite.day, result.Day)
}

func (suite *QuantityServiceTestSuite) TestCalculate_ClampsToMaxAndReturnsExcessToDay() {
	// Arrange
	suite.chicken.MaxQuantity = 150
	meal := nutrition.NewMacroAllocation(600, 600, 600)

	// Act
	result, err := suite.service.Calculate(suite.chicken, meal, suite.day)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 150.0, result.Quantity)
	assert.Greater(suite.T(), result.Day.Protein, 1500.0)
	// 350g clamped off at 1.65 kcal/g counting the fat as well as the protein
	assert.InDelta(suite.T(), 2077.5, result.Day.Protein, 1e-9)
	assert.InDelta(suite.T(), 22.5, result.Meal.Protein, 1e-9)
	assert.Equal(suite.T(), suite.day.Fat, result.Day.Fat)
	assert.Equal(suite.T(), 600.0, meal.Protein, "input must not be modified")
}

func (suite *QuantityServiceTestSuite) TestCalculate_ClampsToMinAndBorrowsFromDay() {
	meal := nutrition.NewMacroAllocation(60, 300, 300)

	result, err := suite.service.Calculate(suite.chicken, meal, suite.day)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100.0, result.Quantity)
	assert.InDelta(suite.T(), 1417.5, result.Day.Protein, 1e-9)
	assert.InDelta(suite.T(), 142.5, result.Meal.Protein, 1e-9)
	assert.Equal(suite.T(), meal.Fat, result.Meal.Fat)
}

func (suite *QuantityServiceTestSuite) TestCalculate_ZeroAllocationReturnsZero() {
	meal := nutrition.NewMacroAllocation(0, 300, 300)

	result, err := suite.service.Calculate(suite.chicken, meal, suite.day)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, result.Quantity)
	assert.Equal(suite.T(), suite.day, result.Day)
}

func (suite *QuantityServiceTestSuite) TestCalculate_VeggieIsNotQuantified() {
	broccoli := ingredient.Ingredient{ID: "broccoli", Macro: nutrition.MacroVeggie, Carbs: 7, MinQuantity: 50, MaxQuantity: 200}
	meal := nutrition.NewMacroAllocation(300, 300, 300)

	result, err := suite.service.Calculate(broccoli, meal, suite.day)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, result.Quantity)
	assert.Equal(suite.T(), meal, result.Meal)
}

func (suite *QuantityServiceTestSuite) TestCalculate_UnsupportedMacro() {
	suite.chicken.Macro = "fiber"

	_, err := suite.service.Calculate(suite.chicken, nutrition.NewMacroAllocation(300, 300, 300), suite.day)

	assert.ErrorIs(suite.T(), err, nutrition.ErrUnsupportedMacro)
}

func (suite *QuantityServiceTestSuite) TestCalculate_BothSecondariesOverBudget() {
	// 200g would bring 40g carbs (160 kcal) and 20g fat (180 kcal)
	oats := ingredient.Ingredient{
		ID: "oats", Macro: nutrition.MacroProtein,
		Protein: 15, Carbs: 20, Fat: 10,
		MinQuantity: 0, MaxQuantity: 500,
	}
	meal := nutrition.NewMacroAllocation(120, 80, 45)

	result, err := suite.service.Calculate(oats, meal, suite.day)

	require.NoError(suite.T(), err)
	// fat ratio 45/180 is tighter than carbs 80/160
	assert.Equal(suite.T(), 50.0, result.Quantity)
}

func (suite *QuantityServiceTestSuite) TestCalculate_QuantityIsStepWithinBounds() {
	odd := suite.chicken
	odd.MinQuantity = 95
	odd.MaxQuantity = 144
	require.NoError(suite.T(), odd.Validate())

	for _, protein := range []float64{1, 50, 130, 172, 500, 5000} {
		result, err := suite.service.Calculate(odd, nutrition.NewMacroAllocation(protein, 1000, 1000), suite.day)

		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), int(result.Quantity)%10, "protein %v", protein)
		assert.GreaterOrEqual(suite.T(), result.Quantity, odd.MinQuantity)
		assert.LessOrEqual(suite.T(), result.Quantity, odd.MaxQuantity)
	}
}

func TestQuantityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuantityServiceTestSuite))
}
