package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

func validIngredient() Ingredient {
	return Ingredient{
		ID:          "salmon",
		Name:        "Salmon",
		Macro:       nutrition.MacroProtein,
		Protein:     20,
		Carbs:       2,
		Fat:         13,
		Calories:    208,
		MinQuantity: 80,
		MaxQuantity: 250,
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validIngredient().Validate())
	})

	t.Run("ZeroBounds", func(t *testing.T) {
		ing := validIngredient()
		ing.MinQuantity, ing.MaxQuantity = 0, 0
		assert.NoError(t, ing.Validate())
	})

	t.Run("BoundsOnAStep", func(t *testing.T) {
		ing := validIngredient()
		ing.MinQuantity, ing.MaxQuantity = 100, 100
		assert.NoError(t, ing.Validate())
	})

	t.Run("NoStepWithinBounds", func(t *testing.T) {
		ing := validIngredient()
		ing.MinQuantity, ing.MaxQuantity = 101, 109

		err := ing.Validate()

		assert.ErrorIs(t, err, ErrNoQuantityStep)
		assert.Contains(t, err.Error(), `"salmon"`)
	})

	t.Run("InvertedBounds", func(t *testing.T) {
		ing := validIngredient()
		ing.MinQuantity, ing.MaxQuantity = 200, 100
		assert.Error(t, ing.Validate())
	})
}

func TestCaloriesAt(t *testing.T) {
	ing := validIngredient()

	// (20*4 + 2*4 + 13*9) kcal per 100g
	assert.InDelta(t, 205.0, ing.CaloriesAt(100), 1e-9)
	assert.InDelta(t, 102.5, ing.CaloriesAt(50), 1e-9)
	assert.Zero(t, ing.CaloriesAt(0))
	assert.Greater(t, ing.CaloriesAt(100), ing.MacroCalories(nutrition.MacroProtein, 100))
}
