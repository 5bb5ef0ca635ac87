package nutrition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroAllocation(t *testing.T) {
	t.Run("GetAndWith", func(t *testing.T) {
		alloc := NewMacroAllocation(300, 400, 300)

		protein, err := alloc.Get(MacroProtein)
		require.NoError(t, err)
		assert.Equal(t, 300.0, protein)

		veggie, err := alloc.Get(MacroVeggie)
		require.NoError(t, err)
		assert.Zero(t, veggie)

		updated := alloc.With(MacroFat, 120)
		assert.Equal(t, 120.0, updated.Fat)
		assert.Equal(t, 300.0, alloc.Fat, "With must not mutate the receiver")
	})

	t.Run("UnknownMacro", func(t *testing.T) {
		_, err := NewMacroAllocation(1, 1, 1).Get(Macro("fiber"))
		assert.True(t, errors.Is(err, ErrUnsupportedMacro))
	})

	t.Run("Arithmetic", func(t *testing.T) {
		a := NewMacroAllocation(100, 200, 300)
		b := NewMacroAllocation(10, 20, 30)

		assert.Equal(t, NewMacroAllocation(110, 220, 330), a.Add(b))
		assert.Equal(t, NewMacroAllocation(90, 180, 270), a.Sub(b))
		assert.Equal(t, NewMacroAllocation(-50, -100, -150), a.Scale(-0.5))
		assert.Equal(t, 600.0, a.Total())
		assert.Equal(t, NewMacroAllocation(150, 200, 300), a.Shift(MacroProtein, 50))
	})

	t.Run("ClampNonNegative", func(t *testing.T) {
		clamped := NewMacroAllocation(-1, 5, -0.5).ClampNonNegative()
		assert.Equal(t, NewMacroAllocation(0, 5, 0), clamped)
	})
}

func TestNutritionalInfoSum(t *testing.T) {
	total := Sum(
		NutritionalInfo{Calories: 100, Protein: 10, Carbohydrates: 5, Fat: 2, Fiber: 1},
		NutritionalInfo{Calories: 50, Protein: 1, Carbohydrates: 10, Fat: 1},
	)

	assert.InDelta(t, 150, total.Calories, 1e-9)
	assert.InDelta(t, 11, total.Protein, 1e-9)
	assert.InDelta(t, 15, total.Carbohydrates, 1e-9)
	assert.InDelta(t, 3, total.Fat, 1e-9)
	assert.InDelta(t, 1, total.Fiber, 1e-9)
	assert.Equal(t, NutritionalInfo{}, Sum())
}

func TestKcalPerGram(t *testing.T) {
	kcal, err := KcalPerGram(MacroFat)
	require.NoError(t, err)
	assert.Equal(t, 9.0, kcal)

	_, err = KcalPerGram(MacroVeggie)
	assert.ErrorIs(t, err, ErrUnsupportedMacro)
}
