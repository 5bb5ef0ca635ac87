package intake

import (
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestCalculateMacroCalories(t *testing.T) {
	s := NewMacroService()

	alloc, err := s.CalculateMacroCalories(2000, nutrition.DefaultMacroRatio)
	require.NoError(t, err)
	assert.InDelta(t, 600, alloc.Protein, 1e-9)
	assert.InDelta(t, 800, alloc.Carbs, 1e-9)
	assert.InDelta(t, 600, alloc.Fat, 1e-9)

	_, err = s.CalculateMacroCalories(0, nutrition.DefaultMacroRatio)
	assert.ErrorIs(t, err, nutrition.ErrInvalidInput)

	_, err = s.CalculateMacroCalories(2000, nutrition.MacroRatio{Protein: 0.5, Carbs: 0.5, Fat: 0.5})
	assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
}

func TestScaleAndAdd(t *testing.T) {
	s := NewMacroService()
	alloc := nutrition.NewMacroAllocation(100, 200, 300)

	assert.Equal(t, nutrition.NewMacroAllocation(-100, -200, -300), s.Scale(alloc, -1))
	assert.Equal(t, nutrition.NewMacroAllocation(150, 200, 300), s.Add(alloc, MacroAdjustment{Protein: ptr(50)}))
	assert.Equal(t, alloc, s.Add(alloc, MacroAdjustment{}))
}

func TestDistribute(t *testing.T) {
	s := NewMacroService()
	alloc := nutrition.NewMacroAllocation(600, 1200, 600)

	t.Run("Weighted", func(t *testing.T) {
		buckets, err := s.Distribute(alloc, 3, []float64{50, 30, 20})
		require.NoError(t, err)
		require.Len(t, buckets, 3)

		want := []nutrition.MacroAllocation{
			nutrition.NewMacroAllocation(300, 600, 300),
			nutrition.NewMacroAllocation(180, 360, 180),
			nutrition.NewMacroAllocation(120, 240, 120),
		}
		for i := range want {
			assert.InDelta(t, want[i].Protein, buckets[i].Protein, 1e-9)
			assert.InDelta(t, want[i].Carbs, buckets[i].Carbs, 1e-9)
			assert.InDelta(t, want[i].Fat, buckets[i].Fat, 1e-9)
		}
	})

	t.Run("Even", func(t *testing.T) {
		buckets, err := s.Distribute(alloc, 4, nil)
		require.NoError(t, err)
		for _, b := range buckets {
			assert.InDelta(t, 150, b.Protein, 1e-9)
			assert.InDelta(t, 300, b.Carbs, 1e-9)
		}
	})

	t.Run("WeightsWithFloatNoise", func(t *testing.T) {
		_, err := s.Distribute(alloc, 3, []float64{33.3333333, 33.3333333, 33.3333334})
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := s.Distribute(alloc, 0, nil)
		assert.ErrorIs(t, err, nutrition.ErrInvalidInput)

		_, err = s.Distribute(alloc, 3, []float64{50, 50})
		assert.ErrorIs(t, err, nutrition.ErrInvalidInput)

		_, err = s.Distribute(alloc, 2, []float64{50, 40})
		assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
	})
}

func TestApplyAdjustments(t *testing.T) {
	s := NewMacroService()
	allocs := []nutrition.MacroAllocation{
		nutrition.NewMacroAllocation(100, 100, 100),
		nutrition.NewMacroAllocation(200, 200, 200),
	}

	out, err := s.ApplyAdjustments(allocs, map[int]MacroAdjustment{1: {Fat: ptr(-50)}})
	require.NoError(t, err)
	assert.Equal(t, allocs[0], out[0])
	assert.Equal(t, nutrition.NewMacroAllocation(200, 200, 150), out[1])
	assert.Equal(t, 200.0, allocs[1].Fat, "input must not be modified")

	_, err = s.ApplyAdjustments(allocs, map[int]MacroAdjustment{2: {}})
	assert.ErrorIs(t, err, nutrition.ErrInvalidInput)
}
