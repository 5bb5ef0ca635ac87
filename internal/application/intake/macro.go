package intake

import (
	"fmt"
	"math"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

const floatTolerance = 1e-6

// MacroAdjustment is a partial delta; nil fields leave a macro unchanged
type MacroAdjustment struct {
	Protein *float64
	Carbs   *float64
	Fat     *float64
}

// MacroService splits calories into macro budgets and spreads them over buckets
type MacroService struct{}

// NewMacroService creates a new macronutrient service
func NewMacroService() *MacroService {
	return &MacroService{}
}

// CalculateMacroCalories splits total calories by ratio
func (s *MacroService) CalculateMacroCalories(totalCalories float64, ratio nutrition.MacroRatio) (nutrition.MacroAllocation, error) {
	if totalCalories <= 0 {
		return nutrition.MacroAllocation{}, fmt.Errorf("%w: total calories must be positive, got %v",
			nutrition.ErrInvalidInput, totalCalories)
	}
	if math.Abs(ratio.Sum()-1) > floatTolerance {
		return nutrition.MacroAllocation{}, fmt.Errorf("%w: macro ratio must sum to 1, got %v",
			nutrition.ErrInvalidInput, ratio.Sum())
	}
	return nutrition.MacroAllocation{
		Protein: totalCalories * ratio.Protein,
		Carbs:   totalCalories * ratio.Carbs,
		Fat:     totalCalories * ratio.Fat,
	}, nil
}

// Scale multiplies an allocation; negative factors are allowed
func (s *MacroService) Scale(alloc nutrition.MacroAllocation, factor float64) nutrition.MacroAllocation {
	return alloc.Scale(factor)
}

// Add applies a partial delta
func (s *MacroService) Add(alloc nutrition.MacroAllocation, partial MacroAdjustment) nutrition.MacroAllocation {
	if partial.Protein != nil {
		alloc.Protein += *partial.Protein
	}
	if partial.Carbs != nil {
		alloc.Carbs += *partial.Carbs
	}
	if partial.Fat != nil {
		alloc.Fat += *partial.Fat
	}
	return alloc
}

// Distribute splits an allocation into count buckets, evenly when weights is
// empty, otherwise by percentage weights that must sum to 100
func (s *MacroService) Distribute(alloc nutrition.MacroAllocation, count int, weights []float64) ([]nutrition.MacroAllocation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: bucket count must be positive, got %d", nutrition.ErrInvalidInput, count)
	}

	buckets := make([]nutrition.MacroAllocation, count)
	if len(weights) == 0 {
		share := alloc.Scale(1 / float64(count))
		for i := range buckets {
			buckets[i] = share
		}
		return buckets, nil
	}

	if len(weights) != count {
		return nil, fmt.Errorf("%w: got %d weights for %d buckets", nutrition.ErrInvalidInput, len(weights), count)
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-100) > floatTolerance {
		return nil, fmt.Errorf("%w: weights must sum to 100, got %v", nutrition.ErrInvalidInput, sum)
	}

	for i, w := range weights {
		buckets[i] = alloc.Scale(w / 100)
	}
	return buckets, nil
}

// ApplyAdjustments adds per-bucket deltas keyed by index. The input slice is
// not modified.
func (s *MacroService) ApplyAdjustments(allocs []nutrition.MacroAllocation, adjustments map[int]MacroAdjustment) ([]nutrition.MacroAllocation, error) {
	out := make([]nutrition.MacroAllocation, len(allocs))
	copy(out, allocs)
	for idx, adj := range adjustments {
		if idx < 0 || idx >= len(out) {
			return nil, fmt.Errorf("%w: adjustment index %d out of range [0,%d)", nutrition.ErrInvalidInput, idx, len(out))
		}
		out[idx] = s.Add(out[idx], adj)
	}
	return out, nil
}
