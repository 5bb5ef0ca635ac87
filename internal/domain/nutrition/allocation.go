package nutrition

import "fmt"

// MacroAllocation is a calorie budget split across protein, carbs and fat.
// Components may go negative transiently while calories are being moved
// between a meal and its day.
type MacroAllocation struct {
	Protein float64 `json:"protein_calories" yaml:"protein_calories"`
	Carbs   float64 `json:"carb_calories" yaml:"carb_calories"`
	Fat     float64 `json:"fat_calories" yaml:"fat_calories"`
}

// NewMacroAllocation builds an allocation from protein, carb and fat calories
func NewMacroAllocation(protein, carbs, fat float64) MacroAllocation {
	return MacroAllocation{Protein: protein, Carbs: carbs, Fat: fat}
}

// Total returns the sum of all macro calories
func (a MacroAllocation) Total() float64 {
	return a.Protein + a.Carbs + a.Fat
}

// Get returns the calories allocated to a macro. Veggie carries no budget.
func (a MacroAllocation) Get(m Macro) (float64, error) {
	switch m {
	case MacroProtein:
		return a.Protein, nil
	case MacroCarbs:
		return a.Carbs, nil
	case MacroFat:
		return a.Fat, nil
	case MacroVeggie:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMacro, m)
	}
}

// With returns a copy of the allocation with one macro replaced
func (a MacroAllocation) With(m Macro, calories float64) MacroAllocation {
	switch m {
	case MacroProtein:
		a.Protein = calories
	case MacroCarbs:
		a.Carbs = calories
	case MacroFat:
		a.Fat = calories
	}
	return a
}

// Shift returns a copy with delta calories added to one macro
func (a MacroAllocation) Shift(m Macro, delta float64) MacroAllocation {
	current, err := a.Get(m)
	if err != nil {
		return a
	}
	return a.With(m, current+delta)
}

// Add returns the component-wise sum
func (a MacroAllocation) Add(b MacroAllocation) MacroAllocation {
	return MacroAllocation{
		Protein: a.Protein + b.Protein,
		Carbs:   a.Carbs + b.Carbs,
		Fat:     a.Fat + b.Fat,
	}
}

// Sub returns the component-wise difference
func (a MacroAllocation) Sub(b MacroAllocation) MacroAllocation {
	return MacroAllocation{
		Protein: a.Protein - b.Protein,
		Carbs:   a.Carbs - b.Carbs,
		Fat:     a.Fat - b.Fat,
	}
}

// Scale multiplies every component by factor
func (a MacroAllocation) Scale(factor float64) MacroAllocation {
	return MacroAllocation{
		Protein: a.Protein * factor,
		Carbs:   a.Carbs * factor,
		Fat:     a.Fat * factor,
	}
}

// ClampNonNegative zeroes any negative component
func (a MacroAllocation) ClampNonNegative() MacroAllocation {
	if a.Protein < 0 {
		a.Protein = 0
	}
	if a.Carbs < 0 {
		a.Carbs = 0
	}
	if a.Fat < 0 {
		a.Fat = 0
	}
	return a
}

// MacroRatio is the fraction of total calories given to each macro
type MacroRatio struct {
	Protein float64 `json:"protein" yaml:"protein" mapstructure:"protein"`
	Carbs   float64 `json:"carbs" yaml:"carbs" mapstructure:"carbs"`
	Fat     float64 `json:"fat" yaml:"fat" mapstructure:"fat"`
}

// DefaultMacroRatio is the 30/40/30 protein/carb/fat split
var DefaultMacroRatio = MacroRatio{Protein: 0.3, Carbs: 0.4, Fat: 0.3}

// Sum returns the sum of the three fractions
func (r MacroRatio) Sum() float64 {
	return r.Protein + r.Carbs + r.Fat
}
