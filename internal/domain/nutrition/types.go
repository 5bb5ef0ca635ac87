// Package nutrition contains the value objects shared by every stage of
// meal-plan generation: enums describing the user and the food, calorie
// allocations split by macronutrient, and aggregated nutritional totals.
package nutrition

import "fmt"

// Gender selects the Mifflin-St Jeor constant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel describes how active a user is during a typical week
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
)

// DietGoal is the body-weight goal the plan is built for
type DietGoal string

const (
	GoalWeightLoss  DietGoal = "weight_loss"
	GoalMaintenance DietGoal = "maintenance"
	GoalWeightGain  DietGoal = "weight_gain"
)

// Pace controls how aggressive the calorie surplus or deficit is
type Pace string

const (
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// DietType is a dietary regime an ingredient or recipe fits
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
)

// MealType identifies the slot of a meal within a day
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Macro is the primary nutrient role of an ingredient
type Macro string

const (
	MacroProtein Macro = "protein"
	MacroCarbs   Macro = "carbs"
	MacroFat     Macro = "fat"
	MacroVeggie  Macro = "veggie"
)

// Energy density of each macronutrient in kcal per gram
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

// KcalPerGram returns the energy density of a calorie-bearing macro
func KcalPerGram(m Macro) (float64, error) {
	switch m {
	case MacroProtein:
		return KcalPerGramProtein, nil
	case MacroCarbs:
		return KcalPerGramCarbs, nil
	case MacroFat:
		return KcalPerGramFat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMacro, m)
	}
}

// CalorieMacros lists the macros that carry a calorie budget, in allocation order
var CalorieMacros = []Macro{MacroProtein, MacroCarbs, MacroFat}

// Valid reports whether the gender is known
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Valid reports whether the meal type is known
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Valid reports whether the diet type is known
func (d DietType) Valid() bool {
	switch d {
	case DietOmnivore, DietVegetarian, DietVegan, DietPescatarian, DietKeto, DietPaleo:
		return true
	}
	return false
}

// DefaultMealCount is used when a requested meal count is out of range
const DefaultMealCount = 3

var mealSequences = map[int][]MealType{
	1: {MealDinner},
	2: {MealBreakfast, MealDinner},
	3: {MealBreakfast, MealLunch, MealDinner},
	4: {MealBreakfast, MealLunch, MealSnack, MealDinner},
	5: {MealBreakfast, MealSnack, MealLunch, MealSnack, MealDinner},
	6: {MealBreakfast, MealSnack, MealLunch, MealSnack, MealDinner, MealSnack},
}

// MealTypesFor returns the ordered meal types of a day with count meals.
// Counts outside 1..6 fall back to three meals and report false.
//
// Both the ingredient and the recipe pipelines use this table. The ingredient
// path no longer takes breakfast, lunch and dinner truncated to count and pads
// with snacks, so two meals are breakfast and dinner rather than breakfast and
// lunch, and four meals put the snack before dinner.
func MealTypesFor(count int) ([]MealType, bool) {
	seq, ok := mealSequences[count]
	if !ok {
		seq = mealSequences[DefaultMealCount]
	}
	return append([]MealType(nil), seq...), ok
}
