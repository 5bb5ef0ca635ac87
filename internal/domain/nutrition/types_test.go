package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealTypesFor(t *testing.T) {
	tests := []struct {
		count int
		want  []MealType
		ok    bool
	}{
		{1, []MealType{MealDinner}, true},
		{2, []MealType{MealBreakfast, MealDinner}, true},
		{3, []MealType{MealBreakfast, MealLunch, MealDinner}, true},
		{4, []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}, true},
		{5, []MealType{MealBreakfast, MealSnack, MealLunch, MealSnack, MealDinner}, true},
		{6, []MealType{MealBreakfast, MealSnack, MealLunch, MealSnack, MealDinner, MealSnack}, true},
		{0, []MealType{MealBreakfast, MealLunch, MealDinner}, false},
		{7, []MealType{MealBreakfast, MealLunch, MealDinner}, false},
	}

	for _, tt := range tests {
		got, ok := MealTypesFor(tt.count)
		assert.Equal(t, tt.ok, ok, "count %d", tt.count)
		assert.Equal(t, tt.want, got, "count %d", tt.count)
	}
}

func TestMealTypesFor_ReturnsCopy(t *testing.T) {
	first, _ := MealTypesFor(3)
	first[0] = MealSnack

	second, _ := MealTypesFor(3)

	assert.Equal(t, MealBreakfast, second[0])
}
