// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// MockIngredientCatalog provides a mock implementation of IngredientCatalog
type MockIngredientCatalog struct {
	mock.Mock
}

// Ingredients returns the catalog
func (m *MockIngredientCatalog) Ingredients(ctx context.Context) ([]ingredient.Ingredient, error) {
	args := m.Called(ctx)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ingredient.Ingredient), nil
}

// MockRecipeSource provides a mock implementation of RecipeSource
type MockRecipeSource struct {
	mock.Mock
}

// FindRecipes returns candidate recipes
func (m *MockRecipeSource) FindRecipes(ctx context.Context, query outbound.RecipeQuery) (*outbound.RecipeResult, error) {
	args := m.Called(ctx, query)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.RecipeResult), nil
}

// MockMetrics provides a mock implementation of Metrics
type MockMetrics struct {
	mock.Mock
}

// RecordGeneration records a generation outcome
func (m *MockMetrics) RecordGeneration(pipeline string, status string, duration time.Duration) {
	m.Called(pipeline, status, duration)
}

// RecordPlan records plan size
func (m *MockMetrics) RecordPlan(meals int, weeklyCalories float64) {
	m.Called(meals, weeklyCalories)
}

// RecordSkippedAllergens records unrecognized allergen names
func (m *MockMetrics) RecordSkippedAllergens(count int) {
	m.Called(count)
}

// SetupStandardMockBehavior accepts any metric call
func (m *MockMetrics) SetupStandardMockBehavior() {
	m.On("RecordGeneration", mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	m.On("RecordPlan", mock.Anything, mock.Anything).Return().Maybe()
	m.On("RecordSkippedAllergens", mock.Anything).Return().Maybe()
}

// MockAllergenValidator provides a mock implementation of AllergenValidator
type MockAllergenValidator struct {
	mock.Mock
}

// SupportedAllergens lists recognized names
func (m *MockAllergenValidator) SupportedAllergens() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// IsValidAllergen reports whether the name is recognized
func (m *MockAllergenValidator) IsValidAllergen(name string) bool {
	return m.Called(name).Bool(0)
}

var (
	_ outbound.IngredientCatalog = (*MockIngredientCatalog)(nil)
	_ outbound.RecipeSource      = (*MockRecipeSource)(nil)
	_ outbound.Metrics           = (*MockMetrics)(nil)
	_ outbound.AllergenValidator = (*MockAllergenValidator)(nil)
)
