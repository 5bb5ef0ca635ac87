// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/alchemorsel/mealplan/internal/domain/user"
	"github.com/brianvoe/gofakeit/v6"
)

var (
	allMealTypes = []nutrition.MealType{
		nutrition.MealBreakfast, nutrition.MealLunch, nutrition.MealDinner, nutrition.MealSnack,
	}
	allDietTypes = []nutrition.DietType{
		nutrition.DietOmnivore, nutrition.DietVegetarian, nutrition.DietVegan,
		nutrition.DietPescatarian, nutrition.DietKeto, nutrition.DietPaleo,
	}
)

// IngredientFactory provides methods to create catalog ingredients
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates a plausible ingredient for the macro, tagged for every
// meal and diet type so filters never empty the catalog
func (f *IngredientFactory) Ingredient(macro nutrition.Macro) ingredient.Ingredient {
	ing := ingredient.Ingredient{
		ID:             f.faker.UUID(),
		Name:           f.faker.Noun(),
		Macro:          macro,
		Cuisines:       []ingredient.Cuisine{f.cuisine()},
		CookingMethods: []ingredient.CookingMethod{f.cookingMethod()},
		Seasonality:    []ingredient.Season{ingredient.SeasonAllYear},
		Flavours:       []ingredient.Flavour{f.flavour()},
		MealTypes:      append([]nutrition.MealType(nil), allMealTypes...),
		DietTypes:      append([]nutrition.DietType(nil), allDietTypes...),
	}

	switch macro {
	case nutrition.MacroProtein:
		ing.Protein = f.faker.Float64Range(20, 30)
		ing.Carbs = f.faker.Float64Range(0, 4)
		ing.Fat = f.faker.Float64Range(1, 6)
		ing.MinQuantity, ing.MaxQuantity = 50, 400
		ing.Categories = []ingredient.Category{ingredient.CategoryPoultry}
	case nutrition.MacroCarbs:
		ing.Protein = f.faker.Float64Range(4, 10)
		ing.Carbs = f.faker.Float64Range(60, 80)
		ing.Fat = f.faker.Float64Range(0.5, 3)
		ing.MinQuantity, ing.MaxQuantity = 30, 400
		ing.Categories = []ingredient.Category{ingredient.CategoryGrain}
	case nutrition.MacroFat:
		ing.Protein = f.faker.Float64Range(0, 2)
		ing.Carbs = f.faker.Float64Range(0, 2)
		ing.Fat = f.faker.Float64Range(80, 99)
		ing.MinQuantity, ing.MaxQuantity = 10, 80
		ing.Categories = []ingredient.Category{ingredient.CategoryOil}
	default:
		ing.Carbs = f.faker.Float64Range(2, 8)
		ing.MinQuantity, ing.MaxQuantity = 50, 250
		ing.Categories = []ingredient.Category{ingredient.CategoryVegetable}
	}
	ing.Fiber = f.faker.Float64Range(0, 5)
	ing.Calories = ing.Protein*nutrition.KcalPerGramProtein +
		ing.Carbs*nutrition.KcalPerGramCarbs +
		ing.Fat*nutrition.KcalPerGramFat
	return ing
}

// Catalog creates perMacro ingredients for each calorie-bearing macro
func (f *IngredientFactory) Catalog(perMacro int) []ingredient.Ingredient {
	catalog := make([]ingredient.Ingredient, 0, perMacro*len(nutrition.CalorieMacros))
	for _, macro := range nutrition.CalorieMacros {
		for i := 0; i < perMacro; i++ {
			catalog = append(catalog, f.Ingredient(macro))
		}
	}
	return catalog
}

func (f *IngredientFactory) cuisine() ingredient.Cuisine {
	return ingredient.Cuisine(f.faker.RandomString([]string{"italian", "french", "mediterranean", "mexican"}))
}

func (f *IngredientFactory) cookingMethod() ingredient.CookingMethod {
	return ingredient.CookingMethod(f.faker.RandomString([]string{"grilled", "baked", "boiled", "steamed"}))
}

func (f *IngredientFactory) flavour() ingredient.Flavour {
	return ingredient.Flavour(f.faker.RandomString([]string{"salty", "sour", "umami", "fresh", "sweet"}))
}

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{
		faker: gofakeit.New(seed),
	}
}

// Recipe creates a recipe for the meal type
func (f *RecipeFactory) Recipe(mealType nutrition.MealType) recipe.Recipe {
	calories := f.faker.Float64Range(300, 900)
	return recipe.Recipe{
		ID:    f.faker.UUID(),
		Title: fmt.Sprintf("%s %s", f.faker.Adjective(), f.faker.Noun()),
		Ingredients: []recipe.Ingredient{
			{Name: f.faker.Noun(), Amount: f.faker.Float64Range(50, 300), Unit: recipe.MeasurementUnitGram},
			{Name: f.faker.Noun(), Amount: float64(f.faker.IntRange(1, 4)), Unit: recipe.MeasurementUnitPiece},
		},
		Servings: f.faker.IntRange(1, 4),
		Nutrition: nutrition.NutritionalInfo{
			Calories:      calories,
			Protein:       calories * 0.3 / nutrition.KcalPerGramProtein,
			Carbohydrates: calories * 0.4 / nutrition.KcalPerGramCarbs,
			Fat:           calories * 0.3 / nutrition.KcalPerGramFat,
		},
		MealTypes:  []nutrition.MealType{mealType},
		DietTypes:  append([]nutrition.DietType(nil), allDietTypes...),
		Difficulty: recipe.DifficultyLevel(f.faker.RandomString([]string{"easy", "medium", "hard"})),
		PrepTime:   time.Duration(f.faker.IntRange(5, 60)) * time.Minute,
	}
}

// Pool creates perMealType recipes for each meal type
func (f *RecipeFactory) Pool(perMealType int) []recipe.Recipe {
	pool := make([]recipe.Recipe, 0, perMealType*len(allMealTypes))
	for _, mealType := range allMealTypes {
		for i := 0; i < perMealType; i++ {
			pool = append(pool, f.Recipe(mealType))
		}
	}
	return pool
}

// ProfileBuilder provides a fluent interface for building test profiles
type ProfileBuilder struct {
	profile user.UserProfile
}

// NewProfileBuilder creates a new profile builder with default values
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		profile: user.UserProfile{
			Age:           30,
			Gender:        nutrition.GenderMale,
			HeightCm:      175,
			WeightKg:      70,
			ActivityLevel: nutrition.ActivityModerate,
			Goal:          nutrition.GoalWeightLoss,
			Pace:          nutrition.PaceModerate,
			DietType:      nutrition.DietOmnivore,
			UnitSystem:    user.UnitSystemMetric,
			DietFilters:   user.DietFilters{MealCount: 3},
		},
	}
}

// WithGender sets the gender
func (pb *ProfileBuilder) WithGender(g nutrition.Gender) *ProfileBuilder {
	pb.profile.Gender = g
	return pb
}

// WithGoal sets the goal and pace
func (pb *ProfileBuilder) WithGoal(goal nutrition.DietGoal, pace nutrition.Pace) *ProfileBuilder {
	pb.profile.Goal = goal
	pb.profile.Pace = pace
	return pb
}

// WithDietType sets the diet type
func (pb *ProfileBuilder) WithDietType(d nutrition.DietType) *ProfileBuilder {
	pb.profile.DietType = d
	return pb
}

// WithMealCount sets the number of meals per day
func (pb *ProfileBuilder) WithMealCount(n int) *ProfileBuilder {
	pb.profile.DietFilters.MealCount = n
	return pb
}

// WithAllergies sets the raw allergy names
func (pb *ProfileBuilder) WithAllergies(names ...string) *ProfileBuilder {
	pb.profile.DietFilters.Allergies = names
	return pb
}

// WithBody sets age, height and weight
func (pb *ProfileBuilder) WithBody(age int, heightCm, weightKg float64) *ProfileBuilder {
	pb.profile.Age = age
	pb.profile.HeightCm = heightCm
	pb.profile.WeightKg = weightKg
	return pb
}

// Build returns the profile
func (pb *ProfileBuilder) Build() user.UserProfile {
	return pb.profile
}
