package selection

import "github.com/alchemorsel/mealplan/internal/domain/ingredient"

// categoryPairs lists which food groups combine on one plate. The table is
// made symmetric at init; a category always combines with itself.
var categoryPairs = map[ingredient.Category][]ingredient.Category{
	ingredient.CategoryMeat: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryLegume, ingredient.CategoryOil, ingredient.CategoryDairy,
		ingredient.CategoryEgg, ingredient.CategorySeed,
	},
	ingredient.CategoryPoultry: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryLegume, ingredient.CategoryOil, ingredient.CategoryDairy,
		ingredient.CategoryEgg, ingredient.CategoryNut, ingredient.CategorySeed,
		ingredient.CategoryFruit,
	},
	ingredient.CategoryFish: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryLegume, ingredient.CategoryOil, ingredient.CategorySeed,
		ingredient.CategoryFruit, ingredient.CategoryEgg,
	},
	ingredient.CategorySeafood: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryLegume, ingredient.CategoryOil, ingredient.CategoryFish,
	},
	ingredient.CategoryEgg: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryDairy, ingredient.CategoryOil, ingredient.CategorySeed,
		ingredient.CategoryLegume, ingredient.CategoryPlantProtein,
	},
	ingredient.CategoryDairy: {
		ingredient.CategoryGrain, ingredient.CategoryFruit, ingredient.CategoryNut,
		ingredient.CategorySeed, ingredient.CategoryVegetable, ingredient.CategoryTuber,
		ingredient.CategoryLegume, ingredient.CategoryOil,
	},
	ingredient.CategoryLegume: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryOil, ingredient.CategorySeed, ingredient.CategoryNut,
		ingredient.CategoryPlantProtein,
	},
	ingredient.CategoryPlantProtein: {
		ingredient.CategoryGrain, ingredient.CategoryTuber, ingredient.CategoryVegetable,
		ingredient.CategoryOil, ingredient.CategorySeed, ingredient.CategoryNut,
		ingredient.CategoryFruit,
	},
	ingredient.CategoryGrain: {
		ingredient.CategoryVegetable, ingredient.CategoryFruit, ingredient.CategoryNut,
		ingredient.CategorySeed, ingredient.CategoryOil, ingredient.CategoryTuber,
	},
	ingredient.CategoryTuber: {
		ingredient.CategoryVegetable, ingredient.CategoryOil, ingredient.CategorySeed,
	},
	ingredient.CategoryVegetable: {
		ingredient.CategoryFruit, ingredient.CategoryNut, ingredient.CategorySeed,
		ingredient.CategoryOil,
	},
	ingredient.CategoryFruit: {
		ingredient.CategoryNut, ingredient.CategorySeed,
	},
	ingredient.CategoryNut: {
		ingredient.CategorySeed, ingredient.CategoryOil,
	},
	ingredient.CategorySeed: {
		ingredient.CategoryOil,
	},
}

// flavourPairs lists complementary tastes, made symmetric at init
var flavourPairs = map[ingredient.Flavour][]ingredient.Flavour{
	ingredient.FlavourSweet:  {ingredient.FlavourSour, ingredient.FlavourSalty, ingredient.FlavourSpicy, ingredient.FlavourBitter, ingredient.FlavourEarthy},
	ingredient.FlavourSalty:  {ingredient.FlavourSour, ingredient.FlavourUmami, ingredient.FlavourBitter, ingredient.FlavourFresh},
	ingredient.FlavourUmami:  {ingredient.FlavourSour, ingredient.FlavourSweet, ingredient.FlavourFresh, ingredient.FlavourEarthy},
	ingredient.FlavourSpicy:  {ingredient.FlavourSour, ingredient.FlavourFresh, ingredient.FlavourUmami},
	ingredient.FlavourSavory: {ingredient.FlavourFresh, ingredient.FlavourEarthy, ingredient.FlavourSour},
}

var (
	compatibleCategories  = symmetric(categoryPairs)
	complementaryFlavours = symmetric(flavourPairs)
)

type pair[T comparable] struct{ a, b T }

func symmetric[T comparable](table map[T][]T) map[pair[T]]bool {
	out := make(map[pair[T]]bool)
	for a, others := range table {
		for _, b := range others {
			out[pair[T]{a, b}] = true
			out[pair[T]{b, a}] = true
		}
	}
	return out
}

// CategoriesCombine reports whether two food groups may share a plate
func CategoriesCombine(a, b ingredient.Category) bool {
	return a == b || compatibleCategories[pair[ingredient.Category]{a, b}]
}

// FlavoursComplement reports whether two tastes complement each other
func FlavoursComplement(a, b ingredient.Flavour) bool {
	return complementaryFlavours[pair[ingredient.Flavour]{a, b}]
}
