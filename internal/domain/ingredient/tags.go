package ingredient

import "time"

// Category is a food group used for combination rules
type Category string

const (
	CategoryMeat         Category = "meat"
	CategoryPoultry      Category = "poultry"
	CategoryFish         Category = "fish"
	CategorySeafood      Category = "seafood"
	CategoryEgg          Category = "egg"
	CategoryDairy        Category = "dairy"
	CategoryLegume       Category = "legume"
	CategoryGrain        Category = "grain"
	CategoryTuber        Category = "tuber"
	CategoryVegetable    Category = "vegetable"
	CategoryFruit        Category = "fruit"
	CategoryNut          Category = "nut"
	CategorySeed         Category = "seed"
	CategoryOil          Category = "oil"
	CategoryPlantProtein Category = "plant_protein"
)

// Cuisine is a culinary tradition
type Cuisine string

const (
	CuisineItalian       Cuisine = "italian"
	CuisineFrench        Cuisine = "french"
	CuisineChinese       Cuisine = "chinese"
	CuisineJapanese      Cuisine = "japanese"
	CuisineIndian        Cuisine = "indian"
	CuisineMexican       Cuisine = "mexican"
	CuisineAmerican      Cuisine = "american"
	CuisineMediterranean Cuisine = "mediterranean"
	CuisineThai          Cuisine = "thai"
	CuisineMiddleEastern Cuisine = "middle_eastern"
)

// CookingMethod is a way of preparing an ingredient
type CookingMethod string

const (
	CookingGrilled CookingMethod = "grilled"
	CookingBaked   CookingMethod = "baked"
	CookingBoiled  CookingMethod = "boiled"
	CookingSteamed CookingMethod = "steamed"
	CookingFried   CookingMethod = "fried"
	CookingSauteed CookingMethod = "sauteed"
	CookingRoasted CookingMethod = "roasted"
	CookingRaw     CookingMethod = "raw"
	CookingStewed  CookingMethod = "stewed"
)

// Season is a time of year an ingredient is at its best
type Season string

const (
	SeasonSpring  Season = "spring"
	SeasonSummer  Season = "summer"
	SeasonAutumn  Season = "autumn"
	SeasonWinter  Season = "winter"
	SeasonAllYear Season = "all_year"
)

// SeasonOf returns the northern-hemisphere season of t
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// Flavour is a dominant taste
type Flavour string

const (
	FlavourSweet  Flavour = "sweet"
	FlavourSour   Flavour = "sour"
	FlavourSalty  Flavour = "salty"
	FlavourBitter Flavour = "bitter"
	FlavourUmami  Flavour = "umami"
	FlavourSpicy  Flavour = "spicy"
	FlavourSavory Flavour = "savory"
	FlavourFresh  Flavour = "fresh"
	FlavourEarthy Flavour = "earthy"
)
