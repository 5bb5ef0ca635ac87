package nutrition

// Allergen is one of the regulated food allergens
type Allergen string

const (
	AllergenGluten    Allergen = "gluten"
	AllergenDairy     Allergen = "dairy"
	AllergenEggs      Allergen = "eggs"
	AllergenFish      Allergen = "fish"
	AllergenShellfish Allergen = "shellfish"
	AllergenMolluscs  Allergen = "molluscs"
	AllergenTreeNuts  Allergen = "tree_nuts"
	AllergenPeanuts   Allergen = "peanuts"
	AllergenSoy       Allergen = "soy"
	AllergenSesame    Allergen = "sesame"
	AllergenMustard   Allergen = "mustard"
	AllergenCelery    Allergen = "celery"
	AllergenLupin     Allergen = "lupin"
	AllergenSulphites Allergen = "sulphites"
)

// Allergens lists every known allergen in a stable order
var Allergens = []Allergen{
	AllergenGluten,
	AllergenDairy,
	AllergenEggs,
	AllergenFish,
	AllergenShellfish,
	AllergenMolluscs,
	AllergenTreeNuts,
	AllergenPeanuts,
	AllergenSoy,
	AllergenSesame,
	AllergenMustard,
	AllergenCelery,
	AllergenLupin,
	AllergenSulphites,
}

// Valid reports whether the allergen is known
func (a Allergen) Valid() bool {
	for _, known := range Allergens {
		if a == known {
			return true
		}
	}
	return false
}
