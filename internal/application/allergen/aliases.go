package allergen

import "github.com/alchemorsel/mealplan/internal/domain/nutrition"

// aliases maps each allergen to the ingredient names and derivatives that
// contain it. Matching is whole-word, so entries are lowercase words or phrases.
var aliases = map[nutrition.Allergen][]string{
	nutrition.AllergenGluten: {
		"gluten", "wheat", "barley", "rye", "oat", "oats", "spelt", "kamut", "farro",
		"durum", "semolina", "couscous", "bulgur", "freekeh", "triticale", "einkorn",
		"emmer", "malt", "malt vinegar", "brewer's yeast", "seitan", "flour", "bread",
		"breadcrumbs", "panko", "pasta", "spaghetti", "noodles", "udon", "ramen",
		"soy sauce", "teriyaki", "beer", "ale", "crackers", "croutons", "tortilla",
		"pita", "bagel", "cake", "cookies", "pastry", "pie crust", "matzo",
	},
	nutrition.AllergenDairy: {
		"milk", "dairy", "butter", "buttermilk", "ghee", "cream", "sour cream",
		"creme fraiche", "cheese", "cheddar", "mozzarella", "parmesan", "ricotta",
		"feta", "brie", "gouda", "mascarpone", "cottage cheese", "cream cheese",
		"yogurt", "yoghurt", "kefir", "whey", "casein", "caseinate", "lactose",
		"curd", "custard", "ice cream", "paneer", "half-and-half", "condensed milk",
		"evaporated milk", "skyr", "quark",
	},
	nutrition.AllergenEggs: {
		"egg", "eggs", "egg white", "egg yolk", "albumin", "albumen", "mayonnaise",
		"mayo", "meringue", "aioli", "hollandaise", "custard", "eggnog", "lysozyme",
		"ovalbumin", "frittata", "omelette", "omelet", "quiche", "brioche",
	},
	nutrition.AllergenFish: {
		"fish", "salmon", "tuna", "cod", "haddock", "halibut", "trout", "sardine",
		"sardines", "anchovy", "anchovies", "mackerel", "herring", "tilapia",
		"pollock", "bass", "sole", "snapper", "catfish", "swordfish", "fish sauce",
		"worcestershire", "caesar dressing", "bonito", "dashi", "surimi", "caviar",
		"roe",
	},
	nutrition.AllergenShellfish: {
		"shellfish", "shrimp", "prawn", "prawns", "crab", "lobster", "crayfish",
		"crawfish", "langoustine", "scampi", "krill", "shrimp paste", "crab stick",
	},
	nutrition.AllergenMolluscs: {
		"mollusc", "molluscs", "mollusk", "clam", "clams", "mussel", "mussels",
		"oyster", "oysters", "oyster sauce", "scallop", "scallops", "squid",
		"calamari", "octopus", "cuttlefish", "snail", "escargot", "abalone", "whelk",
	},
	nutrition.AllergenTreeNuts: {
		"tree nut", "tree nuts", "almond", "almonds", "cashew", "cashews", "walnut",
		"walnuts", "pecan", "pecans", "pistachio", "pistachios", "hazelnut",
		"hazelnuts", "macadamia", "brazil nut", "pine nut", "pine nuts", "chestnut",
		"praline", "marzipan", "nougat", "gianduja", "frangipane", "nutella",
		"almond milk", "cashew milk",
	},
	nutrition.AllergenPeanuts: {
		"peanut", "peanuts", "peanut butter", "groundnut", "groundnuts",
		"monkey nuts", "arachis oil", "arachis", "satay", "goober",
	},
	nutrition.AllergenSoy: {
		"soy", "soya", "soybean", "soybeans", "soy sauce", "tamari", "shoyu", "tofu",
		"tempeh", "edamame", "miso", "natto", "soy milk", "soy lecithin", "lecithin",
		"textured vegetable protein", "tvp", "yuba",
	},
	nutrition.AllergenSesame: {
		"sesame", "sesame seed", "sesame seeds", "sesame oil", "tahini", "tahina",
		"halva", "halvah", "hummus", "gomasio", "benne", "za'atar",
	},
	nutrition.AllergenMustard: {
		"mustard", "mustard seed", "mustard seeds", "dijon", "mustard greens",
		"mustard oil", "mustard powder",
	},
	nutrition.AllergenCelery: {
		"celery", "celeriac", "celery salt", "celery seed", "celery root",
		"celery leaves",
	},
	nutrition.AllergenLupin: {
		"lupin", "lupine", "lupini", "lupin flour", "lupin seeds",
	},
	nutrition.AllergenSulphites: {
		"sulphite", "sulphites", "sulfite", "sulfites", "sulphur dioxide",
		"sulfur dioxide", "metabisulphite", "metabisulfite", "wine", "dried apricots",
		"vinegar",
	},
}
