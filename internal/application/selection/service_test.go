package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// SelectionServiceTestSuite covers filtering, scoring and tie-breaking
type SelectionServiceTestSuite struct {
	suite.Suite
	catalog []ingredient.Ingredient
	ledger  *UsageLedger
}

func (suite *SelectionServiceTestSuite) SetupTest() {
	lunch := []nutrition.MealType{nutrition.MealLunch, nutrition.MealDinner}
	omni := []nutrition.DietType{nutrition.DietOmnivore}
	suite.catalog = []ingredient.Ingredient{
		{ID: "chicken", Macro: nutrition.MacroProtein, MealTypes: lunch, DietTypes: omni,
			Categories: []ingredient.Category{ingredient.CategoryPoultry}},
		{ID: "cod", Macro: nutrition.MacroProtein, MealTypes: lunch, DietTypes: omni,
			Categories: []ingredient.Category{ingredient.CategoryFish}, Allergens: []nutrition.Allergen{nutrition.AllergenFish}},
		{ID: "rice", Macro: nutrition.MacroCarbs, MealTypes: lunch, DietTypes: omni,
			Categories: []ingredient.Category{ingredient.CategoryGrain}},
		{ID: "cheese", Macro: nutrition.MacroCarbs, MealTypes: lunch, DietTypes: omni,
			Categories: []ingredient.Category{ingredient.CategoryDairy}},
		{ID: "olive-oil", Macro: nutrition.MacroFat, MealTypes: lunch, DietTypes: omni,
			Categories: []ingredient.Category{ingredient.CategoryOil}},
		{ID: "tofu", Macro: nutrition.MacroProtein, MealTypes: lunch, DietTypes: []nutrition.DietType{nutrition.DietVegan}},
	}
	suite.ledger = NewUsageLedger()
}

func (suite *SelectionServiceTestSuite) newService(seed uint64) *Service {
	clock := fixedClock(julyNoon)
	return NewService(
		suite.catalog,
		NewScorer(suite.ledger, DefaultVarietyWindow, clock),
		suite.ledger,
		rand.New(rand.NewPCG(seed, seed)),
		clock,
		zaptest.NewLogger(suite.T()),
	)
}

func (suite *SelectionServiceTestSuite) TestFindCompatibleIngredient_Filters() {
	service := suite.newService(1)

	// Act
	got, ok := service.FindCompatibleIngredient(
		nutrition.MacroProtein, nutrition.MealLunch, nutrition.DietOmnivore,
		[]nutrition.Allergen{nutrition.AllergenFish}, nil,
	)

	// Assert
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "chicken", got.ID)
	assert.Zero(suite.T(), suite.ledger.Count("chicken"), "picking alone is not usage")
}

func (suite *SelectionServiceTestSuite) TestRecordUsage_PenalisesLaterPicks() {
	service := suite.newService(1)
	tofu := suite.catalog[5]
	current := suite.catalog[:1]
	before := service.scorer.Score(tofu, current)

	// Act
	service.RecordUsage("tofu")

	// Assert
	assert.Equal(suite.T(), 1, suite.ledger.Count("tofu"))
	assert.Less(suite.T(), service.scorer.Score(tofu, current), before)
}

func (suite *SelectionServiceTestSuite) TestFindCompatibleIngredient_NoCandidate() {
	service := suite.newService(1)

	_, ok := service.FindCompatibleIngredient(
		nutrition.MacroProtein, nutrition.MealBreakfast, nutrition.DietOmnivore, nil, nil,
	)

	assert.False(suite.T(), ok)
	_, ok = service.FindCompatibleIngredient(
		nutrition.MacroVeggie, nutrition.MealLunch, nutrition.DietOmnivore, nil, nil,
	)
	assert.False(suite.T(), ok)
}

func (suite *SelectionServiceTestSuite) TestFindCompatibleIngredient_TakesTopScoreGroup() {
	cod := suite.catalog[1]

	// Grain combines with fish, dairy does not, so rice always outranks cheese
	for seed := uint64(0); seed < 20; seed++ {
		suite.ledger = NewUsageLedger()
		service := suite.newService(seed)

		got, ok := service.FindCompatibleIngredient(
			nutrition.MacroCarbs, nutrition.MealDinner, nutrition.DietOmnivore, nil,
			[]ingredient.Ingredient{cod},
		)

		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "rice", got.ID)
	}
}

func (suite *SelectionServiceTestSuite) TestFindCompatibleIngredient_SeededTieBreakIsReproducible() {
	pick := func(seed uint64) []string {
		suite.ledger = NewUsageLedger()
		service := suite.newService(seed)
		var ids []string
		for i := 0; i < 10; i++ {
			got, ok := service.FindCompatibleIngredient(
				nutrition.MacroProtein, nutrition.MealLunch, nutrition.DietOmnivore, nil, nil,
			)
			require.True(suite.T(), ok)
			ids = append(ids, got.ID)
		}
		return ids
	}

	assert.Equal(suite.T(), pick(42), pick(42))
}

func (suite *SelectionServiceTestSuite) TestSelectCompatibleIngredients_SkipsMisses() {
	service := suite.newService(7)

	got := service.SelectCompatibleIngredients(
		nutrition.DietVegan, nutrition.MealLunch, nil,
		[]nutrition.Macro{nutrition.MacroProtein, nutrition.MacroCarbs, nutrition.MacroFat},
	)

	require.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "tofu", got[0].ID)
}

func (suite *SelectionServiceTestSuite) TestSelectCompatibleIngredients_OnePerMacroInOrder() {
	service := suite.newService(7)

	got := service.SelectCompatibleIngredients(
		nutrition.DietOmnivore, nutrition.MealLunch, nil,
		[]nutrition.Macro{nutrition.MacroProtein, nutrition.MacroCarbs, nutrition.MacroFat},
	)

	require.Len(suite.T(), got, 3)
	assert.Equal(suite.T(), nutrition.MacroProtein, got[0].Macro)
	assert.Equal(suite.T(), nutrition.MacroCarbs, got[1].Macro)
	assert.Equal(suite.T(), "olive-oil", got[2].ID)
}

func TestSelectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionServiceTestSuite))
}
