package planner

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/allergen"
	"github.com/alchemorsel/mealplan/internal/application/intake"
	"github.com/alchemorsel/mealplan/internal/application/quantity"
	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/application/selection"
	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/alchemorsel/mealplan/internal/domain/user"
)

// BuildRequest is the input of a single plan generation. Recipes and
// DailyRecipes select the recipe pipeline; otherwise Catalog is used.
type BuildRequest struct {
	Profile      user.UserProfile
	Allergens    []nutrition.Allergen
	Catalog      []ingredient.Ingredient
	Recipes      []recipe.Recipe
	DailyRecipes [][]recipe.Recipe
	StartDate    time.Time
}

func (r BuildRequest) usesRecipes() bool {
	return len(r.Recipes) > 0 || len(r.DailyRecipes) > 0
}

type options struct {
	seed          *uint64
	now           func() time.Time
	strategy      recipeplan.Strategy
	ratio         nutrition.MacroRatio
	mealWeights   map[int][]float64
	varietyWindow time.Duration
	fallback      bool
}

// Option configures a Builder
type Option func(*options)

// WithSeed makes every Build draw from a generator seeded with seed
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStrategy sets the recipe distribution strategy
func WithStrategy(s recipeplan.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithMacroRatio sets the protein/carb/fat split of daily calories
func WithMacroRatio(r nutrition.MacroRatio) Option {
	return func(o *options) { o.ratio = r }
}

// WithMealWeights sets per meal count percentage splits of a day
func WithMealWeights(w map[int][]float64) Option {
	return func(o *options) { o.mealWeights = w }
}

// WithVarietyWindow sets how far back ingredient reuse is penalized
func WithVarietyWindow(d time.Duration) Option {
	return func(o *options) { o.varietyWindow = d }
}

// WithIngredientFallback rebuilds unscalable recipe slots from the catalog
func WithIngredientFallback(enabled bool) Option {
	return func(o *options) { o.fallback = enabled }
}

// Builder generates week plans. It keeps only configuration between calls;
// every Build gets its own generator, usage ledger and services.
type Builder struct {
	opts     options
	caloric  *intake.CaloricService
	macros   *intake.MacroService
	matcher  *allergen.Matcher
	scaling  *recipeplan.ScalingService
	quantity *quantity.Service
	week     *WeekMealPlanService
	logger   *zap.Logger
}

// NewBuilder creates a builder
func NewBuilder(matcher *allergen.Matcher, logger *zap.Logger, opts ...Option) *Builder {
	o := options{
		now:           time.Now,
		strategy:      recipeplan.StrategyBalanced,
		ratio:         nutrition.DefaultMacroRatio,
		varietyWindow: selection.DefaultVarietyWindow,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		opts:     o,
		caloric:  intake.NewCaloricService(logger),
		macros:   intake.NewMacroService(),
		matcher:  matcher,
		scaling:  recipeplan.NewScalingService(logger),
		quantity: quantity.NewService(logger),
		week:     NewWeekMealPlanService(logger),
		logger:   logger.Named("builder"),
	}
}

// Build generates a week plan for the request
func (b *Builder) Build(req BuildRequest) (*mealplan.WeekMealPlan, error) {
	daily, err := b.caloric.DailyCalories(req.Profile)
	if err != nil {
		return nil, fmt.Errorf("daily calories: %w", err)
	}
	weekly, err := b.macros.CalculateMacroCalories(daily*mealplan.DaysPerWeek, b.opts.ratio)
	if err != nil {
		return nil, fmt.Errorf("weekly macros: %w", err)
	}

	start := req.StartDate
	if start.IsZero() {
		start = b.opts.now()
	}
	prefs := Preferences{
		MealCount: req.Profile.DietFilters.MealCount,
		DietType:  req.Profile.DietType,
		Allergens: req.Allergens,
	}
	rng := b.newRand()

	var meals *MealService
	if len(req.Catalog) > 0 {
		meals = b.newMealService(req.Catalog, rng)
	}

	var days []mealplan.DayMealPlan
	switch {
	case req.usesRecipes():
		days, err = b.recipeDays(req, weekly, start, prefs, meals, rng)
	case meals != nil:
		days, err = NewDayMealPlanService(b.macros, meals, b.scaling, nil, b.opts.now, b.logger).
			CreateWeekDays(weekly, start, prefs)
	default:
		return nil, fmt.Errorf("%w: neither a catalog nor recipes were supplied", nutrition.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	plan, err := b.week.Assemble(start, days, mealplan.Targets{DailyCalories: daily, Weekly: weekly})
	if err != nil {
		return nil, err
	}
	b.logger.Info("week plan built",
		zap.String("plan_id", plan.ID.String()),
		zap.Float64("daily_calories", daily),
		zap.Bool("recipes", req.usesRecipes()),
		zap.Int("meals", plan.MealCount()),
	)
	return plan, nil
}

func (b *Builder) recipeDays(
	req BuildRequest,
	weekly nutrition.MacroAllocation,
	start time.Time,
	prefs Preferences,
	meals *MealService,
	rng *rand.Rand,
) ([]mealplan.DayMealPlan, error) {
	var fallback MealFactory
	if b.opts.fallback && meals != nil {
		fallback = meals
	}
	daySvc := NewDayMealPlanService(b.macros, meals, b.scaling, fallback, b.opts.now, b.logger)
	distribution := recipeplan.NewDistributionService(rng, b.logger)

	var slots [][]recipeplan.Slot
	if len(req.DailyRecipes) > 0 {
		slots = make([][]recipeplan.Slot, mealplan.DaysPerWeek)
		for i := range slots {
			if i < len(req.DailyRecipes) {
				slots[i] = distribution.AssignDay(b.eligible(req.DailyRecipes[i], prefs), prefs.MealCount, i, b.opts.strategy)
			}
		}
	} else {
		slots = distribution.Distribute(b.eligible(req.Recipes, prefs), prefs.MealCount, b.opts.strategy)
	}

	allocs, err := b.macros.Distribute(weekly, mealplan.DaysPerWeek, nil)
	if err != nil {
		return nil, fmt.Errorf("distribute week across days: %w", err)
	}

	days := make([]mealplan.DayMealPlan, 0, mealplan.DaysPerWeek)
	for i, alloc := range allocs {
		day, err := daySvc.CreateDailyRecipeMealPlan(start.AddDate(0, 0, i), i, alloc, slots[i], prefs)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// eligible drops recipes that do not fit the diet or mention an excluded allergen
func (b *Builder) eligible(pool []recipe.Recipe, prefs Preferences) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(pool))
	for _, r := range pool {
		if r.SuitsDiet(prefs.DietType) {
			out = append(out, r)
		}
	}
	return b.matcher.FilterRecipes(out, prefs.Allergens)
}

func (b *Builder) newMealService(catalog []ingredient.Ingredient, rng *rand.Rand) *MealService {
	ledger := selection.NewUsageLedger()
	scorer := selection.NewScorer(ledger, b.opts.varietyWindow, b.opts.now)
	sel := selection.NewService(catalog, scorer, ledger, rng, b.opts.now, b.logger)
	return NewMealService(sel, b.quantity, b.macros, b.opts.mealWeights, b.opts.now, b.logger)
}

func (b *Builder) newRand() *rand.Rand {
	seed := rand.Uint64()
	if b.opts.seed != nil {
		seed = *b.opts.seed
	}
	return rand.New(rand.NewPCG(seed, seed))
}
