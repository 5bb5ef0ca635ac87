// Package mealplan provides the application layer for meal plan generation
// This implements the use case defined in the inbound ports
package mealplan

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/allergen"
	"github.com/alchemorsel/mealplan/internal/application/planner"
	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/domain/mealplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"github.com/alchemorsel/mealplan/internal/ports/inbound"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
	"github.com/alchemorsel/mealplan/pkg/errors"
)

// Settings are the engine options applied to every generated plan
type Settings struct {
	Seed          *uint64
	Strategy      recipeplan.Strategy
	MacroRatio    nutrition.MacroRatio
	MealWeights   map[int][]float64
	VarietyWindow time.Duration
	Fallback      bool
}

// MealPlanService implements the meal plan use case
type MealPlanService struct {
	catalog   outbound.IngredientCatalog
	recipes   outbound.RecipeSource
	matcher   *allergen.Matcher
	validator outbound.AllergenValidator
	metrics   outbound.Metrics
	tracer    trace.Tracer
	settings  Settings
	now       func() time.Time
	logger    *zap.Logger
}

// NewMealPlanService creates a new meal plan service. Either catalog or
// recipes may be nil, but not both. The validator decides which allergy
// names are reported back as unrecognized.
func NewMealPlanService(
	catalog outbound.IngredientCatalog,
	recipes outbound.RecipeSource,
	matcher *allergen.Matcher,
	validator outbound.AllergenValidator,
	metrics outbound.Metrics,
	tracer trace.Tracer,
	settings Settings,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		catalog:   catalog,
		recipes:   recipes,
		matcher:   matcher,
		validator: validator,
		metrics:   metrics,
		tracer:    tracer,
		settings:  settings,
		now:       time.Now,
		logger:    logger.Named("mealplan-service"),
	}
}

// GenerateMealPlan validates the profile, gathers ingredients or recipes and
// builds a week plan with a builder dedicated to this request
func (s *MealPlanService) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (*inbound.MealPlanResult, error) {
	ctx, span := s.tracer.Start(ctx, "mealplan.generate")
	defer span.End()

	started := s.now()
	pipeline := s.resolvePipeline(cmd.Pipeline)
	span.SetAttributes(
		attribute.String("mealplan.pipeline", string(pipeline)),
		attribute.String("mealplan.diet_type", string(cmd.Profile.DietType)),
		attribute.Int("mealplan.meal_count", cmd.Profile.DietFilters.MealCount),
	)

	result, err := s.generate(ctx, cmd, pipeline)
	status := "success"
	if err != nil {
		status = string(errors.GetCode(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	}
	s.metrics.RecordGeneration(string(pipeline), status, s.now().Sub(started))
	return result, err
}

func (s *MealPlanService) generate(ctx context.Context, cmd inbound.GenerateMealPlanCommand, pipeline inbound.Pipeline) (*inbound.MealPlanResult, error) {
	s.logger.Info("Generating meal plan",
		zap.String("pipeline", string(pipeline)),
		zap.String("goal", string(cmd.Profile.Goal)),
		zap.String("diet_type", string(cmd.Profile.DietType)),
		zap.Int("meal_count", cmd.Profile.DietFilters.MealCount),
	)

	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelledError(err)
	}
	if err := cmd.Profile.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	known, unknown := s.splitAllergies(cmd.Profile.DietFilters.Allergies)
	allergens, _ := s.matcher.ParseAllergens(known)
	if len(unknown) > 0 {
		s.logger.Warn("Ignoring unrecognized allergens",
			zap.Strings("allergens", unknown),
			zap.Strings("supported", s.validator.SupportedAllergens()),
		)
		s.metrics.RecordSkippedAllergens(len(unknown))
	}

	req := planner.BuildRequest{
		Profile:   cmd.Profile,
		Allergens: allergens,
		StartDate: cmd.StartDate,
	}
	if err := s.load(ctx, &req, pipeline); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewCancelledError(err)
	}

	plan, err := planner.NewBuilder(s.matcher, s.logger, s.builderOptions(cmd)...).Build(req)
	if err != nil {
		return nil, mapEngineError(err)
	}

	event := mealplan.NewWeekPlanGeneratedEvent(plan, s.now())
	s.logger.Info("Meal plan generated",
		zap.String("event", event.EventName()),
		zap.String("plan_id", event.PlanID.String()),
		zap.Time("start_date", event.StartDate),
		zap.Int("meals", event.Meals),
		zap.Float64("calories", event.Calories),
	)
	s.metrics.RecordPlan(event.Meals, event.Calories)

	return &inbound.MealPlanResult{
		Plan:                  plan,
		UnrecognizedAllergens: unknown,
		Pipeline:              pipeline,
	}, nil
}

// splitAllergies separates the names the validator recognizes from the rest,
// keeping input order
func (s *MealPlanService) splitAllergies(names []string) (known, unknown []string) {
	for _, name := range names {
		if s.validator.IsValidAllergen(name) {
			known = append(known, name)
			continue
		}
		unknown = append(unknown, name)
	}
	return known, unknown
}

// load fills the request from the outbound ports. The catalog is also
// loaded for the recipe pipeline when fallback is enabled.
func (s *MealPlanService) load(ctx context.Context, req *planner.BuildRequest, pipeline inbound.Pipeline) error {
	needCatalog := pipeline == inbound.PipelineIngredients || s.settings.Fallback
	if needCatalog && s.catalog != nil {
		catalog, err := s.catalog.Ingredients(ctx)
		if err != nil {
			return errors.NewCatalogUnavailableError("ingredient catalog", err)
		}
		req.Catalog = catalog
	}

	if pipeline != inbound.PipelineRecipes {
		return nil
	}
	if s.recipes == nil {
		return errors.NewAppError(errors.CodeInvalidInput, "Recipe pipeline requested", "no recipe source is configured")
	}
	found, err := s.recipes.FindRecipes(ctx, outbound.RecipeQuery{
		DietType:         req.Profile.DietType,
		Allergens:        req.Allergens,
		FavoriteCuisines: req.Profile.DietFilters.FavoriteCuisines,
		MealTypes:        []nutrition.MealType{nutrition.MealBreakfast, nutrition.MealLunch, nutrition.MealDinner, nutrition.MealSnack},
	})
	if err != nil {
		return errors.NewCatalogUnavailableError("recipe source", err)
	}
	req.Recipes = found.Recipes
	req.DailyRecipes = found.Daily
	return nil
}

func (s *MealPlanService) resolvePipeline(requested inbound.Pipeline) inbound.Pipeline {
	switch requested {
	case inbound.PipelineIngredients, inbound.PipelineRecipes:
		return requested
	}
	if s.recipes != nil {
		return inbound.PipelineRecipes
	}
	return inbound.PipelineIngredients
}

func (s *MealPlanService) builderOptions(cmd inbound.GenerateMealPlanCommand) []planner.Option {
	opts := []planner.Option{
		planner.WithClock(s.now),
		planner.WithIngredientFallback(s.settings.Fallback),
	}
	seed := s.settings.Seed
	if cmd.Seed != nil {
		seed = cmd.Seed
	}
	if seed != nil {
		opts = append(opts, planner.WithSeed(*seed))
	}
	if s.settings.Strategy != "" {
		opts = append(opts, planner.WithStrategy(s.settings.Strategy))
	}
	if s.settings.MacroRatio != (nutrition.MacroRatio{}) {
		opts = append(opts, planner.WithMacroRatio(s.settings.MacroRatio))
	}
	if len(s.settings.MealWeights) > 0 {
		opts = append(opts, planner.WithMealWeights(s.settings.MealWeights))
	}
	if s.settings.VarietyWindow > 0 {
		opts = append(opts, planner.WithVarietyWindow(s.settings.VarietyWindow))
	}
	return opts
}

// mapEngineError converts engine sentinels into application error codes
func mapEngineError(err error) *errors.AppError {
	var slotErr *planner.SlotError
	switch {
	case stderrors.As(err, &slotErr):
		return errors.NewRecipeScalingError(slotErr.RecipeID, err).
			WithMetadata("day", slotErr.Day).
			WithMetadata("slot", slotErr.Slot)
	case stderrors.Is(err, recipe.ErrZeroCalorieRecipe), stderrors.Is(err, recipe.ErrInvalidScalingFactor):
		return errors.NewAppError(errors.CodeRecipeScalingFailed, "Recipe scaling failed", err.Error()).WithCause(err)
	case stderrors.Is(err, nutrition.ErrInvalidInput):
		return errors.NewAppError(errors.CodeInvalidInput, "Invalid input", err.Error()).WithCause(err)
	case stderrors.Is(err, nutrition.ErrInvalidEnum), stderrors.Is(err, nutrition.ErrInvalidGoal):
		return errors.NewAppError(errors.CodeInvalidEnum, "Invalid value", err.Error()).WithCause(err)
	case stderrors.Is(err, nutrition.ErrUnsupportedMacro):
		return errors.NewAppError(errors.CodeUnsupportedMacro, "Unsupported macro", err.Error()).WithCause(err)
	case stderrors.Is(err, nutrition.ErrEmptyResult):
		return errors.NewAppError(errors.CodeEmptyResult, "Nothing to plan", err.Error()).WithCause(err)
	default:
		return errors.Wrap(err, fmt.Sprintf("generate meal plan: %v", err))
	}
}
