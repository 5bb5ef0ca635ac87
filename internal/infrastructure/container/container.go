// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/application/allergen"
	"github.com/alchemorsel/mealplan/internal/application/mealplan"
	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/infrastructure/catalog"
	"github.com/alchemorsel/mealplan/internal/infrastructure/config"
	"github.com/alchemorsel/mealplan/internal/infrastructure/monitoring"
	"github.com/alchemorsel/mealplan/internal/ports/inbound"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
	"github.com/alchemorsel/mealplan/pkg/healthcheck"
	"github.com/alchemorsel/mealplan/pkg/logger"
)

// Module provides every dependency of the meal plan use case for an
// already loaded configuration
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),

		// Infrastructure modules
		LoggerModule,
		CatalogModule,
		MonitoringModule,

		// Service modules
		ServiceModule,
		HealthModule,

		// Lifecycle hooks
		LifecycleModule,
	)
}

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CatalogModule provides the file-backed ingredient catalog and recipe
// source. An unset path yields a nil port, which disables that pipeline.
var CatalogModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.IngredientCatalog {
		if cfg.Catalog.IngredientsPath == "" {
			return nil
		}
		return catalog.NewFileIngredientCatalog(cfg.Catalog.IngredientsPath, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.RecipeSource {
		if cfg.Catalog.RecipesPath == "" {
			return nil
		}
		return catalog.NewFileRecipeSource(cfg.Catalog.RecipesPath, log)
	},
)

// MonitoringModule provides metrics and tracing
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(cfg *config.Config, collector *monitoring.MetricsCollector) outbound.Metrics {
		if !cfg.Monitoring.EnableMetrics {
			return monitoring.NopMetrics{}
		}
		return collector
	},
	func(cfg *config.Config, log *zap.Logger) (*monitoring.TracingProvider, error) {
		return monitoring.NewTracingProvider(monitoring.TracingConfig{
			ServiceName:    cfg.App.Name,
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Environment,
			SamplingRate:   cfg.Monitoring.SamplingRate,
			Enabled:        cfg.Monitoring.EnableTracing,
			Output:         os.Stderr,
		}, log)
	},
	func(tp *monitoring.TracingProvider) trace.Tracer {
		return tp.Tracer()
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	allergen.NewMatcher,
	func(m *allergen.Matcher) outbound.AllergenValidator { return m },
	NewSettings,
	mealplan.NewMealPlanService,
)

// HealthModule provides readiness checks for the configured data sources
var HealthModule = fx.Provide(
	func(
		cfg *config.Config,
		ingredients outbound.IngredientCatalog,
		recipes outbound.RecipeSource,
		log *zap.Logger,
	) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)
		if ingredients != nil {
			hc.Register("ingredient_catalog", catalog.NewCatalogChecker(ingredients))
		}
		if recipes != nil {
			hc.Register("recipe_source", catalog.NewRecipeSourceChecker(recipes))
		}
		return hc
	},
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// NewSettings derives the engine settings from configuration
func NewSettings(cfg *config.Config) (mealplan.Settings, error) {
	strategy, err := recipeplan.ParseStrategy(cfg.Engine.DistributionStrategy)
	if err != nil {
		return mealplan.Settings{}, err
	}

	settings := mealplan.Settings{
		Strategy:      strategy,
		MacroRatio:    cfg.Engine.MacroRatio,
		MealWeights:   cfg.Engine.MealWeights,
		VarietyWindow: time.Duration(cfg.Engine.VarietyWindowDays) * 24 * time.Hour,
		Fallback:      cfg.Engine.IngredientFallback,
	}
	if cfg.Engine.Seed != 0 {
		seed := cfg.Engine.Seed
		settings.Seed = &seed
	}
	return settings, nil
}

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	collector *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	_ inbound.MealPlanService,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Debug("Starting meal plan engine",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.Bool("ingredient_catalog", cfg.Catalog.IngredientsPath != ""),
				zap.Bool("recipe_source", cfg.Catalog.RecipesPath != ""),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := tracing.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown tracing", zap.Error(err))
			}

			if cfg.Monitoring.EnableMetrics && cfg.Monitoring.MetricsPath != "" {
				if err := collector.WriteTextfile(cfg.Monitoring.MetricsPath); err != nil {
					log.Error("Failed to write metrics", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
