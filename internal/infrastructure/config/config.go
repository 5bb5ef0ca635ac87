// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/alchemorsel/mealplan/internal/application/recipeplan"
	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// EngineConfig tunes plan generation
type EngineConfig struct {
	// Seed makes generation reproducible; 0 draws a fresh seed per plan
	Seed                 uint64               `mapstructure:"seed"`
	MacroRatio           nutrition.MacroRatio `mapstructure:"macro_ratio"`
	MealWeights          map[int][]float64    `mapstructure:"meal_weights"`
	DistributionStrategy string               `mapstructure:"distribution_strategy"`
	VarietyWindowDays    int                  `mapstructure:"variety_window_days"`
	IngredientFallback   bool                 `mapstructure:"ingredient_fallback"`
}

// CatalogConfig locates the ingredient catalog and recipe pool files
type CatalogConfig struct {
	IngredientsPath string `mapstructure:"ingredients_path"`
	RecipesPath     string `mapstructure:"recipes_path"`
}

// MonitoringConfig contains monitoring configuration
type MonitoringConfig struct {
	EnableMetrics bool    `mapstructure:"enable_metrics"`
	EnableTracing bool    `mapstructure:"enable_tracing"`
	SamplingRate  float64 `mapstructure:"sampling_rate"`
	MetricsPath   string  `mapstructure:"metrics_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mealplan")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/mealplan")
	}

	// Enable environment variable override
	v.SetEnvPrefix("MEALPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "mealplan")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Engine defaults
	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.macro_ratio.protein", nutrition.DefaultMacroRatio.Protein)
	v.SetDefault("engine.macro_ratio.carbs", nutrition.DefaultMacroRatio.Carbs)
	v.SetDefault("engine.macro_ratio.fat", nutrition.DefaultMacroRatio.Fat)
	v.SetDefault("engine.distribution_strategy", string(recipeplan.StrategyBalanced))
	v.SetDefault("engine.variety_window_days", 14)
	v.SetDefault("engine.ingredient_fallback", true)

	// Catalog defaults
	v.SetDefault("catalog.ingredients_path", "")
	v.SetDefault("catalog.recipes_path", "")

	// Monitoring defaults
	v.SetDefault("monitoring.enable_metrics", false)
	v.SetDefault("monitoring.enable_tracing", false)
	v.SetDefault("monitoring.sampling_rate", 1.0)
	v.SetDefault("monitoring.metrics_path", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if math.Abs(c.Engine.MacroRatio.Sum()-1) > 1e-6 {
		return fmt.Errorf("engine.macro_ratio must sum to 1, got %v", c.Engine.MacroRatio.Sum())
	}

	if _, err := recipeplan.ParseStrategy(c.Engine.DistributionStrategy); err != nil {
		return fmt.Errorf("engine.distribution_strategy: %w", err)
	}

	if c.Engine.VarietyWindowDays < 1 {
		return fmt.Errorf("engine.variety_window_days must be at least 1")
	}

	for count, weights := range c.Engine.MealWeights {
		if count < 1 || count > 6 {
			return fmt.Errorf("engine.meal_weights: meal count %d out of range 1-6", count)
		}
		if len(weights) != count {
			return fmt.Errorf("engine.meal_weights[%d]: expected %d weights, got %d", count, count, len(weights))
		}
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if math.Abs(sum-100) > 1e-6 {
			return fmt.Errorf("engine.meal_weights[%d] must sum to 100, got %v", count, sum)
		}
	}

	if c.Monitoring.SamplingRate < 0 || c.Monitoring.SamplingRate > 1 {
		return fmt.Errorf("monitoring.sampling_rate must be between 0 and 1")
	}

	return nil
}
