package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mealplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: mealplan\n"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, uint64(0), cfg.Engine.Seed)
	assert.InDelta(t, 0.3, cfg.Engine.MacroRatio.Protein, 1e-9)
	assert.InDelta(t, 0.4, cfg.Engine.MacroRatio.Carbs, 1e-9)
	assert.Equal(t, "balanced", cfg.Engine.DistributionStrategy)
	assert.Equal(t, 14, cfg.Engine.VarietyWindowDays)
	assert.True(t, cfg.Engine.IngredientFallback)
	assert.False(t, cfg.Monitoring.EnableMetrics)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
app:
  environment: production
engine:
  seed: 42
  distribution_strategy: preference
  macro_ratio:
    protein: 0.4
    carbs: 0.3
    fat: 0.3
  meal_weights:
    3: [25, 35, 40]
catalog:
  ingredients_path: /data/ingredients.yaml
monitoring:
  enable_metrics: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, uint64(42), cfg.Engine.Seed)
	assert.Equal(t, "preference", cfg.Engine.DistributionStrategy)
	assert.Equal(t, []float64{25, 35, 40}, cfg.Engine.MealWeights[3])
	assert.Equal(t, "/data/ingredients.yaml", cfg.Catalog.IngredientsPath)
	assert.True(t, cfg.Monitoring.EnableMetrics)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("MEALPLAN_ENGINE_SEED", "7")
	t.Setenv("MEALPLAN_APP_LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, "engine:\n  seed: 1\n"))

	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Engine.Seed)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"ratio":    "engine:\n  macro_ratio:\n    protein: 0.5\n",
		"strategy": "engine:\n  distribution_strategy: greedy\n",
		"weights":  "engine:\n  meal_weights:\n    2: [50, 40]\n",
		"window":   "engine:\n  variety_window_days: 0\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}
