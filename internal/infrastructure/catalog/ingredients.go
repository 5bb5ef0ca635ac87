// Package catalog provides file-backed adapters for the ingredient catalog
// and the recipe source. Files are YAML; JSON documents parse as well.
package catalog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alchemorsel/mealplan/internal/domain/ingredient"
	"github.com/alchemorsel/mealplan/internal/ports/outbound"
)

// ingredientFile is the on-disk layout of an ingredient catalog
type ingredientFile struct {
	Ingredients []ingredient.Ingredient `yaml:"ingredients"`
}

// FileIngredientCatalog serves a validated ingredient catalog read from disk.
// The parsed catalog is cached until the file's modification time changes.
type FileIngredientCatalog struct {
	path   string
	logger *zap.Logger

	mutex    sync.RWMutex
	cached   []ingredient.Ingredient
	loadedAt time.Time
	modTime  time.Time
}

// NewFileIngredientCatalog creates a catalog backed by the file at path
func NewFileIngredientCatalog(path string, logger *zap.Logger) *FileIngredientCatalog {
	return &FileIngredientCatalog{
		path:   path,
		logger: logger.Named("ingredient-catalog"),
	}
}

var _ outbound.IngredientCatalog = (*FileIngredientCatalog)(nil)

// Ingredients returns a copy of the catalog, reloading it if the file changed
func (c *FileIngredientCatalog) Ingredients(ctx context.Context) ([]ingredient.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(c.path)
	if err != nil {
		return nil, fmt.Errorf("stat ingredient catalog: %w", err)
	}

	c.mutex.RLock()
	if c.cached != nil && info.ModTime().Equal(c.modTime) {
		out := append([]ingredient.Ingredient(nil), c.cached...)
		c.mutex.RUnlock()
		return out, nil
	}
	c.mutex.RUnlock()

	loaded, err := c.load()
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.cached = loaded
	c.modTime = info.ModTime()
	c.loadedAt = time.Now()
	c.mutex.Unlock()

	c.logger.Info("Ingredient catalog loaded",
		zap.String("path", c.path),
		zap.Int("ingredients", len(loaded)),
	)

	return append([]ingredient.Ingredient(nil), loaded...), nil
}

// LoadedAt reports when the catalog was last read from disk
func (c *FileIngredientCatalog) LoadedAt() time.Time {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.loadedAt
}

func (c *FileIngredientCatalog) load() ([]ingredient.Ingredient, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read ingredient catalog: %w", err)
	}

	var file ingredientFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse ingredient catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Ingredients))
	for _, ing := range file.Ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[ing.ID]; dup {
			return nil, fmt.Errorf("duplicate ingredient id %q", ing.ID)
		}
		seen[ing.ID] = struct{}{}
	}

	return file.Ingredients, nil
}
