// Package allergen decides whether free-text ingredient names contain an
// allergen. Matching is deliberately tolerant of false positives: a recipe
// with any suspicious ingredient is rejected.
package allergen

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alchemorsel/mealplan/internal/domain/nutrition"
	"github.com/alchemorsel/mealplan/internal/domain/recipe"
	"go.uber.org/zap"
)

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	whitespace    = regexp.MustCompile(`\s+`)
)

type aliasPattern struct {
	term    string
	pattern *regexp.Regexp
}

// Matcher checks ingredient names against the allergen alias table
type Matcher struct {
	patterns map[nutrition.Allergen][]aliasPattern
	logger   *zap.Logger
}

// NewMatcher compiles the alias table
func NewMatcher(logger *zap.Logger) *Matcher {
	patterns := make(map[nutrition.Allergen][]aliasPattern, len(aliases))
	for a, terms := range aliases {
		compiled := make([]aliasPattern, 0, len(terms))
		for _, term := range terms {
			compiled = append(compiled, aliasPattern{term: term, pattern: wordPattern(term)})
		}
		patterns[a] = compiled
	}
	return &Matcher{
		patterns: patterns,
		logger:   logger.Named("allergen-matcher"),
	}
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Preprocess normalizes an ingredient line: lowercase, parenthetical asides
// removed, everything after the first comma dropped, whitespace collapsed
func Preprocess(name string) string {
	s := strings.ToLower(name)
	s = parenthetical.ReplaceAllString(s, " ")
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsWordMatch reports whether term appears in text as a whole word, or
// equals it exactly
func IsWordMatch(text, term string) bool {
	if text == term {
		return true
	}
	return wordPattern(term).MatchString(text)
}

// IngredientContainsAllergen reports whether any alias of the allergen
// matches the preprocessed ingredient name
func (m *Matcher) IngredientContainsAllergen(name string, a nutrition.Allergen) bool {
	text := Preprocess(name)
	for _, alias := range m.patterns[a] {
		if text == alias.term || alias.pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// MatchedAllergens returns every allergen from the list found in the name
func (m *Matcher) MatchedAllergens(name string, allergens []nutrition.Allergen) []nutrition.Allergen {
	var found []nutrition.Allergen
	for _, a := range allergens {
		if m.IngredientContainsAllergen(name, a) {
			found = append(found, a)
		}
	}
	return found
}

// RecipeContainsAllergen reports whether any ingredient of the recipe
// matches any of the allergens
func (m *Matcher) RecipeContainsAllergen(r recipe.Recipe, allergens []nutrition.Allergen) bool {
	for _, ing := range r.Ingredients {
		if len(m.MatchedAllergens(ing.Name, allergens)) > 0 {
			return true
		}
	}
	return false
}

// FilterRecipes drops every recipe that contains an excluded allergen
func (m *Matcher) FilterRecipes(recipes []recipe.Recipe, allergens []nutrition.Allergen) []recipe.Recipe {
	if len(allergens) == 0 {
		return recipes
	}
	safe := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if m.RecipeContainsAllergen(r, allergens) {
			m.logger.Debug("Rejected recipe for allergen",
				zap.String("recipe_id", r.ID),
				zap.String("title", r.Title),
			)
			continue
		}
		safe = append(safe, r)
	}
	return safe
}

// SupportedAllergens lists the allergen names the matcher understands
func (m *Matcher) SupportedAllergens() []string {
	names := make([]string, 0, len(nutrition.Allergens))
	for _, a := range nutrition.Allergens {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

// IsValidAllergen reports whether the string names a known allergen
func (m *Matcher) IsValidAllergen(name string) bool {
	return nutrition.Allergen(normalizeName(name)).Valid()
}

// ParseAllergens converts user strings to allergens and returns the strings
// that were not recognized. Unrecognized entries never block generation.
func (m *Matcher) ParseAllergens(names []string) ([]nutrition.Allergen, []string) {
	var (
		known   []nutrition.Allergen
		unknown []string
		seen    = make(map[nutrition.Allergen]bool)
	)
	for _, name := range names {
		a := nutrition.Allergen(normalizeName(name))
		if !a.Valid() {
			unknown = append(unknown, name)
			continue
		}
		if !seen[a] {
			seen[a] = true
			known = append(known, a)
		}
	}
	return known, unknown
}

func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
