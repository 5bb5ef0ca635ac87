package recipe

import "errors"

// Domain errors for recipe scaling

var (
	ErrZeroCalorieRecipe    = errors.New("recipe has no calories to scale from")
	ErrInvalidScalingFactor = errors.New("scaling factor must be greater than 0")
	ErrInvalidServings      = errors.New("servings must be greater than 0")
	ErrNoIngredients        = errors.New("recipe must have at least one ingredient")
)
