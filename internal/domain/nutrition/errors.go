package nutrition

import "errors"

// Domain errors for plan generation

var (
	// Fatal input errors, abort the whole build
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEnum  = errors.New("invalid enum value")
	ErrInvalidGoal  = errors.New("diet goal not supported for calorie adjustment")

	// Quantity calculation was given a macro outside the known set
	ErrUnsupportedMacro = errors.New("unsupported macro")

	// Nothing matched a slot; recovered locally by skipping the slot
	ErrEmptyResult = errors.New("no matching result")
)
