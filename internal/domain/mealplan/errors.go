package mealplan

import "errors"

var (
	ErrWrongDayCount = errors.New("week plan must contain exactly 7 days")
)
