package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrInvalidGoal         = errors.New("invalid goal")
	ErrInvalidGlassSize    = errors.New("invalid glass size")
	ErrDegenerateLeafCount = errors.New("degenerate leaf count")
)
