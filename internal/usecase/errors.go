package usecase

import "errors"

// ErrValidation marks a request rejected for missing or invalid input.
var ErrValidation = errors.New("validation failed")
