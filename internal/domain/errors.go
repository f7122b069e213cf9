package domain

import "errors"

// ErrInvalidInput indicates a survey request failed the basic presence
// and positivity checks. Callers test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
