package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Person Errors =====
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrMalformattedID = errors.New("malformatted id")
)
