package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails structural validation
// (missing required field, malformed email, destination too short).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidStartDate is returned by the trip service when the requested
// start date is already in the past at creation time.
var ErrInvalidStartDate = errors.New("invalid trip start date")

// ErrInvalidEndDate is returned by the trip service when the requested end
// date is before the start date.
var ErrInvalidEndDate = errors.New("invalid trip end date")
