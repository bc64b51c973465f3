package domain

import "errors"

// ErrNotFound is returned when a referenced package, cart item, booking or
// user does not exist, or does not belong to the caller.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned before any write when input violates a field rule.
var ErrValidation = errors.New("validation error")

// ErrConflict covers duplicate registration and mutation of a cancelled booking.
var ErrConflict = errors.New("conflict")

var ErrUnauthorized = errors.New("unauthorized")

var ErrForbidden = errors.New("forbidden")

// ErrUpstreamUnavailable marks a failed call to an external service. It is
// logged by the caller and never reaches the HTTP response.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
