// Package services defines the business logic for vehicle inventory,
// contact messages, and admin authentication. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrVehicleNotFound indicates that the requested vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrMissingFields is returned when a create or update payload omits a
	// required descriptive field. It is wrapped with the field name.
	ErrMissingFields = errors.New("missing required field")

	// ErrNoImages is returned when a vehicle would be persisted with an
	// empty image set. Every listing needs at least one image: the first
	// element doubles as the cover image.
	ErrNoImages = errors.New("at least one image is required")

	// ErrEmptyPatch is returned when an update payload contains no fields.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrInvalidPassword is returned by Login when the supplied password
	// does not match the configured admin password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidToken is returned when a bearer token fails verification
	// (bad signature, malformed, or expired).
	ErrInvalidToken = errors.New("invalid token")

	// ErrAuthDisabled is returned when the admin API is used without an
	// admin password configured.
	ErrAuthDisabled = errors.New("admin authentication is not configured")
)
