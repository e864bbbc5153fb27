// Package domain defines the core census entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidInput is returned when matrix input is malformed or does not
	// contain exactly nine numbers. Always recoverable by the caller.
	ErrInvalidInput = errors.New("invalid matrix input")

	// ErrMissingColumn is returned when a dataset is missing one or more
	// required columns. Recoverable: reject the upload, fall back to sample data.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidRecord is returned when a dataset row fails validation.
	ErrInvalidRecord = errors.New("invalid record")
)
