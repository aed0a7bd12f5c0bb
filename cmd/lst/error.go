package main

import "errors"

var (
	// ErrUnknownSort occurs when a sort mode is not known.
	ErrUnknownSort = errors.New("unknown sort mode")

	// ErrUnknownFormat occurs when an output format is not known.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownValidation occurs when a validation mode is not known.
	ErrUnknownValidation = errors.New("unknown validation mode")
)
