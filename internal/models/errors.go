package models

import "errors"

// Domain-specific errors shared across packages
var (
	// ErrUnknownCategory indicates a role category outside the defined set
	ErrUnknownCategory = errors.New("unknown role category")

	// ErrInvalidHex indicates a malformed hex color code
	ErrInvalidHex = errors.New("invalid hex color code")
)
