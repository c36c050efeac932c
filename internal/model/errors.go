package model

import "errors"

var (
	// Layout related errors
	ErrLayoutNotFound = errors.New("layout not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
