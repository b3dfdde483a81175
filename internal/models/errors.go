package models

import "errors"

// Domain-specific errors for detail lookups
var (
	// ErrNotFound indicates that no detail row matched the requested ID
	ErrNotFound = errors.New("detail not found")

	// ErrInvalidID indicates an ID that can never have been assigned by the store
	ErrInvalidID = errors.New("invalid detail ID")
)
