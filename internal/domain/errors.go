package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrAccountNotActive = errors.New("account pending approval")

	// ErrAllSourcesFailed is returned by Materialize when every selected source
	// fetcher failed, so callers can tell "no events" from "backend unreachable".
	ErrAllSourcesFailed = errors.New("all event sources failed")
)
