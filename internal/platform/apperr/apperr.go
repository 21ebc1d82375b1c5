package apperr

import "errors"

var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound covers both a missing record and one owned by another user,
	// so existence is never leaked.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrVersionConflict is returned when a version number for an essay
	// already exists; the caller should re-read and retry.
	ErrVersionConflict = errors.New("version conflict")
	// ErrFeedbackGeneration wraps upstream model or network failures.
	ErrFeedbackGeneration = errors.New("feedback generation failed")
	// ErrDataIntegrity marks a broken storage invariant, e.g. an essay with
	// zero versions. Fatal for the request; never silently repaired.
	ErrDataIntegrity = errors.New("data integrity violation")
)
