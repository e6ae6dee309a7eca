// Package usecase implements the business logic for the submissions feature.
package usecase

import "errors"

var (
	// ErrDuplicateSubmission is returned when the same (symbol, name) pair
	// was already submitted within the current month.
	ErrDuplicateSubmission = errors.New("submission already exists")

	// ErrStorage is returned when the persistence layer fails.
	// The usecase does not retry; retry policy belongs to the caller.
	ErrStorage = errors.New("submission storage failure")
)
