// Package services defines the business logic for feedback intake, aggregate
// statistics, and AI summaries. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes should be performed at the
// handler layer.
package services

import "errors"

var (
	// ErrEmptyMessage is returned when a submission contains no message text
	// after trimming whitespace.
	ErrEmptyMessage = errors.New("message is required")

	// ErrMessageTooLong is returned when a submission exceeds the configured
	// maximum message length.
	ErrMessageTooLong = errors.New("message too long")

	// ErrFeedbackNotFound indicates that the requested feedback record does
	// not exist.
	ErrFeedbackNotFound = errors.New("feedback not found")
)
