package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidCredential       = errors.New("invalid credential")
	ErrQuestionnaireNotFound   = errors.New("questionnaire not found")
	ErrQuestionnaireNotReady   = errors.New("questionnaire not ready for optimization")
	ErrMissingTravelWindow     = errors.New("travel window is missing")
	ErrTripTooShort            = errors.New("trip is shorter than one day")
	ErrTripTooLong             = errors.New("trip exceeds the maximum supported length")
	ErrNoActivitiesFound       = errors.New("no activities found for questionnaire")
	ErrNoSelectedActivities    = errors.New("no selected activities matched the questionnaire")
	ErrGenerationUnavailable   = errors.New("content generator unavailable")
	ErrInvalidGeneratedContent = errors.New("generated content has an invalid format")
	ErrTruncatedResponse       = errors.New("generated content appears truncated")
	ErrPersistenceFailure      = errors.New("failed to persist questionnaire data")
	ErrDatabaseError           = errors.New("database error")
)

// RateLimitExceededError is a policy rejection. It is deliberately a
// distinct type from ErrDatabaseError: a storage failure during an
// admission check must never read as "not rate limited" or as a rejection.
type RateLimitExceededError struct {
	LimitType  string // "minute" or "hour"
	Limit      int
	RetryAfter int // seconds
	ClientIP   string
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %d requests per %s", e.Limit, e.LimitType)
}
