package services

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"tripcraft/internal/repositories"
	"tripcraft/pkg/utils"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RetentionHours    int
}

type AdmissionServiceInterface interface {
	// Admit returns nil when the request may proceed, a
	// *utils.RateLimitExceededError when blocked by policy, and
	// utils.ErrDatabaseError when the store could not be consulted.
	// A storage failure is never reported as an admission decision.
	Admit(ctx context.Context, clientIP string, now time.Time) error
}

type AdmissionService struct {
	rateLimitRepo repositories.RateLimitRepository
	config        RateLimitConfig
	cleanupDraw   func() int // uniform in [1,100]
}

func NewAdmissionService(rateLimitRepo repositories.RateLimitRepository, config RateLimitConfig) AdmissionServiceInterface {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 10
	}
	if config.RequestsPerHour <= 0 {
		config.RequestsPerHour = 100
	}
	if config.RetentionHours <= 0 {
		config.RetentionHours = 24
	}
	return &AdmissionService{
		rateLimitRepo: rateLimitRepo,
		config:        config,
		cleanupDraw:   func() int { return rand.IntN(100) + 1 },
	}
}

// Admit counts the caller's requests over the sliding minute window, then
// the sliding hour window, and records the request when both are under
// their limits. Count-then-insert is not atomic: a concurrent burst from
// one client can exceed a limit by the number of requests in flight.
func (s *AdmissionService) Admit(ctx context.Context, clientIP string, now time.Time) error {

	minuteCount, err := s.rateLimitRepo.CountRequestsSince(ctx, clientIP, now.Add(-time.Minute))
	if err != nil {
		log.Printf("Rate limit minute count failed for %s: %v", clientIP, err)
		return utils.ErrDatabaseError
	}
	if minuteCount >= int64(s.config.RequestsPerMinute) {
		return &utils.RateLimitExceededError{
			LimitType:  "minute",
			Limit:      s.config.RequestsPerMinute,
			RetryAfter: 60,
			ClientIP:   clientIP,
		}
	}

	hourCount, err := s.rateLimitRepo.CountRequestsSince(ctx, clientIP, now.Add(-time.Hour))
	if err != nil {
		log.Printf("Rate limit hour count failed for %s: %v", clientIP, err)
		return utils.ErrDatabaseError
	}
	if hourCount >= int64(s.config.RequestsPerHour) {
		return &utils.RateLimitExceededError{
			LimitType:  "hour",
			Limit:      s.config.RequestsPerHour,
			RetryAfter: 3600,
			ClientIP:   clientIP,
		}
	}

	if err := s.rateLimitRepo.RecordRequest(ctx, clientIP, now); err != nil {
		log.Printf("Rate limit record failed for %s: %v", clientIP, err)
		return utils.ErrDatabaseError
	}

	// Amortized cleanup instead of a background sweeper. A failed cleanup
	// does not affect the admission decision already made.
	if s.cleanupDraw() == 1 {
		cutoff := now.Add(-time.Duration(s.config.RetentionHours) * time.Hour)
		deleted, err := s.rateLimitRepo.DeleteEntriesBefore(ctx, cutoff)
		if err != nil {
			log.Printf("Rate limit cleanup failed: %v", err)
		} else {
			log.Printf("Cleaned up %d old rate limit entries", deleted)
		}
	}

	return nil
}
