package ratelimit_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
)

var Module = fx.Provide(
	provideRateLimitRepo,
	provideRateLimitConfig,
	provideAdmissionService,
)

func provideRateLimitRepo(db *gorm.DB) repositories.RateLimitRepository {
	return repositories.NewRateLimitRepository(db)
}

func provideRateLimitConfig() services.RateLimitConfig {
	return services.RateLimitConfig{
		RequestsPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 10),
		RequestsPerHour:   envInt("RATE_LIMIT_PER_HOUR", 100),
		RetentionHours:    envInt("RATE_LIMIT_RETENTION_HOURS", 24),
	}
}

func provideAdmissionService(rateLimitRepo repositories.RateLimitRepository, config services.RateLimitConfig) services.AdmissionServiceInterface {
	return services.NewAdmissionService(rateLimitRepo, config)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
