package auth_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripcraft/internal/services"
)

var Module = fx.Provide(provideAuthConfig, provideAuthService)

func provideAuthConfig() services.AuthConfig {
	ttl := time.Hour
	if raw := os.Getenv("TOKEN_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	return services.AuthConfig{
		APIKeyHash: os.Getenv("API_KEY_HASH"),
		TokenTTL:   ttl,
	}
}

func provideAuthService(config services.AuthConfig) services.AuthServiceInterface {
	return services.NewAuthService(config)
}
