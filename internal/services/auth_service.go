package services

import (
	"log"
	"time"

	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/utils"
)

type AuthConfig struct {
	APIKeyHash string // bcrypt hash of the shared api key
	TokenTTL   time.Duration
}

type AuthServiceInterface interface {
	ExchangeAPIKey(apiKey string) (*response_models.TokenResponse, error)
}

type AuthService struct {
	config AuthConfig
}

func NewAuthService(config AuthConfig) AuthServiceInterface {
	if config.TokenTTL <= 0 {
		config.TokenTTL = time.Hour
	}
	return &AuthService{config: config}
}

func (s *AuthService) ExchangeAPIKey(apiKey string) (*response_models.TokenResponse, error) {
	if apiKey == "" || s.config.APIKeyHash == "" {
		return nil, utils.ErrInvalidCredential
	}

	if err := utils.CompareAPIKey(s.config.APIKeyHash, apiKey); err != nil {
		return nil, utils.ErrInvalidCredential
	}

	token, err := utils.CreateToken("travel-client", s.config.TokenTTL)
	if err != nil {
		log.Printf("Token signing failed: %v", err)
		return nil, utils.ErrInvalidCredential
	}

	return &response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.config.TokenTTL.Seconds()),
	}, nil
}
