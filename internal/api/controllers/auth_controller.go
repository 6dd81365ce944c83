package controllers

import (
	"github.com/gin-gonic/gin"

	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ExchangeToken godoc
// @Summary Exchange api key for access token
// @Description Validate the x-api-key header and issue a short-lived bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token [post]
func (a *AuthController) ExchangeToken(c *gin.Context) {

	apiKey := c.GetHeader("X-API-Key")

	result, err := a.authService.ExchangeAPIKey(apiKey)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Token issued successfully")
}
