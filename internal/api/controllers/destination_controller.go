package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// GetRecommendations godoc
// @Summary Get destination recommendations
// @Description Suggest destinations matching the traveler's budget, dates and interests
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body request_models.DestinationRequest true "Traveler preferences"
// @Success 200 {object} response_models.DestinationResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/recommendations [post]
func (d *DestinationController) GetRecommendations(c *gin.Context) {

	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_input", "Invalid destination request")
		return
	}

	result, err := d.destinationService.GetRecommendations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations fetched successfully")
}

func (d *DestinationController) HealthCheck(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "Destination service is running")
}
