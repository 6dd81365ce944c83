package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// SubmitQuestionnaire godoc
// @Summary Submit travel questionnaire
// @Description Generate candidate activities for the selected destination and persist them under a new questionnaire
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.QuestionnaireRequest true "Destination, travel dates and activity preferences"
// @Success 200 {object} response_models.QuestionnaireResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/questionnaire [post]
func (i *ItineraryController) SubmitQuestionnaire(c *gin.Context) {

	var req request_models.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_input", "Invalid questionnaire request")
		return
	}

	result, err := i.itineraryService.SubmitQuestionnaire(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Questionnaire submitted successfully")
}

// GenerateItinerary godoc
// @Summary Generate optimized itinerary
// @Description Build an optimized day-by-day itinerary from a ready questionnaire and the client's activity selection
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateRequest true "Questionnaire ID, selected activities and pacing preferences"
// @Success 200 {object} response_models.GenerateResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {

	var req request_models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid_input", "Invalid generate request")
		return
	}

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

func (i *ItineraryController) HealthCheck(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "Itinerary service is running")
}
