package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, kind string, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Error:   kind,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto HTTP responses with a stable
// machine-readable kind. Operator detail goes to the log, never the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "invalid_input", "Invalid request data")
	case errors.Is(err, ErrInvalidCredential):
		RespondError(c, http.StatusUnauthorized, "credential_invalid", "Authentication failed")
	case errors.Is(err, ErrQuestionnaireNotFound):
		RespondError(c, http.StatusNotFound, "session_not_found", "Questionnaire not found")
	case errors.Is(err, ErrQuestionnaireNotReady):
		RespondError(c, http.StatusConflict, "session_not_ready", "Questionnaire is not ready for optimization")
	case errors.Is(err, ErrMissingTravelWindow):
		RespondError(c, http.StatusBadRequest, "missing_travel_window", "Travel dates are required before optimization")
	case errors.Is(err, ErrTripTooShort):
		RespondError(c, http.StatusBadRequest, "trip_too_short", "Trip must be at least one day long")
	case errors.Is(err, ErrTripTooLong):
		RespondError(c, http.StatusBadRequest, "trip_too_long", "Trip exceeds the maximum supported length")
	case errors.Is(err, ErrNoActivitiesFound):
		RespondError(c, http.StatusNotFound, "no_candidates_found", "No activities stored for this questionnaire")
	case errors.Is(err, ErrNoSelectedActivities):
		RespondError(c, http.StatusBadRequest, "no_selected_activities_found", "None of the selected activities match this questionnaire")
	case errors.Is(err, ErrGenerationUnavailable):
		log.Printf("Generation backend unavailable: %v", err)
		RespondError(c, http.StatusBadGateway, "generation_unavailable", "Content generation is temporarily unavailable")
	case errors.Is(err, ErrTruncatedResponse):
		log.Printf("Generated content truncated: %v", err)
		RespondError(c, http.StatusBadGateway, "truncated_response", "Generated content was cut off, please retry")
	case errors.Is(err, ErrInvalidGeneratedContent):
		log.Printf("Generated content unparseable: %v", err)
		RespondError(c, http.StatusBadGateway, "invalid_generated_content", "Generated content had an unexpected format")
	case errors.Is(err, ErrPersistenceFailure):
		log.Printf("Persistence failure: %v", err)
		RespondError(c, http.StatusInternalServerError, "persistence_failure", "Failed to save questionnaire data")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "database_error", "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
