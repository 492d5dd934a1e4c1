package handlers

import (
	"errors"
	"net/http"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string   `json:"error" example:"something went wrong"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError maps domain errors onto the HTTP statuses the API promises:
// validation 400, gate/completed 403, unknown 404, auth 401, the rest 500.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Details: verr.Details})
		return
	}

	switch {
	case errors.Is(err, models.ErrRegistrationClosed),
		errors.Is(err, models.ErrQuizInactive),
		errors.Is(err, models.ErrAlreadyCompleted):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
