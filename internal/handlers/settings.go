package handlers

import (
	"net/http"

	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type UpdateSettingsRequest struct {
	SoloRegistrationOpen   *bool `json:"solo_registration_open" binding:"required"`
	SchoolRegistrationOpen *bool `json:"school_registration_open" binding:"required"`
	QuizActive             *bool `json:"quiz_active" binding:"required"`
}

// GetSettings godoc
// @Summary      Get the feature flags
// @Tags         settings
// @Produce      json
// @Success      200 {object} models.SystemSettings
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update the feature flags
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateSettingsRequest true "Flags"
// @Success      200 {object} models.SystemSettings
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.settings.Update(services.SettingsInput{
		SoloRegistrationOpen:   *req.SoloRegistrationOpen,
		SchoolRegistrationOpen: *req.SchoolRegistrationOpen,
		QuizActive:             *req.QuizActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
