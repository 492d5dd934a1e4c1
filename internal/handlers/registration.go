package handlers

import (
	"net/http"

	"github.com/YSWikcramatantri/Official-Website/internal/models"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registration *services.RegistrationService
}

func NewRegistrationHandler(registration *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

type SoloRegistrationRequest struct {
	Name        string `json:"name" binding:"required" example:"Ava"`
	Email       string `json:"email" example:"ava@example.com"`
	Phone       string `json:"phone" example:"+94771234567"`
	Institution string `json:"institution" example:"Royal College"`
}

type SchoolMemberRequest struct {
	Name     string `json:"name" binding:"required" example:"Ben"`
	Email    string `json:"email" example:"ben@example.com"`
	Phone    string `json:"phone" example:"+94771234568"`
	Subject  string `json:"subject" binding:"required" example:"Astrophysics"`
	IsLeader bool   `json:"is_leader" example:"true"`
}

type SchoolRegistrationRequest struct {
	SchoolName string                `json:"school_name" binding:"required" example:"Lincoln High"`
	Team       string                `json:"team" example:"A"`
	Members    []SchoolMemberRequest `json:"members" binding:"required"`
}

type SchoolRegistrationResponse struct {
	School  models.School        `json:"school"`
	Members []models.Participant `json:"members"`
}

// RegisterSolo godoc
// @Summary      Register a solo participant
// @Description  Creates a participant with a fresh 6-character passcode
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body SoloRegistrationRequest true "Registration data"
// @Success      201 {object} models.Participant
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/participants [post]
func (h *RegistrationHandler) RegisterSolo(c *gin.Context) {
	var req SoloRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.registration.RegisterSolo(services.SoloRegistrationInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Institution: req.Institution,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// RegisterSchool godoc
// @Summary      Register a school team
// @Description  Creates a school and its five members in one transaction
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        request body SchoolRegistrationRequest true "Team data"
// @Success      201 {object} SchoolRegistrationResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/schools/register [post]
func (h *RegistrationHandler) RegisterSchool(c *gin.Context) {
	var req SchoolRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	input := services.SchoolRegistrationInput{
		SchoolName: req.SchoolName,
		Team:       req.Team,
		Members:    make([]services.SchoolMemberInput, 0, len(req.Members)),
	}
	for _, m := range req.Members {
		input.Members = append(input.Members, services.SchoolMemberInput{
			Name:     m.Name,
			Email:    m.Email,
			Phone:    m.Phone,
			Subject:  m.Subject,
			IsLeader: m.IsLeader,
		})
	}

	school, members, err := h.registration.RegisterSchool(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SchoolRegistrationResponse{School: *school, Members: members})
}
