package handlers

import (
	"net/http"
	"strconv"

	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListParticipants godoc
// @Summary      List all participants
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Participant
// @Router       /api/admin/participants [get]
func (h *AdminHandler) ListParticipants(c *gin.Context) {
	participants, err := h.admin.ListParticipants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

type UpdateParticipantRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
}

// UpdateParticipant godoc
// @Summary      Edit a participant's contact fields
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Participant ID"
// @Param        request body UpdateParticipantRequest true "Fields"
// @Success      200 {object} models.Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/participants/{id} [put]
func (h *AdminHandler) UpdateParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	participant, err := h.admin.UpdateParticipant(id, services.ParticipantUpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Institution: req.Institution,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// DeleteParticipant godoc
// @Summary      Delete a participant and their submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Participant ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/participants/{id} [delete]
func (h *AdminHandler) DeleteParticipant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteParticipant(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "participant deleted"})
}

// ListSchools godoc
// @Summary      List all schools with members
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.School
// @Router       /api/admin/schools [get]
func (h *AdminHandler) ListSchools(c *gin.Context) {
	schools, err := h.admin.ListSchools()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

type UpdateSchoolRequest struct {
	Name string `json:"name" binding:"required"`
	Team string `json:"team"`
}

// UpdateSchool godoc
// @Summary      Rename a school or change its team tag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "School ID"
// @Param        request body UpdateSchoolRequest true "Fields"
// @Success      200 {object} models.School
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/schools/{id} [put]
func (h *AdminHandler) UpdateSchool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	school, err := h.admin.UpdateSchool(id, services.SchoolUpdateInput{Name: req.Name, Team: req.Team})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// DeleteSchool godoc
// @Summary      Delete a school, its members and their submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "School ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/schools/{id} [delete]
func (h *AdminHandler) DeleteSchool(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteSchool(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "school deleted"})
}

type QuestionRequest struct {
	Text          string            `json:"text" binding:"required"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectAnswer string            `json:"correct_answer" binding:"required"`
	TimeLimit     int               `json:"time_limit" binding:"required"`
	Marks         int               `json:"marks" binding:"required"`
	OrderIndex    int               `json:"order_index"`
	Mode          string            `json:"mode" binding:"required"`
	Subject       string            `json:"subject"`
}

func (r QuestionRequest) toInput() services.QuestionInput {
	return services.QuestionInput{
		Text:          r.Text,
		Options:       r.Options,
		CorrectAnswer: r.CorrectAnswer,
		TimeLimit:     r.TimeLimit,
		Marks:         r.Marks,
		OrderIndex:    r.OrderIndex,
		Mode:          r.Mode,
		Subject:       r.Subject,
	}
}

// ListQuestions godoc
// @Summary      List all questions, correct answers included
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Question
// @Router       /api/admin/questions [get]
func (h *AdminHandler) ListQuestions(c *gin.Context) {
	questions, err := h.admin.ListQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/questions [post]
func (h *AdminHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	question, err := h.admin.CreateQuestion(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} models.Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [put]
func (h *AdminHandler) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	question, err := h.admin.UpdateQuestion(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [delete]
func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}

// ListSubmissions godoc
// @Summary      List all quiz submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.QuizSubmission
// @Router       /api/admin/quiz-submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.admin.ListSubmissions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// DeleteSubmission godoc
// @Summary      Delete a submission and let the participant retake the quiz
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/quiz-submissions/{id} [delete]
func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteSubmission(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "submission deleted"})
}

// GetStats godoc
// @Summary      Aggregate counts and average score
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.Stats
// @Router       /api/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.admin.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
