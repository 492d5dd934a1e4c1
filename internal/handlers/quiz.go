package handlers

import (
	"net/http"

	"github.com/YSWikcramatantri/Official-Website/internal/models"
	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

type VerifyRequest struct {
	Passcode string `json:"passcode" binding:"required" example:"K7P2QX"`
}

// QuestionView is the participant-facing shape of a question. The correct
// answer never leaves the server before scoring.
type QuestionView struct {
	ID         uint              `json:"id"`
	Text       string            `json:"text"`
	Options    datatypes.JSONMap `json:"options"`
	TimeLimit  int               `json:"time_limit"`
	Marks      int               `json:"marks"`
	OrderIndex int               `json:"order_index"`
}

func toQuestionViews(questions []models.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			TimeLimit:  q.TimeLimit,
			Marks:      q.Marks,
			OrderIndex: q.OrderIndex,
		})
	}
	return views
}

type SubmissionRequest struct {
	ParticipantID uint              `json:"participant_id" binding:"required" example:"1"`
	Answers       map[string]string `json:"answers"`
	TimeTaken     int               `json:"time_taken" example:"420"`
}

// Verify godoc
// @Summary      Verify a quiz passcode
// @Description  Resolves a passcode to its participant if the quiz is open to them
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body VerifyRequest true "Passcode"
// @Success      200 {object} models.Participant
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/participants/verify [post]
func (h *QuizHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.quiz.VerifyPasscode(req.Passcode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participant)
}

// GetQuestions godoc
// @Summary      Fetch the eligible question set
// @Description  Returns the questions for the participant behind the passcode, correct answers redacted
// @Tags         quiz
// @Produce      json
// @Param        passcode query string true "Participant passcode"
// @Success      200 {array} QuestionView
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions [get]
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	_, questions, err := h.quiz.QuestionsForPasscode(c.Query("passcode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuestionViews(questions))
}

// Submit godoc
// @Summary      Submit quiz answers
// @Description  Scores the answers server-side and marks the participant completed
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body SubmissionRequest true "Answers keyed by question id"
// @Success      201 {object} models.QuizSubmission
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quiz-submissions [post]
func (h *QuizHandler) Submit(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := h.quiz.Submit(services.SubmissionInput{
		ParticipantID: req.ParticipantID,
		Answers:       req.Answers,
		TimeTaken:     req.TimeTaken,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}
