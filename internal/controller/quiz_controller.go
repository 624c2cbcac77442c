package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// Play godoc
// @Summary Get the playable snapshot of a questionnaire
// @Description Owners may play their own unpublished questionnaire in demo mode.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} dto.QuizSnapshotDTO
// @Failure 403 {object} dto.ErrorResponse "Not published and not owned"
// @Failure 404 {object} dto.ErrorResponse "Questionnaire not found"
// @Failure 422 {object} dto.ErrorResponse "Questionnaire has no questions"
// @Router /quiz/{id} [get]
func (ctrl *QuizController) Play(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := ctrl.quizSvc.Play(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Score godoc
// @Summary Score a quiz run
// @Description Computes score, max score and percentage from the selected answers and records the submission.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param selection body dto.QuizScoreRequest true "Selected answer ids per question"
// @Success 200 {object} dto.QuizScoreResponse
// @Failure 403 {object} dto.ErrorResponse "Not published and not owned"
// @Failure 404 {object} dto.ErrorResponse "Questionnaire not found"
// @Router /quiz/{id}/score [post]
func (ctrl *QuizController) Score(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuizScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizScoreRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.quizSvc.Score(id, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Submissions godoc
// @Summary List the authenticated user's past submissions
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SubmissionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/submissions [get]
func (ctrl *QuizController) Submissions(c *gin.Context) {
	out, err := ctrl.quizSvc.Submissions(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
