package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// Add godoc
// @Summary Add a question to a questionnaire
// @Description Appends a question at the next number. TRUE_FALSE questions get their answer pair generated in the caller's language.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param question body dto.QuestionSaveDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Questionnaire not found or not owned"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /questionnaires/{id}/questions [post]
func (ctrl *QuestionController) Add(c *gin.Context) {
	questionnaireID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionSaveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionSaveDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.questionSvc.Add(questionnaireID, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Edit godoc
// @Summary Edit a question
// @Description Replaces the question's label, type and answer set. Switching the type discards the previous answers.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionSaveDTO true "Question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Question not found or not owned"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /questions/{id} [put]
func (ctrl *QuestionController) Edit(c *gin.Context) {
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionSaveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.questionSvc.Edit(questionID, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Remove godoc
// @Summary Remove a question
// @Description Deletes the question and renumbers the remaining ones.
// @Tags questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Question not found or not owned"
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) Remove(c *gin.Context) {
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.Remove(questionID, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Distribute godoc
// @Summary Distribute points over a question's answers
// @Description Sets the weight of every correct answer to the given points and every incorrect answer to zero.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param points body dto.DistributePointsRequest true "Points to assign to each correct answer"
// @Success 200 {array} dto.AnswerResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Question not found or not owned"
// @Failure 422 {object} dto.ErrorResponse "No correct answer, or negative points"
// @Router /questions/{id}/distribute [post]
func (ctrl *QuestionController) Distribute(c *gin.Context) {
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DistributePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.questionSvc.Distribute(questionID, middleware.UserID(c), req.Points)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
