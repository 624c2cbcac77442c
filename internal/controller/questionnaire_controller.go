package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
)

type QuestionnaireController struct {
	questionnaireSvc service.QuestionnaireService
	pdfSvc           service.PDFService
}

func NewQuestionnaireController(questionnaireSvc service.QuestionnaireService, pdfSvc service.PDFService) *QuestionnaireController {
	return &QuestionnaireController{questionnaireSvc: questionnaireSvc, pdfSvc: pdfSvc}
}

// ListMine godoc
// @Summary List the authenticated user's questionnaires
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionnaireSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questionnaires [get]
func (ctrl *QuestionnaireController) ListMine(c *gin.Context) {
	out, err := ctrl.questionnaireSvc.ListMine(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListPublished godoc
// @Summary List published questionnaires from other authors
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionnaireSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questionnaires/published [get]
func (ctrl *QuestionnaireController) ListPublished(c *gin.Context) {
	out, err := ctrl.questionnaireSvc.ListPublished(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary Get a questionnaire with its full question tree
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} dto.QuestionnaireDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Not published and not owned"
// @Failure 404 {object} dto.ErrorResponse "Questionnaire not found"
// @Router /questionnaires/{id} [get]
func (ctrl *QuestionnaireController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := ctrl.questionnaireSvc.Get(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a questionnaire
// @Description Create a questionnaire, optionally with its questions. Questions are numbered in request order.
// @Tags questionnaires
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questionnaire body dto.QuestionnaireSaveDTO true "Questionnaire data"
// @Success 201 {object} dto.QuestionnaireDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /questionnaires [post]
func (ctrl *QuestionnaireController) Create(c *gin.Context) {
	var req dto.QuestionnaireSaveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionnaireSaveDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.questionnaireSvc.Create(middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Update godoc
// @Summary Update a questionnaire
// @Description Replaces metadata and the whole question tree. Only the owner may update.
// @Tags questionnaires
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param questionnaire body dto.QuestionnaireSaveDTO true "Questionnaire data"
// @Success 200 {object} dto.QuestionnaireDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Not found or not owned"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /questionnaires/{id} [put]
func (ctrl *QuestionnaireController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionnaireSaveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.questionnaireSvc.Update(id, middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete a questionnaire
// @Tags questionnaires
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not found or not owned"
// @Router /questionnaires/{id} [delete]
func (ctrl *QuestionnaireController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionnaireSvc.Delete(id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TogglePublish godoc
// @Summary Toggle a questionnaire's published flag
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not found or not owned"
// @Router /questionnaires/{id}/publish [patch]
func (ctrl *QuestionnaireController) TogglePublish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionnaireSvc.TogglePublish(id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "publication state toggled"})
}

// Fork godoc
// @Summary Fork a published questionnaire
// @Description Copies another author's published questionnaire, with all questions and answers, into the caller's account as an unpublished draft.
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Source questionnaire ID"
// @Success 201 {object} dto.ForkResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Source is not published"
// @Failure 404 {object} dto.ErrorResponse "Source not found"
// @Failure 422 {object} dto.ErrorResponse "Cannot fork own questionnaire"
// @Failure 500 {object} dto.ErrorResponse "Fork failed, no partial copy remains"
// @Router /questionnaires/{id}/fork [post]
func (ctrl *QuestionnaireController) Fork(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	newID, err := ctrl.questionnaireSvc.Fork(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ForkResponseDTO{ID: newID})
}

// ExportPDF godoc
// @Summary Export a questionnaire as PDF
// @Tags questionnaires
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Not published and not owned"
// @Failure 404 {object} dto.ErrorResponse "Questionnaire not found"
// @Router /questionnaires/{id}/pdf [get]
func (ctrl *QuestionnaireController) ExportPDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	content, filename, err := ctrl.pdfSvc.Export(id, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", content)
}
