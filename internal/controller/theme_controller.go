package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizforge/internal/dto"
	"quizforge/internal/service"
)

type ThemeController struct {
	themeSvc service.ThemeService
}

func NewThemeController(themeSvc service.ThemeService) *ThemeController {
	return &ThemeController{themeSvc: themeSvc}
}

// List godoc
// @Summary List all themes
// @Tags themes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ThemeResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /themes [get]
func (ctrl *ThemeController) List(c *gin.Context) {
	out, err := ctrl.themeSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary Create a theme
// @Tags themes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param theme body dto.ThemeCreateRequest true "Theme data"
// @Success 201 {object} dto.ThemeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /themes [post]
func (ctrl *ThemeController) Create(c *gin.Context) {
	var req dto.ThemeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	out, err := ctrl.themeSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
