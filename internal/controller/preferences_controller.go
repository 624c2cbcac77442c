package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizforge/internal/middleware"
	"quizforge/internal/service"
)

type PreferencesController struct {
	prefSvc service.PreferencesService
}

func NewPreferencesController(prefSvc service.PreferencesService) *PreferencesController {
	return &PreferencesController{prefSvc: prefSvc}
}

// Get godoc
// @Summary Get the authenticated user's preferences
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PreferenceResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /preferences [get]
func (ctrl *PreferencesController) Get(c *gin.Context) {
	out, err := ctrl.prefSvc.Get(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ToggleTheme godoc
// @Summary Toggle between light and dark theme
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PreferenceResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /preferences/toggle-theme [post]
func (ctrl *PreferencesController) ToggleTheme(c *gin.Context) {
	out, err := ctrl.prefSvc.ToggleTheme(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ToggleLanguage godoc
// @Summary Toggle between French and English
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PreferenceResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /preferences/toggle-language [post]
func (ctrl *PreferencesController) ToggleLanguage(c *gin.Context) {
	out, err := ctrl.prefSvc.ToggleLanguage(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
