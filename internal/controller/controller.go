package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizforge/internal/apperr"
	"quizforge/internal/dto"
)

// pathID parses a numeric path parameter. A false return means the 400
// response was already written.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var forkErr *apperr.ForkFailedError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrPermission):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	case errors.As(err, &forkErr):
		log.Error().Err(err).Str("path", c.FullPath()).Msg("fork failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: forkErr.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
