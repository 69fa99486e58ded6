package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/global_finance_path/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes. Unexpected errors are logged and
// answered with failMsg so internals never reach the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": failMsg})
	}
}

func badRequest(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format: " + err.Error()})
}
