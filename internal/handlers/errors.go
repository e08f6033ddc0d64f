package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error to its HTTP status and writes it.
// fallback is the message shown for unexpected errors, whose details stay in the log.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback

	// An unusable rate table wraps both ErrRateFetchFailed and ErrValidation.
	switch {
	case errors.Is(err, apperrors.ErrRateFetchFailed):
		status, msg = http.StatusBadGateway, err.Error()
	case errors.Is(err, apperrors.ErrExpensesDisabled):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrInvalidCredential):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnconvertibleCurrency):
		status, msg = http.StatusBadRequest, err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": msg})
}

// bindJSON binds the request body into req, answering 400 when it does not validate.
func bindJSON(c *gin.Context, logger *slog.Logger, req any, operation string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON for "+operation, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// requireUserID returns the authenticated user, answering 401 when it is missing.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
