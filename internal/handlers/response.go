package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated user id, writing 401 when it is missing.
func currentUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindJSON binds the request body into req, writing 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds query parameters into params, writing 400 on failure.
func bindQuery(c *gin.Context, logger *slog.Logger, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}

// respondError maps a service error onto its HTTP status. Server-side failures
// get a generic message; storage details never reach the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}

	logger.Warn(failureMsg, slog.String("error", err.Error()), slog.Int("status", status))
	body := gin.H{"error": err.Error()}

	var stockErr *apperrors.InsufficientStockError
	var stateErr *apperrors.StateError
	switch {
	case errors.As(err, &stockErr):
		body["requested"] = stockErr.Requested
		body["available"] = stockErr.Available
	case errors.As(err, &stateErr):
		body["currentStatus"] = stateErr.Current
	case status == http.StatusServiceUnavailable:
		body["error"] = "The request conflicted with concurrent updates, please retry"
		c.Header("Retry-After", "1")
	}
	c.JSON(status, body)
}
