package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type sequenceHandler struct {
	sequenceService portssvc.SequenceSvc
}

// RegisterSequenceRoutes registers routes under /sequences.
func RegisterSequenceRoutes(rg *gin.RouterGroup, sequenceService portssvc.SequenceSvc) {
	h := &sequenceHandler{sequenceService: sequenceService}
	rg.POST("/sequences/next", h.next)
}

// next godoc
// @Summary Issue the next code of a sequence
// @Description Returns CATEGORY-YEAR-NNN. Codes are never reused, even when the caller discards them.
// @Tags sequences
// @Accept  json
// @Produce  json
// @Param   request body dto.NextSequenceRequest true "Sequence scope"
// @Success 201 {object} dto.NextSequenceResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Concurrent update conflict, retry"
// @Failure 500 {object} map[string]string "Failed to issue code"
// @Security BearerAuth
// @Router /sequences/next [post]
func (h *sequenceHandler) next(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.NextSequenceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	code, err := h.sequenceService.Next(c.Request.Context(), req.Category, req.Year, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to issue code")
		return
	}
	logger.Info("Sequence code issued", slog.String("code", code), slog.String("user_id", userID))
	c.JSON(http.StatusCreated, dto.NextSequenceResponse{Code: code})
}
