package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adjustmentHandler handles HTTP requests for adjustment cases.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

func newAdjustmentHandler(as portssvc.AdjustmentSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{adjustmentService: as}
}

// RegisterAdjustmentRoutes registers routes under /adjustments.
func RegisterAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := newAdjustmentHandler(adjustmentService)

	adjustments := rg.Group("/adjustments")
	{
		adjustments.POST("", h.proposeAdjustment)
		adjustments.GET("", h.listAdjustments)
		adjustments.GET("/:adjustmentID", h.getAdjustment)
		adjustments.PUT("/:adjustmentID", h.updateAdjustment)
		adjustments.DELETE("/:adjustmentID", h.deleteAdjustment)
		adjustments.POST("/:adjustmentID/approve", h.approveAdjustment)
		adjustments.POST("/:adjustmentID/reject", h.rejectAdjustment)
	}
}

// proposeAdjustment godoc
// @Summary Propose an adjustment
// @Description Files a Pending adjustment case and snapshots the current balance. The ledger is not changed until approval.
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.ProposeAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 422 {object} map[string]interface{} "Delta would make the balance negative"
// @Failure 500 {object} map[string]string "Failed to propose adjustment"
// @Security BearerAuth
// @Router /adjustments [post]
func (h *adjustmentHandler) proposeAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.ProposeAdjustmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("item_id", req.ItemID))
	logger.Info("Received request to propose adjustment", slog.Int64("delta", req.Delta))

	adj, err := h.adjustmentService.ProposeAdjustment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to propose adjustment")
		return
	}

	logger.Info("Adjustment proposed", slog.String("adjustment_number", adj.AdjustmentNumber))
	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(adj))
}

// getAdjustment godoc
// @Summary Get an adjustment
// @Tags adjustments
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID} [get]
func (h *adjustmentHandler) getAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("adjustmentID")))

	adj, err := h.adjustmentService.GetAdjustmentByID(c.Request.Context(), c.Param("adjustmentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(adj))
}

// listAdjustments godoc
// @Summary List adjustments
// @Tags adjustments
// @Produce  json
// @Param   itemID query string false "Item ID"
// @Param   status query string false "Status" Enums(PENDING, APPROVED, REJECTED)
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAdjustmentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list adjustments"
// @Security BearerAuth
// @Router /adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAdjustmentsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	cases, err := h.adjustmentService.ListAdjustments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list adjustments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdjustmentsResponse(cases))
}

// updateAdjustment godoc
// @Summary Update a pending adjustment
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Param   adjustment body dto.UpdateAdjustmentRequest true "Fields to update"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 409 {object} map[string]string "Adjustment is no longer pending"
// @Failure 500 {object} map[string]string "Failed to update adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID} [put]
func (h *adjustmentHandler) updateAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("adjustmentID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateAdjustmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	adj, err := h.adjustmentService.UpdateAdjustment(c.Request.Context(), c.Param("adjustmentID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update adjustment")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(adj))
}

// deleteAdjustment godoc
// @Summary Delete a pending adjustment
// @Tags adjustments
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 409 {object} map[string]string "Adjustment is no longer pending"
// @Failure 500 {object} map[string]string "Failed to delete adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID} [delete]
func (h *adjustmentHandler) deleteAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("adjustmentID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	if err := h.adjustmentService.DeleteAdjustment(c.Request.Context(), c.Param("adjustmentID"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete adjustment")
		return
	}
	logger.Info("Adjustment deleted", slog.String("user_id", userID))
	c.Status(http.StatusNoContent)
}

// approveAdjustment godoc
// @Summary Approve an adjustment
// @Description Appends exactly one Adjustment entry for the case's delta and closes the case.
// @Tags adjustments
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 409 {object} map[string]interface{} "Adjustment already resolved"
// @Failure 422 {object} map[string]interface{} "Current balance cannot absorb the delta"
// @Failure 503 {object} map[string]string "Concurrent update conflict, retry"
// @Failure 500 {object} map[string]string "Failed to approve adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID}/approve [post]
func (h *adjustmentHandler) approveAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("adjustmentID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.ApproveAdjustment(c.Request.Context(), c.Param("adjustmentID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to approve adjustment")
		return
	}
	logger.Info("Adjustment approved", slog.String("approver_id", userID), slog.String("adjustment_number", adj.AdjustmentNumber))
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(adj))
}

// rejectAdjustment godoc
// @Summary Reject an adjustment
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   adjustmentID path string true "Adjustment ID"
// @Param   rejection body dto.RejectAdjustmentRequest true "Rejection reason"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Reason missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Adjustment not found"
// @Failure 409 {object} map[string]interface{} "Adjustment already resolved"
// @Failure 500 {object} map[string]string "Failed to reject adjustment"
// @Security BearerAuth
// @Router /adjustments/{adjustmentID}/reject [post]
func (h *adjustmentHandler) rejectAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("adjustment_id", c.Param("adjustmentID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.RejectAdjustmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	adj, err := h.adjustmentService.RejectAdjustment(c.Request.Context(), c.Param("adjustmentID"), req.Reason, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to reject adjustment")
		return
	}
	logger.Info("Adjustment rejected", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(adj))
}
