package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countHandler handles HTTP requests for physical counts.
type countHandler struct {
	countService      portssvc.PhysicalCountSvcFacade
	adjustmentService portssvc.AdjustmentWriterSvc
}

// RegisterCountRoutes registers routes under /counts.
func RegisterCountRoutes(rg *gin.RouterGroup, countService portssvc.PhysicalCountSvcFacade, adjustmentService portssvc.AdjustmentWriterSvc) {
	h := &countHandler{countService: countService, adjustmentService: adjustmentService}

	counts := rg.Group("/counts")
	{
		counts.POST("", h.submitCount)
		counts.GET("", h.listCounts)
		counts.GET("/:countID", h.getCount)
		counts.POST("/:countID/verify", h.verifyCount)
		counts.POST("/:countID/adjustment", h.proposeFromCount)
	}
}

// submitCount godoc
// @Summary Submit a physical count
// @Description Records the counted quantity against the ledger balance at submission time.
// @Tags counts
// @Accept  json
// @Produce  json
// @Param   count body dto.SubmitCountRequest true "Count details"
// @Success 201 {object} dto.CountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to submit count"
// @Security BearerAuth
// @Router /counts [post]
func (h *countHandler) submitCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.SubmitCountRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("item_id", req.ItemID))
	count, err := h.countService.SubmitCount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit count")
		return
	}

	logger.Info("Physical count submitted",
		slog.String("count_number", count.CountNumber),
		slog.Int64("variance", count.Variance),
		slog.String("variance_type", string(count.VarianceType)))
	c.JSON(http.StatusCreated, dto.ToCountResponse(count))
}

// getCount godoc
// @Summary Get a physical count
// @Tags counts
// @Produce  json
// @Param   countID path string true "Count ID"
// @Success 200 {object} dto.CountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Count not found"
// @Failure 500 {object} map[string]string "Failed to retrieve count"
// @Security BearerAuth
// @Router /counts/{countID} [get]
func (h *countHandler) getCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("count_id", c.Param("countID")))

	count, err := h.countService.GetCountByID(c.Request.Context(), c.Param("countID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve count")
		return
	}
	c.JSON(http.StatusOK, dto.ToCountResponse(count))
}

// listCounts godoc
// @Summary List physical counts
// @Tags counts
// @Produce  json
// @Param   itemID query string false "Item ID"
// @Param   status query string false "Status" Enums(SUBMITTED, VERIFIED)
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list counts"
// @Security BearerAuth
// @Router /counts [get]
func (h *countHandler) listCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCountsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	counts, err := h.countService.ListCounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list counts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCountsResponse(counts))
}

// verifyCount godoc
// @Summary Verify a physical count
// @Description Marks a submitted count verified. The system quantity is not re-read and the ledger is untouched.
// @Tags counts
// @Produce  json
// @Param   countID path string true "Count ID"
// @Success 200 {object} dto.CountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Count not found"
// @Failure 409 {object} map[string]interface{} "Count already verified"
// @Failure 500 {object} map[string]string "Failed to verify count"
// @Security BearerAuth
// @Router /counts/{countID}/verify [post]
func (h *countHandler) verifyCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("count_id", c.Param("countID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	count, err := h.countService.VerifyCount(c.Request.Context(), c.Param("countID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to verify count")
		return
	}
	logger.Info("Physical count verified", slog.String("verifier_id", userID))
	c.JSON(http.StatusOK, dto.ToCountResponse(count))
}

// proposeFromCount godoc
// @Summary Propose an adjustment from a verified count
// @Description Files a Pending adjustment whose delta is the count's variance.
// @Tags counts
// @Produce  json
// @Param   countID path string true "Count ID"
// @Success 201 {object} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Count has no variance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Count not found"
// @Failure 409 {object} map[string]interface{} "Count not verified, or already has an open adjustment"
// @Failure 500 {object} map[string]string "Failed to propose adjustment"
// @Security BearerAuth
// @Router /counts/{countID}/adjustment [post]
func (h *countHandler) proposeFromCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("count_id", c.Param("countID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	adj, err := h.adjustmentService.ProposeFromCount(c.Request.Context(), c.Param("countID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to propose adjustment")
		return
	}
	logger.Info("Adjustment proposed from count", slog.String("adjustment_number", adj.AdjustmentNumber))
	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(adj))
}
