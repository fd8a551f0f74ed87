package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type taggingHandler struct {
	taggingService portssvc.AssetTaggingSvcFacade
}

// RegisterTaggingRoutes registers delivery materialization, classification and tagging routes.
func RegisterTaggingRoutes(rg *gin.RouterGroup, taggingService portssvc.AssetTaggingSvcFacade) {
	h := &taggingHandler{taggingService: taggingService}

	deliveries := rg.Group("/deliveries")
	{
		deliveries.POST("/materialize", h.materializeDelivery)
		deliveries.POST("/classify", h.classify)
	}
	rg.POST("/items/:itemID/tag", h.assignTag)
}

// materializeDelivery godoc
// @Summary Materialize a delivery line
// @Description Creates a classified inventory item from one received line and records its initial Receipt in the same transaction.
// @Tags tagging
// @Accept  json
// @Produce  json
// @Param   line body dto.MaterializeDeliveryRequest true "Delivery line"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to materialize delivery"
// @Security BearerAuth
// @Router /deliveries/materialize [post]
func (h *taggingHandler) materializeDelivery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.MaterializeDeliveryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("reference", req.ReferenceNumber))
	item, err := h.taggingService.MaterializeDelivery(c.Request.Context(), req.ToDeliveryLine(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to materialize delivery")
		return
	}

	logger.Info("Delivery line materialized",
		slog.String("item_id", item.ItemID), slog.String("item_code", item.ItemCode), slog.String("category", item.Category))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// classify godoc
// @Summary Classify a description
// @Description Maps a free-text description onto a category and reports whether items of it need a property number.
// @Tags tagging
// @Accept  json
// @Produce  json
// @Param   request body dto.ClassifyRequest true "Description"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deliveries/classify [post]
func (h *taggingHandler) classify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClassifyRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	category := h.taggingService.Classify(req.Description)
	c.JSON(http.StatusOK, dto.ClassifyResponse{
		Category:        category,
		RequiresTagging: h.taggingService.RequiresTagging(category),
	})
}

// assignTag godoc
// @Summary Assign an asset tag
// @Description Stores the serial number and property number of an item. Taggable items without an explicit property number get the next PROP number.
// @Tags tagging
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   tag body dto.AssignTagRequest true "Serial and property numbers"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid format or tagging not required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 409 {object} map[string]string "Property number already assigned"
// @Failure 500 {object} map[string]string "Failed to assign tag"
// @Security BearerAuth
// @Router /items/{itemID}/tag [post]
func (h *taggingHandler) assignTag(c *gin.Context) {
	itemID := c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", itemID))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.AssignTagRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.taggingService.AssignTag(c.Request.Context(), itemID, req.SerialNumber, req.PropertyNumber, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to assign tag")
		return
	}

	pn := ""
	if item.PropertyNumber != nil {
		pn = *item.PropertyNumber
	}
	logger.Info("Asset tag assigned", slog.String("property_number", pn))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
