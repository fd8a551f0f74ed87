package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests for the item catalog.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// RegisterItemRoutes registers catalog routes under /items.
func RegisterItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PUT("/:itemID", h.updateItem)
	}
}

// createItem godoc
// @Summary Create an inventory item
// @Description Enters an item into the catalog. The category is classified from the name and description when omitted, and an item code is issued.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to create item", slog.String("name", req.Name))

	item, err := h.itemService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create item")
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID), slog.String("item_code", item.ItemCode))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// getItem godoc
// @Summary Get an inventory item
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Security BearerAuth
// @Router /items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", c.Param("itemID")))

	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("itemID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Tags items
// @Produce  json
// @Param   category query string false "Exact category"
// @Param   status query string false "Item status" Enums(ACTIVE, DISPOSED, LOST)
// @Param   q query string false "Search name, description, item code or property number"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListItemsParams
	if !bindQuery(c, logger, &params) {
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// updateItem godoc
// @Summary Update item catalog data
// @Description Codes, tags and quantities are not editable here.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Security BearerAuth
// @Router /items/{itemID} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", c.Param("itemID")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("itemID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update item")
		return
	}
	logger.Info("Item updated successfully")
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
