package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for an item's stock card.
type ledgerHandler struct {
	ledgerService portssvc.StockLedgerSvcFacade
}

func newLedgerHandler(ls portssvc.StockLedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers stock card routes under /items/:itemID.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.StockLedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	item := rg.Group("/items/:itemID")
	{
		item.POST("/movements", h.recordMovement)
		item.GET("/balance", h.getBalance)
		item.GET("/stock-card", h.listStockCard)
		item.GET("/ledger/verify", h.verifyLedger)
	}
}

// recordMovement godoc
// @Summary Record a stock movement
// @Description Appends a Receipt, Issue or Donation entry to the item's stock card. Adjustment entries are only written by approving an adjustment.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   movement body dto.RecordMovementRequest true "Movement details"
// @Success 201 {object} dto.StockCardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 422 {object} map[string]interface{} "Insufficient stock"
// @Failure 503 {object} map[string]string "Concurrent update conflict, retry"
// @Failure 500 {object} map[string]string "Failed to record movement"
// @Security BearerAuth
// @Router /items/{itemID}/movements [post]
func (h *ledgerHandler) recordMovement(c *gin.Context) {
	itemID := c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", itemID))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	var req dto.RecordMovementRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("transaction_type", string(req.TransactionType)))
	logger.Info("Received request to record stock movement",
		slog.Int64("quantity_in", req.QuantityIn), slog.Int64("quantity_out", req.QuantityOut))

	entry, err := h.ledgerService.RecordMovement(c.Request.Context(), itemID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record movement")
		return
	}

	logger.Info("Stock movement recorded", slog.String("entry_id", entry.EntryID), slog.Int64("balance", entry.Balance))
	c.JSON(http.StatusCreated, dto.ToStockCardResponse(entry))
}

// getBalance godoc
// @Summary Get an item's balance
// @Description Returns the balance on the latest entry, or on the latest entry created at or before asOf.
// @Tags ledger
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   asOf query string false "RFC3339 instant"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /items/{itemID}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	itemID := c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", itemID))
	var params dto.BalanceParams
	if !bindQuery(c, logger, &params) {
		return
	}

	var (
		balance int64
		err     error
	)
	if params.AsOf != nil {
		balance, err = h.ledgerService.BalanceAsOf(c.Request.Context(), itemID, *params.AsOf)
	} else {
		balance, err = h.ledgerService.CurrentBalance(c.Request.Context(), itemID)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{ItemID: itemID, Balance: balance, AsOf: params.AsOf})
}

// listStockCard godoc
// @Summary List an item's stock card
// @Description Entries newest first. Pass the returned nextToken to fetch the following page.
// @Tags ledger
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListStockCardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to list stock card"
// @Security BearerAuth
// @Router /items/{itemID}/stock-card [get]
func (h *ledgerHandler) listStockCard(c *gin.Context) {
	itemID := c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", itemID))
	var params dto.ListStockCardParams
	if !bindQuery(c, logger, &params) {
		return
	}

	resp, err := h.ledgerService.ListStockCard(c.Request.Context(), itemID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list stock card")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// verifyLedger godoc
// @Summary Verify an item's stock card
// @Description Re-walks the stored balances and reports every entry that does not follow from its predecessor.
// @Tags ledger
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} domain.LedgerAudit
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to verify ledger"
// @Security BearerAuth
// @Router /items/{itemID}/ledger/verify [get]
func (h *ledgerHandler) verifyLedger(c *gin.Context) {
	itemID := c.Param("itemID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_id", itemID))

	audit, err := h.ledgerService.VerifyLedger(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, logger, err, "Failed to verify ledger")
		return
	}
	if !audit.Healthy() {
		logger.Error("Stock card failed verification", slog.Int("violations", len(audit.Violations)))
	}
	c.JSON(http.StatusOK, audit)
}
