package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRecordMovement_Success() {
	itemID := uuid.NewString()
	entry := &domain.StockCard{
		EntryID:         uuid.NewString(),
		ItemID:          itemID,
		EntryNo:         3,
		TransactionType: domain.Issue,
		QuantityOut:     4,
		UnitCost:        decimal.NewFromInt(12),
		Balance:         6,
		ReferenceNumber: "RIS-2026-014",
		ProcessedBy:     suite.userID,
	}
	suite.ledger.On("RecordMovement", mock.Anything, itemID,
		mock.MatchedBy(func(r dto.RecordMovementRequest) bool {
			return r.TransactionType == domain.Issue && r.QuantityOut == 4 && r.QuantityIn == 0
		}),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/movements", itemID), map[string]any{
		"transactionType": "ISSUE",
		"quantityOut":     4,
		"unitCost":        "12",
		"referenceNumber": "RIS-2026-014",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.StockCardResponse
	suite.decode(w, &resp)
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal(int64(6), resp.Balance)
}

func (suite *HandlerTestSuite) TestRecordMovement_RejectsAdjustmentType() {
	itemID := uuid.NewString()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/movements", itemID), map[string]any{
		"transactionType": "ADJUSTMENT",
		"quantityIn":      1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "RecordMovement")
}

func (suite *HandlerTestSuite) TestRecordMovement_InsufficientStock() {
	itemID := uuid.NewString()
	suite.ledger.On("RecordMovement", mock.Anything, itemID, mock.Anything, suite.userID).
		Return(nil, &apperrors.InsufficientStockError{ItemID: itemID, Requested: 9, Available: 2}).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/movements", itemID), map[string]any{
		"transactionType": "ISSUE",
		"quantityOut":     9,
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.EqualValues(9, body["requested"])
	suite.EqualValues(2, body["available"])
}

func (suite *HandlerTestSuite) TestRecordMovement_ConflictIsRetryable() {
	itemID := uuid.NewString()
	suite.ledger.On("RecordMovement", mock.Anything, itemID, mock.Anything, suite.userID).
		Return(nil, apperrors.NewConflictError("serialization failure", nil)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/movements", itemID), map[string]any{
		"transactionType": "RECEIPT",
		"quantityIn":      1,
	})

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("1", w.Header().Get("Retry-After"))
}

func (suite *HandlerTestSuite) TestGetBalance_Current() {
	itemID := uuid.NewString()
	suite.ledger.On("CurrentBalance", mock.Anything, itemID).Return(int64(42), nil).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/balance", itemID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.decode(w, &resp)
	suite.Equal(int64(42), resp.Balance)
	suite.Nil(resp.AsOf)
	suite.ledger.AssertNotCalled(suite.T(), "BalanceAsOf")
}

func (suite *HandlerTestSuite) TestGetBalance_AsOf() {
	itemID := uuid.NewString()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.ledger.On("BalanceAsOf", mock.Anything, itemID,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(asOf) }),
	).Return(int64(7), nil).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/balance?asOf=%s", itemID, asOf.Format(time.RFC3339)), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.decode(w, &resp)
	suite.Equal(int64(7), resp.Balance)
	suite.Require().NotNil(resp.AsOf)
	suite.True(resp.AsOf.Equal(asOf))
}

func (suite *HandlerTestSuite) TestGetBalance_UnknownItem() {
	itemID := uuid.NewString()
	suite.ledger.On("CurrentBalance", mock.Anything, itemID).
		Return(int64(0), apperrors.NewNotFoundError("item "+itemID)).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/balance", itemID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListStockCard_PassesCursor() {
	itemID := uuid.NewString()
	next := "next-page"
	resp := &dto.ListStockCardResponse{
		Entries:   []dto.StockCardResponse{{EntryID: uuid.NewString(), ItemID: itemID, EntryNo: 5}},
		NextToken: &next,
	}
	suite.ledger.On("ListStockCard", mock.Anything, itemID,
		mock.MatchedBy(func(p dto.ListStockCardParams) bool {
			return p.Limit == 1 && p.NextToken != nil && *p.NextToken == "abc"
		}),
	).Return(resp, nil).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/stock-card?limit=1&nextToken=abc", itemID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListStockCardResponse
	suite.decode(w, &body)
	suite.Len(body.Entries, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
}

func (suite *HandlerTestSuite) TestListStockCard_LimitTooLarge() {
	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/stock-card?limit=5000", uuid.NewString()), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "ListStockCard")
}

func (suite *HandlerTestSuite) TestVerifyLedger_ReportsViolations() {
	itemID := uuid.NewString()
	audit := &domain.LedgerAudit{
		ItemID:     itemID,
		Entries:    2,
		Balance:    3,
		Violations: []domain.ChainViolation{{EntryNo: 2, Expected: 5, Stored: 3}},
	}
	suite.ledger.On("VerifyLedger", mock.Anything, itemID).Return(audit, nil).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/items/%s/ledger/verify", itemID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body domain.LedgerAudit
	suite.decode(w, &body)
	suite.False(body.Healthy())
	suite.Equal(int64(2), body.Violations[0].EntryNo)
}
