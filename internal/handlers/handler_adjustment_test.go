package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func pendingAdjustment(itemID, preparer string) *domain.AdjustmentCase {
	return &domain.AdjustmentCase{
		AdjustmentID:     uuid.NewString(),
		AdjustmentNumber: "ADJ-2026-001",
		ItemID:           itemID,
		AdjustmentType:   domain.AdjustDecrease,
		Delta:            -2,
		Reason:           "Water damage",
		BalanceBefore:    10,
		BalanceAfter:     8,
		Status:           domain.AdjustmentPending,
		PreparedBy:       preparer,
	}
}

func (suite *HandlerTestSuite) TestProposeAdjustment_Success() {
	itemID := uuid.NewString()
	adj := pendingAdjustment(itemID, suite.userID)
	suite.adjustment.On("ProposeAdjustment", mock.Anything,
		dto.ProposeAdjustmentRequest{ItemID: itemID, AdjustmentType: domain.AdjustDecrease, Delta: -2, Reason: "Water damage"},
		suite.userID,
	).Return(adj, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/adjustments", map[string]any{
		"itemID":         itemID,
		"adjustmentType": "DECREASE",
		"delta":          -2,
		"reason":         "Water damage",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AdjustmentResponse
	suite.decode(w, &resp)
	suite.Equal("ADJ-2026-001", resp.AdjustmentNumber)
	suite.Equal(domain.AdjustmentPending, resp.Status)
	suite.Equal(int64(8), resp.BalanceAfter)
}

func (suite *HandlerTestSuite) TestProposeAdjustment_ZeroDeltaRejectedAtBinding() {
	w := suite.serve(http.MethodPost, "/api/v1/adjustments", map[string]any{
		"itemID":         uuid.NewString(),
		"adjustmentType": "CORRECTION",
		"delta":          0,
		"reason":         "nothing",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.adjustment.AssertNotCalled(suite.T(), "ProposeAdjustment")
}

func (suite *HandlerTestSuite) TestApproveAdjustment_Success() {
	adj := pendingAdjustment(uuid.NewString(), uuid.NewString())
	entryID := uuid.NewString()
	adj.Status = domain.AdjustmentApproved
	adj.ApprovedBy = &suite.userID
	adj.LedgerEntryID = &entryID
	suite.adjustment.On("ApproveAdjustment", mock.Anything, adj.AdjustmentID, suite.userID).Return(adj, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/adjustments/%s/approve", adj.AdjustmentID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AdjustmentResponse
	suite.decode(w, &resp)
	suite.Equal(domain.AdjustmentApproved, resp.Status)
	suite.Require().NotNil(resp.LedgerEntryID)
	suite.Equal(entryID, *resp.LedgerEntryID)
}

func (suite *HandlerTestSuite) TestApproveAdjustment_AlreadyResolved() {
	adjustmentID := uuid.NewString()
	suite.adjustment.On("ApproveAdjustment", mock.Anything, adjustmentID, suite.userID).
		Return(nil, &apperrors.StateError{Entity: "adjustment", ID: adjustmentID, Action: "approve", Current: string(domain.AdjustmentRejected)}).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/adjustments/%s/approve", adjustmentID), nil)

	suite.Equal(http.StatusConflict, w.Code)
	var body map[string]any
	suite.decode(w, &body)
	suite.Equal("REJECTED", body["currentStatus"])
}

func (suite *HandlerTestSuite) TestApproveAdjustment_BalanceCannotAbsorbDelta() {
	adjustmentID := uuid.NewString()
	suite.adjustment.On("ApproveAdjustment", mock.Anything, adjustmentID, suite.userID).
		Return(nil, &apperrors.InsufficientStockError{ItemID: uuid.NewString(), Requested: 5, Available: 1}).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/adjustments/%s/approve", adjustmentID), nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestRejectAdjustment_RequiresReason() {
	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/adjustments/%s/reject", uuid.NewString()), map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.adjustment.AssertNotCalled(suite.T(), "RejectAdjustment")
}

func (suite *HandlerTestSuite) TestRejectAdjustment_Success() {
	adj := pendingAdjustment(uuid.NewString(), uuid.NewString())
	reason := "Not supported by count sheet"
	adj.Status = domain.AdjustmentRejected
	adj.RejectionReason = &reason
	suite.adjustment.On("RejectAdjustment", mock.Anything, adj.AdjustmentID, reason, suite.userID).Return(adj, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/adjustments/%s/reject", adj.AdjustmentID), map[string]any{"reason": reason})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AdjustmentResponse
	suite.decode(w, &resp)
	suite.Equal(domain.AdjustmentRejected, resp.Status)
}

func (suite *HandlerTestSuite) TestDeleteAdjustment() {
	adjustmentID := uuid.NewString()
	suite.adjustment.On("DeleteAdjustment", mock.Anything, adjustmentID, suite.userID).Return(nil).Once()

	w := suite.serve(http.MethodDelete, fmt.Sprintf("/api/v1/adjustments/%s", adjustmentID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestListAdjustments_FiltersByStatus() {
	itemID := uuid.NewString()
	suite.adjustment.On("ListAdjustments", mock.Anything,
		dto.ListAdjustmentsParams{ItemID: itemID, Status: "PENDING", Limit: 20, Offset: 0},
	).Return([]domain.AdjustmentCase{*pendingAdjustment(itemID, suite.userID)}, nil).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/adjustments?itemID=%s&status=PENDING", itemID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAdjustmentsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Adjustments, 1)
}

func (suite *HandlerTestSuite) TestGetAdjustment_NotFound() {
	adjustmentID := uuid.NewString()
	suite.adjustment.On("GetAdjustmentByID", mock.Anything, adjustmentID).
		Return(nil, apperrors.NewNotFoundError("adjustment "+adjustmentID)).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/adjustments/%s", adjustmentID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
