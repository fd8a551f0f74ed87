package handlers_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestSubmitCount_Success() {
	itemID := uuid.NewString()
	count := &domain.PhysicalCount{
		CountID:     uuid.NewString(),
		CountNumber: "CNT-2026-001",
		ItemID:      itemID,
		CountedBy:   suite.userID,
		Status:      domain.CountSubmitted,
	}
	count.Reconcile(10, 8)
	suite.counts.On("SubmitCount", mock.Anything,
		mock.MatchedBy(func(r dto.SubmitCountRequest) bool {
			return r.ItemID == itemID && r.ActualQuantity != nil && *r.ActualQuantity == 8
		}),
		suite.userID,
	).Return(count, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/counts", map[string]any{
		"itemID":         itemID,
		"actualQuantity": 8,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CountResponse
	suite.decode(w, &resp)
	suite.Equal(int64(-2), resp.Variance)
	suite.Equal(domain.Shortage, resp.VarianceType)
}

func (suite *HandlerTestSuite) TestSubmitCount_ZeroActualQuantityIsAccepted() {
	itemID := uuid.NewString()
	count := &domain.PhysicalCount{CountID: uuid.NewString(), ItemID: itemID, Status: domain.CountSubmitted}
	count.Reconcile(3, 0)
	suite.counts.On("SubmitCount", mock.Anything, mock.Anything, suite.userID).Return(count, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/counts", map[string]any{
		"itemID":         itemID,
		"actualQuantity": 0,
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestSubmitCount_NegativeQuantity() {
	w := suite.serve(http.MethodPost, "/api/v1/counts", map[string]any{
		"itemID":         uuid.NewString(),
		"actualQuantity": -1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.counts.AssertNotCalled(suite.T(), "SubmitCount")
}

func (suite *HandlerTestSuite) TestVerifyCount_AlreadyVerified() {
	countID := uuid.NewString()
	suite.counts.On("VerifyCount", mock.Anything, countID, suite.userID).
		Return(nil, &apperrors.StateError{Entity: "count", ID: countID, Action: "verify", Current: string(domain.CountVerified)}).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/counts/%s/verify", countID), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestProposeFromCount_Success() {
	countID := uuid.NewString()
	adj := pendingAdjustment(uuid.NewString(), suite.userID)
	adj.SourceCountID = &countID
	suite.adjustment.On("ProposeFromCount", mock.Anything, countID, suite.userID).Return(adj, nil).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/counts/%s/adjustment", countID), nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AdjustmentResponse
	suite.decode(w, &resp)
	suite.Require().NotNil(resp.SourceCountID)
	suite.Equal(countID, *resp.SourceCountID)
}

func (suite *HandlerTestSuite) TestProposeFromCount_NoVariance() {
	countID := uuid.NewString()
	suite.adjustment.On("ProposeFromCount", mock.Anything, countID, suite.userID).
		Return(nil, fmt.Errorf("%w: count %s has no variance", apperrors.ErrValidation, countID)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/counts/%s/adjustment", countID), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCount_StoreFailureIsHidden() {
	countID := uuid.NewString()
	suite.counts.On("GetCountByID", mock.Anything, countID).
		Return(nil, errors.New("pq: connection reset by peer")).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/counts/%s", countID), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestListCounts() {
	suite.counts.On("ListCounts", mock.Anything,
		dto.ListCountsParams{Status: "VERIFIED", Limit: 5, Offset: 10},
	).Return([]domain.PhysicalCount{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/counts?status=VERIFIED&limit=5&offset=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCountsResponse
	suite.decode(w, &resp)
	suite.Empty(resp.Counts)
}
