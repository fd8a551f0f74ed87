package handlers_test

import (
	"net/http"

	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestNextSequence() {
	suite.sequence.On("Next", mock.Anything, "ADJ", 2026, suite.userID).Return("ADJ-2026-004", nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/sequences/next", map[string]any{"category": "ADJ", "year": 2026})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.NextSequenceResponse
	suite.decode(w, &resp)
	suite.Equal("ADJ-2026-004", resp.Code)
}

func (suite *HandlerTestSuite) TestNextSequence_InvalidYear() {
	w := suite.serve(http.MethodPost, "/api/v1/sequences/next", map[string]any{"category": "ADJ", "year": 26})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.sequence.AssertNotCalled(suite.T(), "Next")
}
