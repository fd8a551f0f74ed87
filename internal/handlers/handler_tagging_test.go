package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestClassify() {
	suite.tagging.On("Classify", "Laptop computer, 16GB").Return(domain.CategoryITEquipment).Once()
	suite.tagging.On("RequiresTagging", domain.CategoryITEquipment).Return(true).Once()

	w := suite.serve(http.MethodPost, "/api/v1/deliveries/classify", map[string]any{"description": "Laptop computer, 16GB"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClassifyResponse
	suite.decode(w, &resp)
	suite.Equal(domain.CategoryITEquipment, resp.Category)
	suite.True(resp.RequiresTagging)
}

func (suite *HandlerTestSuite) TestMaterializeDelivery_Success() {
	delivered := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	item := &domain.InventoryItem{
		ItemID:             uuid.NewString(),
		ItemCode:           "ITE-2026-001",
		Category:           domain.CategoryITEquipment,
		QuantityAtCreation: 3,
		AcquisitionDate:    delivered,
		DeliveryReference:  "DR-0042",
	}
	suite.tagging.On("MaterializeDelivery", mock.Anything,
		mock.MatchedBy(func(l domain.DeliveryLine) bool {
			return l.Quantity == 3 && l.ReferenceNumber == "DR-0042" && l.DeliveryDate.Equal(delivered)
		}),
		suite.userID,
	).Return(item, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/deliveries/materialize", map[string]any{
		"description":     "Laptop computer",
		"unitPrice":       "55000",
		"quantity":        3,
		"deliveryDate":    delivered.Format(time.RFC3339),
		"referenceNumber": "DR-0042",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ItemResponse
	suite.decode(w, &resp)
	suite.Equal("ITE-2026-001", resp.ItemCode)
	suite.Equal(int64(3), resp.QuantityAtCreation)
}

func (suite *HandlerTestSuite) TestMaterializeDelivery_ZeroQuantity() {
	w := suite.serve(http.MethodPost, "/api/v1/deliveries/materialize", map[string]any{
		"description":     "Laptop computer",
		"quantity":        0,
		"deliveryDate":    time.Now().UTC().Format(time.RFC3339),
		"referenceNumber": "DR-0043",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.tagging.AssertNotCalled(suite.T(), "MaterializeDelivery")
}

func (suite *HandlerTestSuite) TestAssignTag_NotRequired() {
	itemID := uuid.NewString()
	serial := "SN-1"
	suite.tagging.On("AssignTag", mock.Anything, itemID, &serial, (*string)(nil), suite.userID).
		Return(nil, fmt.Errorf("%w: category Office Supplies", apperrors.ErrTaggingNotRequired)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/tag", itemID), map[string]any{"serialNumber": serial})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAssignTag_MalformedPropertyNumber() {
	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/tag", uuid.NewString()), map[string]any{"propertyNumber": "PROP-26-1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.tagging.AssertNotCalled(suite.T(), "AssignTag")
}

func (suite *HandlerTestSuite) TestAssignTag_DuplicatePropertyNumber() {
	itemID := uuid.NewString()
	pn := "PROP-2026-0001"
	suite.tagging.On("AssignTag", mock.Anything, itemID, (*string)(nil), &pn, suite.userID).
		Return(nil, fmt.Errorf("%w: property number %s", apperrors.ErrDuplicate, pn)).Once()

	w := suite.serve(http.MethodPost, fmt.Sprintf("/api/v1/items/%s/tag", itemID), map[string]any{"propertyNumber": pn})

	suite.Equal(http.StatusConflict, w.Code)
}
