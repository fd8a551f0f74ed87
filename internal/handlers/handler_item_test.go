package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateItem_Success() {
	item := &domain.InventoryItem{
		ItemID:        uuid.NewString(),
		ItemCode:      "OFS-2026-001",
		Name:          "Bond paper A4",
		Category:      domain.CategoryOfficeSupplies,
		UnitOfMeasure: "ream",
		UnitCost:      decimal.RequireFromString("215.50"),
		Condition:     domain.ConditionServiceable,
		Status:        domain.ItemActive,
	}
	suite.items.On("CreateItem", mock.Anything,
		mock.MatchedBy(func(r dto.CreateItemRequest) bool {
			return r.Name == "Bond paper A4" && r.UnitCost.Equal(decimal.RequireFromString("215.50"))
		}),
		suite.userID,
	).Return(item, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/items", map[string]any{
		"name":          "Bond paper A4",
		"unitOfMeasure": "ream",
		"unitCost":      "215.50",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ItemResponse
	suite.decode(w, &resp)
	suite.Equal("OFS-2026-001", resp.ItemCode)
	suite.False(resp.RequiresTagging)
}

func (suite *HandlerTestSuite) TestCreateItem_MissingName() {
	w := suite.serve(http.MethodPost, "/api/v1/items", map[string]any{"unitOfMeasure": "pc"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.items.AssertNotCalled(suite.T(), "CreateItem")
}

func (suite *HandlerTestSuite) TestListItems_Search() {
	suite.items.On("ListItems", mock.Anything,
		dto.ListItemsParams{Category: "IT Equipment", Search: "laptop", Limit: 20, Offset: 0},
	).Return([]domain.InventoryItem{{ItemID: uuid.NewString(), Category: domain.CategoryITEquipment}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/items?category=IT+Equipment&q=laptop", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListItemsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Items, 1)
}

func (suite *HandlerTestSuite) TestUpdateItem_InvalidStatus() {
	w := suite.serve(http.MethodPut, fmt.Sprintf("/api/v1/items/%s", uuid.NewString()), map[string]any{"status": "MISSING"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.items.AssertNotCalled(suite.T(), "UpdateItem")
}
