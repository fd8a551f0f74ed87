package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock ItemService ---
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockItemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockItemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CurrentBalance(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) BalanceAsOf(ctx context.Context, itemID string, asOf time.Time) (int64, error) {
	args := m.Called(ctx, itemID, asOf)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) ListStockCard(ctx context.Context, itemID string, params dto.ListStockCardParams) (*dto.ListStockCardResponse, error) {
	args := m.Called(ctx, itemID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListStockCardResponse), args.Error(1)
}
func (m *MockLedgerService) VerifyLedger(ctx context.Context, itemID string) (*domain.LedgerAudit, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAudit), args.Error(1)
}
func (m *MockLedgerService) RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, userID string) (*domain.StockCard, error) {
	args := m.Called(ctx, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockCard), args.Error(1)
}
func (m *MockLedgerService) AppendInTx(ctx context.Context, tx pgx.Tx, mv domain.Movement) (*domain.StockCard, error) {
	args := m.Called(ctx, tx, mv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockCard), args.Error(1)
}

var _ portssvc.StockLedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock AdjustmentService ---
type MockAdjustmentService struct {
	mock.Mock
}

func (m *MockAdjustmentService) adjustment(args mock.Arguments) (*domain.AdjustmentCase, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentCase), args.Error(1)
}

func (m *MockAdjustmentService) GetAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, adjustmentID))
}
func (m *MockAdjustmentService) ListAdjustments(ctx context.Context, params dto.ListAdjustmentsParams) ([]domain.AdjustmentCase, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentCase), args.Error(1)
}
func (m *MockAdjustmentService) ProposeAdjustment(ctx context.Context, req dto.ProposeAdjustmentRequest, preparerID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, req, preparerID))
}
func (m *MockAdjustmentService) ProposeFromCount(ctx context.Context, countID string, preparerID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, countID, preparerID))
}
func (m *MockAdjustmentService) UpdateAdjustment(ctx context.Context, adjustmentID string, req dto.UpdateAdjustmentRequest, userID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, adjustmentID, req, userID))
}
func (m *MockAdjustmentService) DeleteAdjustment(ctx context.Context, adjustmentID string, userID string) error {
	return m.Called(ctx, adjustmentID, userID).Error(0)
}
func (m *MockAdjustmentService) ApproveAdjustment(ctx context.Context, adjustmentID string, approverID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, adjustmentID, approverID))
}
func (m *MockAdjustmentService) RejectAdjustment(ctx context.Context, adjustmentID string, reason string, userID string) (*domain.AdjustmentCase, error) {
	return m.adjustment(m.Called(ctx, adjustmentID, reason, userID))
}

var _ portssvc.AdjustmentSvcFacade = (*MockAdjustmentService)(nil)

// --- Mock CountService ---
type MockCountService struct {
	mock.Mock
}

func (m *MockCountService) count(args mock.Arguments) (*domain.PhysicalCount, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhysicalCount), args.Error(1)
}

func (m *MockCountService) SubmitCount(ctx context.Context, req dto.SubmitCountRequest, counterID string) (*domain.PhysicalCount, error) {
	return m.count(m.Called(ctx, req, counterID))
}
func (m *MockCountService) VerifyCount(ctx context.Context, countID string, verifierID string) (*domain.PhysicalCount, error) {
	return m.count(m.Called(ctx, countID, verifierID))
}
func (m *MockCountService) GetCountByID(ctx context.Context, countID string) (*domain.PhysicalCount, error) {
	return m.count(m.Called(ctx, countID))
}
func (m *MockCountService) ListCounts(ctx context.Context, params dto.ListCountsParams) ([]domain.PhysicalCount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PhysicalCount), args.Error(1)
}

var _ portssvc.PhysicalCountSvcFacade = (*MockCountService)(nil)

// --- Mock TaggingService ---
type MockTaggingService struct {
	mock.Mock
}

func (m *MockTaggingService) Classify(description string) string {
	return m.Called(description).String(0)
}
func (m *MockTaggingService) RequiresTagging(category string) bool {
	return m.Called(category).Bool(0)
}
func (m *MockTaggingService) MaterializeDelivery(ctx context.Context, line domain.DeliveryLine, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, line, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockTaggingService) AssignTag(ctx context.Context, itemID string, serialNumber, propertyNumber *string, userID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, serialNumber, propertyNumber, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

var _ portssvc.AssetTaggingSvcFacade = (*MockTaggingService)(nil)

// --- Mock SequenceService ---
type MockSequenceService struct {
	mock.Mock
}

func (m *MockSequenceService) Next(ctx context.Context, category string, year int, userID string) (string, error) {
	args := m.Called(ctx, category, year, userID)
	return args.String(0), args.Error(1)
}
func (m *MockSequenceService) NextInTx(ctx context.Context, tx pgx.Tx, category string, year int) (string, error) {
	args := m.Called(ctx, tx, category, year)
	return args.String(0), args.Error(1)
}
func (m *MockSequenceService) ReserveInTx(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

var _ portssvc.SequenceSvc = (*MockSequenceService)(nil)
