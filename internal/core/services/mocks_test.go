package services_test

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UnitOfWork ---
type MockUnitOfWork struct {
	mock.Mock
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

// WithinTx runs fn with a nil transaction unless the expectation returns an error.
func (m *MockUnitOfWork) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, nil)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) LockCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope) (string, error) {
	args := m.Called(ctx, tx, scope)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceRepository) AdvanceCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope, value int64, code string) error {
	args := m.Called(ctx, tx, scope, value, code)
	return args.Error(0)
}

// --- Mock AdjustmentRepository ---
type MockAdjustmentRepository struct {
	mock.Mock
}

var _ portsrepo.AdjustmentRepositoryFacade = (*MockAdjustmentRepository)(nil)

func (m *MockAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error) {
	args := m.Called(ctx, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentCase), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]domain.AdjustmentCase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentCase), args.Error(1)
}

func (m *MockAdjustmentRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error {
	args := m.Called(ctx, tx, adjustment)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) FindAdjustmentByIDForUpdate(ctx context.Context, tx pgx.Tx, adjustmentID string) (*domain.AdjustmentCase, error) {
	args := m.Called(ctx, tx, adjustmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdjustmentCase), args.Error(1)
}

func (m *MockAdjustmentRepository) UpdateAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error {
	args := m.Called(ctx, tx, adjustment)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) DeleteAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustmentID string) error {
	args := m.Called(ctx, tx, adjustmentID)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) OpenAdjustmentExistsForCountInTx(ctx context.Context, tx pgx.Tx, countID string) (bool, error) {
	args := m.Called(ctx, tx, countID)
	return args.Bool(0), args.Error(1)
}

// --- Mock ledger writer (as used by the adjustment workflow) ---
type MockLedgerWriter struct {
	mock.Mock
}

var _ portssvc.StockLedgerWriterSvc = (*MockLedgerWriter)(nil)

func (m *MockLedgerWriter) RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, userID string) (*domain.StockCard, error) {
	args := m.Called(ctx, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockCard), args.Error(1)
}

func (m *MockLedgerWriter) AppendInTx(ctx context.Context, tx pgx.Tx, mv domain.Movement) (*domain.StockCard, error) {
	args := m.Called(ctx, tx, mv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockCard), args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.LedgerEvent) {
	m.Called(ctx, event)
}
