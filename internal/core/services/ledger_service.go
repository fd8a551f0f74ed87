package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// ledgerService owns the append-only stock card of every item.
type ledgerService struct {
	BaseService
	uow        portsrepo.UnitOfWork
	itemRepo   portsrepo.ItemRepositoryFacade
	ledgerRepo portsrepo.StockLedgerRepositoryFacade
}

// NewLedgerService creates a new StockLedgerSvcFacade.
func NewLedgerService(uow portsrepo.UnitOfWork, itemRepo portsrepo.ItemRepositoryFacade, ledgerRepo portsrepo.StockLedgerRepositoryFacade, opts ...Option) portssvc.StockLedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(opts...),
		uow:         uow,
		itemRepo:    itemRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.StockLedgerSvcFacade = (*ledgerService)(nil)

// RecordMovement implements portssvc.StockLedgerSvcFacade
func (s *ledgerService) RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, userID string) (*domain.StockCard, error) {
	logger := s.GetLogger(ctx)

	// Adjustment entries are only written by an approved adjustment case.
	if req.TransactionType == domain.Adjustment {
		return nil, fmt.Errorf("%w: ADJUSTMENT entries are recorded through the adjustment workflow", apperrors.ErrValidation)
	}

	m := domain.Movement{
		ItemID:          itemID,
		Type:            req.TransactionType,
		QuantityIn:      req.QuantityIn,
		QuantityOut:     req.QuantityOut,
		UnitCost:        req.UnitCost,
		ReferenceNumber: req.ReferenceNumber,
		Remarks:         req.Remarks,
		ProcessedBy:     userID,
	}
	if req.TransactionDate != nil {
		m.TransactionDate = req.TransactionDate.UTC()
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.StockCard
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		entry, err = s.AppendInTx(ctx, tx, m)
		return err
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to record stock movement", slog.String("item_id", itemID))
		return nil, err
	}

	logger.Info("Stock movement recorded",
		slog.String("item_id", itemID),
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.TransactionType)),
		slog.Int64("balance", entry.Balance))
	s.Publish(ctx, movementEvent(entry))
	return entry, nil
}

// AppendInTx implements portssvc.StockLedgerSvcFacade. The item row lock
// serialises appends per item while leaving other items untouched.
func (s *ledgerService) AppendInTx(ctx context.Context, tx pgx.Tx, m domain.Movement) (*domain.StockCard, error) {
	if _, err := s.itemRepo.FindItemByIDForUpdate(ctx, tx, m.ItemID); err != nil {
		return nil, err
	}

	latest, err := s.ledgerRepo.FindLatestEntryInTx(ctx, tx, m.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest stock card entry: %w", err)
	}

	entry, err := domain.NextStockCard(latest, m, s.NewID(), s.Now())
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.InsertEntryInTx(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to append stock card entry: %w", err)
	}
	return &entry, nil
}

// CurrentBalance implements portssvc.StockLedgerSvcFacade
func (s *ledgerService) CurrentBalance(ctx context.Context, itemID string) (int64, error) {
	balance, err := s.ledgerRepo.FindCurrentBalance(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read current balance", slog.String("item_id", itemID))
		}
		return 0, err
	}
	return balance, nil
}

// BalanceAsOf implements portssvc.StockLedgerSvcFacade
func (s *ledgerService) BalanceAsOf(ctx context.Context, itemID string, asOf time.Time) (int64, error) {
	balance, err := s.ledgerRepo.FindBalanceAsOf(ctx, itemID, asOf.UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read balance as of", slog.String("item_id", itemID), slog.Time("as_of", asOf))
		}
		return 0, err
	}
	return balance, nil
}

// ListStockCard implements portssvc.StockLedgerSvcFacade
func (s *ledgerService) ListStockCard(ctx context.Context, itemID string, params dto.ListStockCardParams) (*dto.ListStockCardResponse, error) {
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	entries, next, err := s.ledgerRepo.ListEntries(ctx, itemID, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock card", slog.String("item_id", itemID))
		return nil, err
	}
	return &dto.ListStockCardResponse{
		Entries:   dto.ToStockCardResponses(entries),
		NextToken: next,
	}, nil
}

// VerifyLedger implements portssvc.StockLedgerSvcFacade
func (s *ledgerService) VerifyLedger(ctx context.Context, itemID string) (*domain.LedgerAudit, error) {
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	audit, err := auditItem(ctx, s.ledgerRepo, itemID)
	if err != nil {
		return nil, err
	}
	if !audit.Healthy() {
		s.GetLogger(ctx).Warn("Stock card chain is broken",
			slog.String("item_id", itemID),
			slog.Int("violations", len(audit.Violations)))
	}
	return audit, nil
}

func auditItem(ctx context.Context, repo portsrepo.StockLedgerReader, itemID string) (*domain.LedgerAudit, error) {
	entries, err := repo.ListAllEntries(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock card for %s: %w", itemID, err)
	}
	audit := &domain.LedgerAudit{
		ItemID:     itemID,
		Entries:    len(entries),
		Violations: domain.VerifyChain(entries),
	}
	if len(entries) > 0 {
		audit.Balance = entries[len(entries)-1].Balance
	}
	return audit, nil
}

func movementEvent(entry *domain.StockCard) domain.LedgerEvent {
	return domain.LedgerEvent{
		Type:      domain.EventStockMovementRecorded,
		ActorID:   entry.ProcessedBy,
		ItemID:    entry.ItemID,
		EntityID:  entry.EntryID,
		Reference: entry.ReferenceNumber,
		Attributes: map[string]string{
			"transaction_type": string(entry.TransactionType),
			"quantity_in":      strconv.FormatInt(entry.QuantityIn, 10),
			"quantity_out":     strconv.FormatInt(entry.QuantityOut, 10),
			"balance":          strconv.FormatInt(entry.Balance, 10),
		},
		OccurredAt: entry.CreatedAt,
	}
}
