package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

// countService reconciles manual counts against the stock ledger.
type countService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	itemRepo    portsrepo.ItemRepositoryFacade
	ledgerRepo  portsrepo.StockLedgerRepositoryFacade
	countRepo   portsrepo.PhysicalCountRepositoryFacade
	sequenceSvc portssvc.SequenceSvc
}

// NewPhysicalCountService creates a new PhysicalCountSvcFacade.
func NewPhysicalCountService(uow portsrepo.UnitOfWork, itemRepo portsrepo.ItemRepositoryFacade, ledgerRepo portsrepo.StockLedgerRepositoryFacade, countRepo portsrepo.PhysicalCountRepositoryFacade, sequenceSvc portssvc.SequenceSvc, opts ...Option) portssvc.PhysicalCountSvcFacade {
	return &countService{
		BaseService: newBaseService(opts...),
		uow:         uow,
		itemRepo:    itemRepo,
		ledgerRepo:  ledgerRepo,
		countRepo:   countRepo,
		sequenceSvc: sequenceSvc,
	}
}

var _ portssvc.PhysicalCountSvcFacade = (*countService)(nil)

// SubmitCount implements portssvc.PhysicalCountSvcFacade
func (s *countService) SubmitCount(ctx context.Context, req dto.SubmitCountRequest, counterID string) (*domain.PhysicalCount, error) {
	if req.ActualQuantity == nil || *req.ActualQuantity < 0 {
		return nil, fmt.Errorf("%w: actual quantity must be zero or more", apperrors.ErrValidation)
	}

	var count *domain.PhysicalCount
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Locking the item waits out any in-flight append, so the snapshot is
		// the most recently committed balance.
		if _, err := s.itemRepo.FindItemByIDForUpdate(ctx, tx, req.ItemID); err != nil {
			return err
		}
		latest, err := s.ledgerRepo.FindLatestEntryInTx(ctx, tx, req.ItemID)
		if err != nil {
			return fmt.Errorf("failed to read latest stock card entry: %w", err)
		}

		now := s.Now()
		c := domain.PhysicalCount{
			CountID:     s.NewID(),
			ItemID:      req.ItemID,
			CountDate:   now,
			CountedBy:   counterID,
			Status:      domain.CountSubmitted,
			Remarks:     req.Remarks,
			AuditFields: domain.NewAuditFields(counterID, now),
		}
		if req.CountDate != nil {
			c.CountDate = req.CountDate.UTC()
		}
		c.Reconcile(domain.BalanceOf(latest), *req.ActualQuantity)

		c.CountNumber, err = s.sequenceSvc.NextInTx(ctx, tx, domain.SequenceCount, now.Year())
		if err != nil {
			return err
		}
		if err := s.countRepo.SaveCountInTx(ctx, tx, c); err != nil {
			return fmt.Errorf("failed to save physical count: %w", err)
		}
		count = &c
		return nil
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to submit physical count", slog.String("item_id", req.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Physical count submitted",
		slog.String("count_id", count.CountID),
		slog.Int64("system_quantity", count.SystemQuantity),
		slog.Int64("actual_quantity", count.ActualQuantity),
		slog.String("variance_type", string(count.VarianceType)))
	s.Publish(ctx, countEvent(domain.EventCountSubmitted, count, counterID))
	return count, nil
}

// VerifyCount implements portssvc.PhysicalCountSvcFacade
func (s *countService) VerifyCount(ctx context.Context, countID string, verifierID string) (*domain.PhysicalCount, error) {
	var count *domain.PhysicalCount
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		count, err = s.countRepo.FindCountByIDForUpdate(ctx, tx, countID)
		if err != nil {
			return err
		}
		if err := count.Verify(verifierID, s.Now()); err != nil {
			return err
		}
		return s.countRepo.UpdateCountInTx(ctx, tx, *count)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to verify physical count", slog.String("count_id", countID))
		return nil, err
	}

	s.LogInfo(ctx, "Physical count verified", slog.String("count_id", countID))
	s.Publish(ctx, countEvent(domain.EventCountVerified, count, verifierID))
	return count, nil
}

// GetCountByID implements portssvc.PhysicalCountSvcFacade
func (s *countService) GetCountByID(ctx context.Context, countID string) (*domain.PhysicalCount, error) {
	count, err := s.countRepo.FindCountByID(ctx, countID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find physical count", slog.String("count_id", countID))
		}
		return nil, err
	}
	return count, nil
}

// ListCounts implements portssvc.PhysicalCountSvcFacade
func (s *countService) ListCounts(ctx context.Context, params dto.ListCountsParams) ([]domain.PhysicalCount, error) {
	counts, err := s.countRepo.ListCounts(ctx, domain.CountFilter{
		ItemID: params.ItemID,
		Status: domain.CountStatus(params.Status),
		Limit:  clampLimit(params.Limit),
		Offset: max(params.Offset, 0),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list physical counts")
		return nil, err
	}
	return counts, nil
}

func countEvent(t domain.EventType, c *domain.PhysicalCount, actorID string) domain.LedgerEvent {
	return domain.LedgerEvent{
		Type:      t,
		ActorID:   actorID,
		ItemID:    c.ItemID,
		EntityID:  c.CountID,
		Reference: c.CountNumber,
		Attributes: map[string]string{
			"system_quantity": strconv.FormatInt(c.SystemQuantity, 10),
			"actual_quantity": strconv.FormatInt(c.ActualQuantity, 10),
			"variance":        strconv.FormatInt(c.Variance, 10),
			"variance_type":   string(c.VarianceType),
		},
	}
}
