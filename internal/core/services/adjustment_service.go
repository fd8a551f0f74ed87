package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

// adjustmentService runs the Pending -> Approved|Rejected workflow.
type adjustmentService struct {
	BaseService
	uow            portsrepo.UnitOfWork
	itemRepo       portsrepo.ItemRepositoryFacade
	ledgerRepo     portsrepo.StockLedgerRepositoryFacade
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	countRepo      portsrepo.PhysicalCountRepositoryFacade
	ledgerSvc      portssvc.StockLedgerWriterSvc
	sequenceSvc    portssvc.SequenceSvc
}

// AdjustmentDeps bundles the collaborators of the adjustment service.
type AdjustmentDeps struct {
	UnitOfWork     portsrepo.UnitOfWork
	ItemRepo       portsrepo.ItemRepositoryFacade
	LedgerRepo     portsrepo.StockLedgerRepositoryFacade
	AdjustmentRepo portsrepo.AdjustmentRepositoryFacade
	CountRepo      portsrepo.PhysicalCountRepositoryFacade
	Ledger         portssvc.StockLedgerWriterSvc
	Sequence       portssvc.SequenceSvc
}

// NewAdjustmentService creates a new AdjustmentSvcFacade.
func NewAdjustmentService(deps AdjustmentDeps, opts ...Option) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		BaseService:    newBaseService(opts...),
		uow:            deps.UnitOfWork,
		itemRepo:       deps.ItemRepo,
		ledgerRepo:     deps.LedgerRepo,
		adjustmentRepo: deps.AdjustmentRepo,
		countRepo:      deps.CountRepo,
		ledgerSvc:      deps.Ledger,
		sequenceSvc:    deps.Sequence,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

// GetAdjustmentByID implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) GetAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error) {
	adj, err := s.adjustmentRepo.FindAdjustmentByID(ctx, adjustmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find adjustment", slog.String("adjustment_id", adjustmentID))
		}
		return nil, err
	}
	return adj, nil
}

// ListAdjustments implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) ListAdjustments(ctx context.Context, params dto.ListAdjustmentsParams) ([]domain.AdjustmentCase, error) {
	filter := domain.AdjustmentFilter{
		ItemID: params.ItemID,
		Status: domain.AdjustmentStatus(params.Status),
		Limit:  clampLimit(params.Limit),
		Offset: max(params.Offset, 0),
	}
	cases, err := s.adjustmentRepo.ListAdjustments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments")
		return nil, err
	}
	return cases, nil
}

// ProposeAdjustment implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) ProposeAdjustment(ctx context.Context, req dto.ProposeAdjustmentRequest, preparerID string) (*domain.AdjustmentCase, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: adjustment reason is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateAdjustmentDelta(req.AdjustmentType, req.Delta); err != nil {
		return nil, err
	}
	return s.propose(ctx, req.ItemID, req.AdjustmentType, req.Delta, reason, nil, preparerID)
}

// ProposeFromCount implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) ProposeFromCount(ctx context.Context, countID string, preparerID string) (*domain.AdjustmentCase, error) {
	var adj *domain.AdjustmentCase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		count, err := s.countRepo.FindCountByIDForUpdate(ctx, tx, countID)
		if err != nil {
			return err
		}
		if count.Status != domain.CountVerified {
			return &apperrors.StateError{Entity: "physical count", ID: count.CountID, Action: "file an adjustment from", Current: string(count.Status)}
		}
		if count.Variance == 0 {
			return fmt.Errorf("%w: physical count %s has no variance to adjust", apperrors.ErrValidation, count.CountNumber)
		}
		exists, err := s.adjustmentRepo.OpenAdjustmentExistsForCountInTx(ctx, tx, count.CountID)
		if err != nil {
			return fmt.Errorf("failed to check adjustments for count: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: physical count %s already has an open adjustment", apperrors.ErrDuplicate, count.CountNumber)
		}

		reason := fmt.Sprintf("Physical count %s %s of %d", count.CountNumber, strings.ToLower(string(count.VarianceType)), abs(count.Variance))
		adj, err = s.proposeInTx(ctx, tx, count.ItemID, domain.AdjustmentTypeForDelta(count.Variance), count.Variance, reason, &count.CountID, preparerID)
		return err
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to propose adjustment from count", slog.String("count_id", countID))
		return nil, err
	}

	s.LogInfo(ctx, "Adjustment proposed from physical count",
		slog.String("adjustment_id", adj.AdjustmentID),
		slog.String("count_id", countID))
	s.Publish(ctx, adjustmentEvent(domain.EventAdjustmentProposed, adj, preparerID))
	return adj, nil
}

func (s *adjustmentService) propose(ctx context.Context, itemID string, t domain.AdjustmentType, delta int64, reason string, sourceCountID *string, preparerID string) (*domain.AdjustmentCase, error) {
	var adj *domain.AdjustmentCase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		adj, err = s.proposeInTx(ctx, tx, itemID, t, delta, reason, sourceCountID, preparerID)
		return err
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to propose adjustment", slog.String("item_id", itemID))
		return nil, err
	}

	s.LogInfo(ctx, "Adjustment proposed",
		slog.String("adjustment_id", adj.AdjustmentID),
		slog.String("adjustment_number", adj.AdjustmentNumber),
		slog.Int64("delta", adj.Delta))
	s.Publish(ctx, adjustmentEvent(domain.EventAdjustmentProposed, adj, preparerID))
	return adj, nil
}

func (s *adjustmentService) proposeInTx(ctx context.Context, tx pgx.Tx, itemID string, t domain.AdjustmentType, delta int64, reason string, sourceCountID *string, preparerID string) (*domain.AdjustmentCase, error) {
	balance, err := s.lockedBalance(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	adj := domain.AdjustmentCase{
		AdjustmentID:   s.NewID(),
		ItemID:         itemID,
		AdjustmentType: t,
		Delta:          delta,
		Reason:         reason,
		Status:         domain.AdjustmentPending,
		PreparedBy:     preparerID,
		SourceCountID:  sourceCountID,
		AuditFields:    domain.NewAuditFields(preparerID, now),
	}
	if err := adj.Snapshot(balance); err != nil {
		return nil, err
	}

	number, err := s.sequenceSvc.NextInTx(ctx, tx, domain.SequenceAdjustment, now.Year())
	if err != nil {
		return nil, err
	}
	adj.AdjustmentNumber = number

	if err := s.adjustmentRepo.SaveAdjustmentInTx(ctx, tx, adj); err != nil {
		return nil, fmt.Errorf("failed to save adjustment: %w", err)
	}
	return &adj, nil
}

// lockedBalance locks the item and returns the balance of its latest committed entry.
func (s *adjustmentService) lockedBalance(ctx context.Context, tx pgx.Tx, itemID string) (int64, error) {
	if _, err := s.itemRepo.FindItemByIDForUpdate(ctx, tx, itemID); err != nil {
		return 0, err
	}
	latest, err := s.ledgerRepo.FindLatestEntryInTx(ctx, tx, itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest stock card entry: %w", err)
	}
	return domain.BalanceOf(latest), nil
}

// UpdateAdjustment implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) UpdateAdjustment(ctx context.Context, adjustmentID string, req dto.UpdateAdjustmentRequest, userID string) (*domain.AdjustmentCase, error) {
	var adj *domain.AdjustmentCase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		adj, err = s.adjustmentRepo.FindAdjustmentByIDForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return err
		}
		if err := adj.CanModify("update"); err != nil {
			return err
		}

		if adj.SourceCountID != nil && changesMovement(adj, req) {
			return fmt.Errorf("%w: adjustment %s follows physical count %s, its type and delta cannot change",
				apperrors.ErrValidation, adj.AdjustmentNumber, *adj.SourceCountID)
		}
		if req.AdjustmentType != nil {
			adj.AdjustmentType = *req.AdjustmentType
		}
		if req.Delta != nil {
			adj.Delta = *req.Delta
		}
		if req.Reason != nil {
			reason := strings.TrimSpace(*req.Reason)
			if reason == "" {
				return fmt.Errorf("%w: adjustment reason is required", apperrors.ErrValidation)
			}
			adj.Reason = reason
		}
		if err := domain.ValidateAdjustmentDelta(adj.AdjustmentType, adj.Delta); err != nil {
			return err
		}

		// The snapshot always reflects the ledger the preparer last looked at.
		balance, err := s.lockedBalance(ctx, tx, adj.ItemID)
		if err != nil {
			return err
		}
		if err := adj.Snapshot(balance); err != nil {
			return err
		}
		adj.Touch(userID, s.Now())
		return s.adjustmentRepo.UpdateAdjustmentInTx(ctx, tx, *adj)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to update adjustment", slog.String("adjustment_id", adjustmentID))
		return nil, err
	}
	s.LogInfo(ctx, "Adjustment updated", slog.String("adjustment_id", adjustmentID))
	return adj, nil
}

// DeleteAdjustment implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) DeleteAdjustment(ctx context.Context, adjustmentID string, userID string) error {
	var adj *domain.AdjustmentCase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		adj, err = s.adjustmentRepo.FindAdjustmentByIDForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return err
		}
		if err := adj.CanModify("delete"); err != nil {
			return err
		}
		return s.adjustmentRepo.DeleteAdjustmentInTx(ctx, tx, adjustmentID)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to delete adjustment", slog.String("adjustment_id", adjustmentID))
		return err
	}
	s.LogInfo(ctx, "Adjustment deleted", slog.String("adjustment_id", adjustmentID))
	s.Publish(ctx, adjustmentEvent(domain.EventAdjustmentDeleted, adj, userID))
	return nil
}

// ApproveAdjustment implements portssvc.AdjustmentSvcFacade. The original
// delta is applied to the balance at approval time; the proposal snapshot is
// kept unchanged as a record of what the preparer saw.
func (s *adjustmentService) ApproveAdjustment(ctx context.Context, adjustmentID string, approverID string) (*domain.AdjustmentCase, error) {
	var (
		adj   *domain.AdjustmentCase
		entry *domain.StockCard
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		// The case row lock makes a concurrent second approval wait and then
		// observe the Approved status.
		adj, err = s.adjustmentRepo.FindAdjustmentByIDForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return err
		}
		if err := adj.CanModify("approve"); err != nil {
			return err
		}

		now := s.Now()
		entry, err = s.ledgerSvc.AppendInTx(ctx, tx, adj.LedgerMovement(approverID, now))
		if err != nil {
			return err
		}
		if err := adj.Approve(approverID, entry.EntryID, now); err != nil {
			return err
		}
		return s.adjustmentRepo.UpdateAdjustmentInTx(ctx, tx, *adj)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to approve adjustment", slog.String("adjustment_id", adjustmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Adjustment approved",
		slog.String("adjustment_id", adjustmentID),
		slog.String("entry_id", entry.EntryID),
		slog.Int64("balance", entry.Balance))
	event := adjustmentEvent(domain.EventAdjustmentApproved, adj, approverID)
	event.Attributes["entry_id"] = entry.EntryID
	event.Attributes["balance"] = strconv.FormatInt(entry.Balance, 10)
	s.Publish(ctx, event)
	s.Publish(ctx, movementEvent(entry))
	return adj, nil
}

// RejectAdjustment implements portssvc.AdjustmentSvcFacade
func (s *adjustmentService) RejectAdjustment(ctx context.Context, adjustmentID string, reason string, userID string) (*domain.AdjustmentCase, error) {
	var adj *domain.AdjustmentCase
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		adj, err = s.adjustmentRepo.FindAdjustmentByIDForUpdate(ctx, tx, adjustmentID)
		if err != nil {
			return err
		}
		if err := adj.Reject(userID, reason, s.Now()); err != nil {
			return err
		}
		return s.adjustmentRepo.UpdateAdjustmentInTx(ctx, tx, *adj)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to reject adjustment", slog.String("adjustment_id", adjustmentID))
		return nil, err
	}
	s.LogInfo(ctx, "Adjustment rejected", slog.String("adjustment_id", adjustmentID))
	s.Publish(ctx, adjustmentEvent(domain.EventAdjustmentRejected, adj, userID))
	return adj, nil
}

func adjustmentEvent(t domain.EventType, adj *domain.AdjustmentCase, actorID string) domain.LedgerEvent {
	return domain.LedgerEvent{
		Type:      t,
		ActorID:   actorID,
		ItemID:    adj.ItemID,
		EntityID:  adj.AdjustmentID,
		Reference: adj.AdjustmentNumber,
		Attributes: map[string]string{
			"adjustment_type": string(adj.AdjustmentType),
			"delta":           strconv.FormatInt(adj.Delta, 10),
			"status":          string(adj.Status),
		},
	}
}

// changesMovement reports whether req edits the type or delta of adj.
func changesMovement(adj *domain.AdjustmentCase, req dto.UpdateAdjustmentRequest) bool {
	return (req.AdjustmentType != nil && *req.AdjustmentType != adj.AdjustmentType) ||
		(req.Delta != nil && *req.Delta != adj.Delta)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return min(limit, maxPageSize)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
