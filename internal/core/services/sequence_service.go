package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// sequenceService issues codes from durable, row-locked counters.
type sequenceService struct {
	BaseService
	uow  portsrepo.UnitOfWork
	repo portsrepo.SequenceRepository
}

// NewSequenceService creates a new SequenceSvc.
func NewSequenceService(uow portsrepo.UnitOfWork, repo portsrepo.SequenceRepository, opts ...Option) portssvc.SequenceSvc {
	return &sequenceService{
		BaseService: newBaseService(opts...),
		uow:         uow,
		repo:        repo,
	}
}

var _ portssvc.SequenceSvc = (*sequenceService)(nil)

// Next implements portssvc.SequenceSvc
func (s *sequenceService) Next(ctx context.Context, category string, year int, userID string) (string, error) {
	if _, err := domain.NewSequenceScope(category, year); err != nil {
		return "", err
	}

	var code string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		code, err = s.NextInTx(ctx, tx, category, year)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to issue sequence code", slog.String("category", category), slog.Int("year", year))
		return "", err
	}

	s.LogInfo(ctx, "Sequence code issued", slog.String("code", code))
	s.Publish(ctx, domain.LedgerEvent{
		Type:      domain.EventSequenceIssued,
		ActorID:   userID,
		EntityID:  code,
		Reference: code,
	})
	return code, nil
}

// NextInTx implements portssvc.SequenceSvc
func (s *sequenceService) NextInTx(ctx context.Context, tx pgx.Tx, category string, year int) (string, error) {
	scope, err := domain.NewSequenceScope(category, year)
	if err != nil {
		return "", err
	}

	last, err := s.repo.LockCounterInTx(ctx, tx, scope)
	if err != nil {
		return "", fmt.Errorf("failed to lock sequence %s: %w", scope, err)
	}

	code, value, err := scope.Next(last)
	if err != nil {
		// A counter we cannot parse is never restarted at 1.
		s.LogError(ctx, err, "Sequence counter is corrupted", slog.String("scope", scope.String()), slog.String("last_code", last))
		return "", err
	}

	if err := s.repo.AdvanceCounterInTx(ctx, tx, scope, value, code); err != nil {
		return "", fmt.Errorf("failed to advance sequence %s: %w", scope, err)
	}
	return code, nil
}

// ReserveInTx implements portssvc.SequenceSvc
func (s *sequenceService) ReserveInTx(ctx context.Context, tx pgx.Tx, code string) error {
	scope, value, err := domain.ParseSequenceCode(code)
	if err != nil {
		return err
	}

	last, err := s.repo.LockCounterInTx(ctx, tx, scope)
	if err != nil {
		return fmt.Errorf("failed to lock sequence %s: %w", scope, err)
	}
	if last != "" {
		lastValue, err := scope.Parse(last)
		if err != nil {
			s.LogError(ctx, err, "Sequence counter is corrupted", slog.String("scope", scope.String()), slog.String("last_code", last))
			return err
		}
		if lastValue >= value {
			return nil
		}
	}

	if err := s.repo.AdvanceCounterInTx(ctx, tx, scope, value, scope.Format(value)); err != nil {
		return fmt.Errorf("failed to advance sequence %s: %w", scope, err)
	}
	s.LogDebug(ctx, "Sequence counter raised to a reserved code", slog.String("scope", scope.String()), slog.String("code", code))
	return nil
}
