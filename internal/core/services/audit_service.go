package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
)

// ledgerAuditService re-walks every stock card and reports broken chains.
// It only reads; a broken chain is never repaired automatically.
type ledgerAuditService struct {
	BaseService
	itemRepo   portsrepo.ItemReader
	ledgerRepo portsrepo.StockLedgerReader
}

// NewLedgerAuditService creates a new LedgerAuditor.
func NewLedgerAuditService(itemRepo portsrepo.ItemReader, ledgerRepo portsrepo.StockLedgerReader, opts ...Option) portssvc.LedgerAuditor {
	return &ledgerAuditService{
		BaseService: newBaseService(opts...),
		itemRepo:    itemRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerAuditor = (*ledgerAuditService)(nil)

// AuditAll implements portssvc.LedgerAuditor
func (s *ledgerAuditService) AuditAll(ctx context.Context) ([]domain.LedgerAudit, error) {
	ids, err := s.itemRepo.ListItemIDs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items for ledger audit")
		return nil, err
	}

	audits := make([]domain.LedgerAudit, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return audits, err
		}
		audit, err := auditItem(ctx, s.ledgerRepo, id)
		if err != nil {
			s.LogError(ctx, err, "Failed to audit stock card", slog.String("item_id", id))
			return audits, err
		}
		if !audit.Healthy() {
			s.GetLogger(ctx).Warn("Stock card chain is broken",
				slog.String("item_id", id),
				slog.Int("violations", len(audit.Violations)))
		}
		audits = append(audits, *audit)
	}
	return audits, nil
}
