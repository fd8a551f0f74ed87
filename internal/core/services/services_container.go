package services

import (
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// opts apply to every service, so they share one clock and one event publisher.
func NewServiceContainer(repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Sequence and ledger first since the workflows append through them
	container.Sequence = NewSequenceService(repos.UnitOfWork, repos.SequenceRepo, opts...)
	container.Ledger = NewLedgerService(repos.UnitOfWork, repos.ItemRepo, repos.LedgerRepo, opts...)

	container.Adjustment = NewAdjustmentService(AdjustmentDeps{
		UnitOfWork:     repos.UnitOfWork,
		ItemRepo:       repos.ItemRepo,
		LedgerRepo:     repos.LedgerRepo,
		AdjustmentRepo: repos.AdjustmentRepo,
		CountRepo:      repos.CountRepo,
		Ledger:         container.Ledger,
		Sequence:       container.Sequence,
	}, opts...)
	container.Count = NewPhysicalCountService(repos.UnitOfWork, repos.ItemRepo, repos.LedgerRepo, repos.CountRepo, container.Sequence, opts...)
	container.Tagging = NewAssetTaggingService(repos.UnitOfWork, repos.ItemRepo, container.Ledger, container.Sequence, opts...)
	container.Item = NewItemService(repos.UnitOfWork, repos.ItemRepo, container.Sequence, opts...)
	container.Auditor = NewLedgerAuditService(repos.ItemRepo, repos.LedgerRepo, opts...)

	return container
}
