package pgsql

import (
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, uowOpts ...UnitOfWorkOption) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:     newPgxUnitOfWork(dbPool, uowOpts...),
		ItemRepo:       newPgxItemRepository(dbPool),
		LedgerRepo:     newPgxStockLedgerRepository(dbPool),
		AdjustmentRepo: newPgxAdjustmentRepository(dbPool),
		CountRepo:      newPgxPhysicalCountRepository(dbPool),
		SequenceRepo:   newPgxSequenceRepository(dbPool),
	}
}
