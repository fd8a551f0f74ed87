package mapping

import (
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
)

// ToModelStockCard converts a domain StockCard to a model StockCard
func ToModelStockCard(d domain.StockCard) models.StockCard {
	return models.StockCard{
		EntryID:         d.EntryID,
		ItemID:          d.ItemID,
		EntryNo:         d.EntryNo,
		TransactionDate: d.TransactionDate,
		TransactionType: string(d.TransactionType),
		QuantityIn:      d.QuantityIn,
		QuantityOut:     d.QuantityOut,
		UnitCost:        d.UnitCost,
		Balance:         d.Balance,
		ReferenceNumber: d.ReferenceNumber,
		ProcessedBy:     d.ProcessedBy,
		Remarks:         d.Remarks,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainStockCard converts a model StockCard to a domain StockCard
func ToDomainStockCard(m models.StockCard) domain.StockCard {
	return domain.StockCard{
		EntryID:         m.EntryID,
		ItemID:          m.ItemID,
		EntryNo:         m.EntryNo,
		TransactionDate: m.TransactionDate,
		TransactionType: domain.TransactionType(m.TransactionType),
		QuantityIn:      m.QuantityIn,
		QuantityOut:     m.QuantityOut,
		UnitCost:        m.UnitCost,
		Balance:         m.Balance,
		ReferenceNumber: m.ReferenceNumber,
		ProcessedBy:     m.ProcessedBy,
		Remarks:         m.Remarks,
		CreatedAt:       m.CreatedAt,
	}
}
