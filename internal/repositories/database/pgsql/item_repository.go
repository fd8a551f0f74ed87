package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `item_id, item_code, property_number, serial_number, name, description, category,
	unit_of_measure, unit_cost, brand_model, quantity_at_creation, condition, status, fund_source,
	supplier, acquisition_date, delivery_reference, useful_life_years,
	created_at, created_by, last_updated_at, last_updated_by`

const (
	constraintItemPropertyNumber = "inventory_items_property_number_key"
	constraintItemCode           = "inventory_items_item_code_key"
)

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func scanItem(row rowScanner) (*domain.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.ItemCode,
		&m.PropertyNumber,
		&m.SerialNumber,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.UnitOfMeasure,
		&m.UnitCost,
		&m.BrandModel,
		&m.QuantityAtCreation,
		&m.Condition,
		&m.Status,
		&m.FundSource,
		&m.Supplier,
		&m.AcquisitionDate,
		&m.DeliveryReference,
		&m.UsefulLifeYears,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}

func findItem(ctx context.Context, q querier, itemID string, forUpdate bool) (*domain.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE item_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	item, err := scanItem(q.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("item " + itemID)
		}
		return nil, fmt.Errorf("failed to query item %s: %w", itemID, err)
	}
	return item, nil
}

// FindItemByID retrieves an item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	return findItem(ctx, r.Pool, itemID, false)
}

// FindItemByIDForUpdate locks the item row. Every stock card append for the
// item goes through this lock.
func (r *PgxItemRepository) FindItemByIDForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.InventoryItem, error) {
	return findItem(ctx, tx, itemID, true)
}

// ListItems retrieves a page of items, newest first.
func (r *PgxItemRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR item_code ILIKE $%d OR property_number ILIKE $%d)", n, n, n, n))
	}

	query := `SELECT ` + itemColumns + ` FROM inventory_items`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, item_id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}
	return items, nil
}

// ListItemIDs returns every item id, oldest first.
func (r *PgxItemRepository) ListItemIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT item_id FROM inventory_items ORDER BY created_at, item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list item ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect item ids: %w", err)
	}
	return ids, nil
}

// SaveItemInTx inserts a new item.
func (r *PgxItemRepository) SaveItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) error {
	m := mapping.ToModelItem(item)
	query := `INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := tx.Exec(ctx, query,
		m.ItemID,
		m.ItemCode,
		m.PropertyNumber,
		m.SerialNumber,
		m.Name,
		m.Description,
		m.Category,
		m.UnitOfMeasure,
		m.UnitCost,
		m.BrandModel,
		m.QuantityAtCreation,
		m.Condition,
		m.Status,
		m.FundSource,
		m.Supplier,
		m.AcquisitionDate,
		m.DeliveryReference,
		m.UsefulLifeYears,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintItemPropertyNumber):
			return fmt.Errorf("%w: property number %s is already assigned", apperrors.ErrDuplicate, *m.PropertyNumber)
		case isUniqueViolation(err, constraintItemCode):
			return fmt.Errorf("%w: item code %s already exists", apperrors.ErrDuplicate, m.ItemCode)
		}
		return fmt.Errorf("failed to save item %s: %w", m.ItemID, err)
	}
	return nil
}

// UpdateItem updates catalog attributes only.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelItem(item)
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category = $4, unit_of_measure = $5, unit_cost = $6,
		    brand_model = $7, condition = $8, status = $9, fund_source = $10, supplier = $11,
		    useful_life_years = $12, last_updated_at = $13, last_updated_by = $14
		WHERE item_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Description,
		m.Category,
		m.UnitOfMeasure,
		m.UnitCost,
		m.BrandModel,
		m.Condition,
		m.Status,
		m.FundSource,
		m.Supplier,
		m.UsefulLifeYears,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + m.ItemID)
	}
	return nil
}

// PropertyNumberTakenInTx reports whether an item other than exceptItemID carries propertyNumber.
func (r *PgxItemRepository) PropertyNumberTakenInTx(ctx context.Context, tx pgx.Tx, propertyNumber string, exceptItemID string) (bool, error) {
	var taken bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory_items WHERE property_number = $1 AND item_id <> $2)`,
		propertyNumber, exceptItemID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check property number %s: %w", propertyNumber, err)
	}
	return taken, nil
}

// UpdateItemTagInTx stores the serial and property numbers of an item.
func (r *PgxItemRepository) UpdateItemTagInTx(ctx context.Context, tx pgx.Tx, itemID string, serialNumber, propertyNumber *string, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE inventory_items
		SET serial_number = $2, property_number = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $1`,
		itemID, serialNumber, propertyNumber, now, userID,
	)
	if err != nil {
		if isUniqueViolation(err, constraintItemPropertyNumber) {
			return fmt.Errorf("%w: property number is already assigned", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to tag item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + itemID)
	}
	return nil
}
