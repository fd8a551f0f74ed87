package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory store whose units of work run one at a time and
// roll back on error. It stands in for row locks in service tests.
type memStore struct {
	mu    sync.Mutex
	state memState
}

type memState struct {
	items       map[string]domain.InventoryItem
	itemOrder   []string
	entries     map[string][]domain.StockCard
	adjustments map[string]domain.AdjustmentCase
	counts      map[string]domain.PhysicalCount
	counters    map[string]string
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		items:       map[string]domain.InventoryItem{},
		entries:     map[string][]domain.StockCard{},
		adjustments: map[string]domain.AdjustmentCase{},
		counts:      map[string]domain.PhysicalCount{},
		counters:    map[string]string{},
	}}
}

func (s memState) clone() memState {
	c := memState{
		items:       make(map[string]domain.InventoryItem, len(s.items)),
		itemOrder:   append([]string(nil), s.itemOrder...),
		entries:     make(map[string][]domain.StockCard, len(s.entries)),
		adjustments: make(map[string]domain.AdjustmentCase, len(s.adjustments)),
		counts:      make(map[string]domain.PhysicalCount, len(s.counts)),
		counters:    make(map[string]string, len(s.counters)),
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = append([]domain.StockCard(nil), v...)
	}
	for k, v := range s.adjustments {
		c.adjustments[k] = v
	}
	for k, v := range s.counts {
		c.counts[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork:     m,
		ItemRepo:       m,
		LedgerRepo:     m,
		AdjustmentRepo: m,
		CountRepo:      m,
		SequenceRepo:   m,
	}
}

var (
	_ portsrepo.UnitOfWork                    = (*memStore)(nil)
	_ portsrepo.ItemRepositoryFacade          = (*memStore)(nil)
	_ portsrepo.StockLedgerRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.AdjustmentRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.PhysicalCountRepositoryFacade = (*memStore)(nil)
	_ portsrepo.SequenceRepository            = (*memStore)(nil)
)

func (m *memStore) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := m.state.clone()
	if err := fn(ctx, nil); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

// seedItem inserts an item outside any unit of work.
func (m *memStore) seedItem(item domain.InventoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.items[item.ItemID] = item
	m.state.itemOrder = append(m.state.itemOrder, item.ItemID)
}

func (m *memStore) entryCount(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.entries[itemID])
}

// --- items ---

func (m *memStore) FindItemByID(_ context.Context, itemID string) (*domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.state.items[itemID]
	if !ok {
		return nil, apperrors.NewNotFoundError("item " + itemID)
	}
	return &item, nil
}

func (m *memStore) ListItems(_ context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.InventoryItem
	for _, id := range m.state.itemOrder {
		item := m.state.items[id]
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *memStore) ListItemIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.state.itemOrder...), nil
}

func (m *memStore) SaveItemInTx(_ context.Context, _ pgx.Tx, item domain.InventoryItem) error {
	if _, ok := m.state.items[item.ItemID]; ok {
		return fmt.Errorf("%w: item %s", apperrors.ErrDuplicate, item.ItemID)
	}
	if err := m.checkPropertyNumber(item.PropertyNumber, item.ItemID); err != nil {
		return err
	}
	m.state.items[item.ItemID] = item
	m.state.itemOrder = append(m.state.itemOrder, item.ItemID)
	return nil
}

func (m *memStore) UpdateItem(_ context.Context, item domain.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.items[item.ItemID]; !ok {
		return apperrors.NewNotFoundError("item " + item.ItemID)
	}
	m.state.items[item.ItemID] = item
	return nil
}

func (m *memStore) FindItemByIDForUpdate(_ context.Context, _ pgx.Tx, itemID string) (*domain.InventoryItem, error) {
	item, ok := m.state.items[itemID]
	if !ok {
		return nil, apperrors.NewNotFoundError("item " + itemID)
	}
	return &item, nil
}

func (m *memStore) PropertyNumberTakenInTx(_ context.Context, _ pgx.Tx, propertyNumber string, exceptItemID string) (bool, error) {
	for id, item := range m.state.items {
		if id != exceptItemID && item.PropertyNumber != nil && *item.PropertyNumber == propertyNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) UpdateItemTagInTx(_ context.Context, _ pgx.Tx, itemID string, serialNumber, propertyNumber *string, userID string, now time.Time) error {
	item, ok := m.state.items[itemID]
	if !ok {
		return apperrors.NewNotFoundError("item " + itemID)
	}
	if err := m.checkPropertyNumber(propertyNumber, itemID); err != nil {
		return err
	}
	item.SerialNumber = serialNumber
	item.PropertyNumber = propertyNumber
	item.Touch(userID, now)
	m.state.items[itemID] = item
	return nil
}

// checkPropertyNumber mirrors the inventory_items_property_number_key constraint.
func (m *memStore) checkPropertyNumber(propertyNumber *string, itemID string) error {
	if propertyNumber == nil {
		return nil
	}
	for id, other := range m.state.items {
		if id != itemID && other.PropertyNumber != nil && *other.PropertyNumber == *propertyNumber {
			return fmt.Errorf("%w: property number %s", apperrors.ErrDuplicate, *propertyNumber)
		}
	}
	return nil
}

// --- ledger ---

func (m *memStore) FindCurrentBalance(_ context.Context, itemID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.items[itemID]; !ok {
		return 0, apperrors.NewNotFoundError("item " + itemID)
	}
	entries := m.state.entries[itemID]
	if len(entries) == 0 {
		return 0, nil
	}
	return entries[len(entries)-1].Balance, nil
}

func (m *memStore) FindBalanceAsOf(_ context.Context, itemID string, asOf time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.items[itemID]; !ok {
		return 0, apperrors.NewNotFoundError("item " + itemID)
	}
	var balance int64
	for _, e := range m.state.entries[itemID] {
		if e.CreatedAt.After(asOf) {
			break
		}
		balance = e.Balance
	}
	return balance, nil
}

func (m *memStore) ListEntries(_ context.Context, itemID string, limit int, _ *string) ([]domain.StockCard, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.state.entries[itemID]
	out := make([]domain.StockCard, 0, len(entries))
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entries[i])
	}
	return out, nil, nil
}

func (m *memStore) ListAllEntries(_ context.Context, itemID string) ([]domain.StockCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.StockCard(nil), m.state.entries[itemID]...), nil
}

func (m *memStore) FindLatestEntryInTx(_ context.Context, _ pgx.Tx, itemID string) (*domain.StockCard, error) {
	entries := m.state.entries[itemID]
	if len(entries) == 0 {
		return nil, nil
	}
	latest := entries[len(entries)-1]
	return &latest, nil
}

func (m *memStore) InsertEntryInTx(_ context.Context, _ pgx.Tx, entry domain.StockCard) error {
	for _, e := range m.state.entries[entry.ItemID] {
		if e.EntryNo == entry.EntryNo {
			return fmt.Errorf("%w: entry %d of item %s", apperrors.ErrDuplicate, entry.EntryNo, entry.ItemID)
		}
	}
	m.state.entries[entry.ItemID] = append(m.state.entries[entry.ItemID], entry)
	return nil
}

// --- adjustments ---

func (m *memStore) FindAdjustmentByID(_ context.Context, adjustmentID string) (*domain.AdjustmentCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	adj, ok := m.state.adjustments[adjustmentID]
	if !ok {
		return nil, apperrors.NewNotFoundError("adjustment " + adjustmentID)
	}
	return &adj, nil
}

func (m *memStore) ListAdjustments(_ context.Context, filter domain.AdjustmentFilter) ([]domain.AdjustmentCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.AdjustmentCase
	for _, adj := range m.state.adjustments {
		if filter.ItemID != "" && adj.ItemID != filter.ItemID {
			continue
		}
		if filter.Status != "" && adj.Status != filter.Status {
			continue
		}
		out = append(out, adj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdjustmentNumber > out[j].AdjustmentNumber })
	return out, nil
}

func (m *memStore) SaveAdjustmentInTx(_ context.Context, _ pgx.Tx, adj domain.AdjustmentCase) error {
	m.state.adjustments[adj.AdjustmentID] = adj
	return nil
}

func (m *memStore) FindAdjustmentByIDForUpdate(_ context.Context, _ pgx.Tx, adjustmentID string) (*domain.AdjustmentCase, error) {
	adj, ok := m.state.adjustments[adjustmentID]
	if !ok {
		return nil, apperrors.NewNotFoundError("adjustment " + adjustmentID)
	}
	return &adj, nil
}

func (m *memStore) UpdateAdjustmentInTx(_ context.Context, _ pgx.Tx, adj domain.AdjustmentCase) error {
	if _, ok := m.state.adjustments[adj.AdjustmentID]; !ok {
		return apperrors.NewNotFoundError("adjustment " + adj.AdjustmentID)
	}
	m.state.adjustments[adj.AdjustmentID] = adj
	return nil
}

func (m *memStore) DeleteAdjustmentInTx(_ context.Context, _ pgx.Tx, adjustmentID string) error {
	delete(m.state.adjustments, adjustmentID)
	return nil
}

func (m *memStore) OpenAdjustmentExistsForCountInTx(_ context.Context, _ pgx.Tx, countID string) (bool, error) {
	for _, adj := range m.state.adjustments {
		if adj.SourceCountID != nil && *adj.SourceCountID == countID && adj.Status != domain.AdjustmentRejected {
			return true, nil
		}
	}
	return false, nil
}

// --- counts ---

func (m *memStore) FindCountByID(_ context.Context, countID string) (*domain.PhysicalCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.counts[countID]
	if !ok {
		return nil, apperrors.NewNotFoundError("physical count " + countID)
	}
	return &c, nil
}

func (m *memStore) ListCounts(_ context.Context, filter domain.CountFilter) ([]domain.PhysicalCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PhysicalCount
	for _, c := range m.state.counts {
		if filter.ItemID != "" && c.ItemID != filter.ItemID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) SaveCountInTx(_ context.Context, _ pgx.Tx, c domain.PhysicalCount) error {
	m.state.counts[c.CountID] = c
	return nil
}

func (m *memStore) FindCountByIDForUpdate(_ context.Context, _ pgx.Tx, countID string) (*domain.PhysicalCount, error) {
	c, ok := m.state.counts[countID]
	if !ok {
		return nil, apperrors.NewNotFoundError("physical count " + countID)
	}
	return &c, nil
}

func (m *memStore) UpdateCountInTx(_ context.Context, _ pgx.Tx, c domain.PhysicalCount) error {
	m.state.counts[c.CountID] = c
	return nil
}

// --- sequences ---

func (m *memStore) LockCounterInTx(_ context.Context, _ pgx.Tx, scope domain.SequenceScope) (string, error) {
	return m.state.counters[scope.String()], nil
}

func (m *memStore) AdvanceCounterInTx(_ context.Context, _ pgx.Tx, scope domain.SequenceScope, _ int64, code string) error {
	m.state.counters[scope.String()] = code
	return nil
}

func (m *memStore) setCounter(scope string, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.counters[scope] = code
}
