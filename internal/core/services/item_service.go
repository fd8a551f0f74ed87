package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

// itemService manages the item catalog. It never writes balances.
type itemService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	itemRepo    portsrepo.ItemRepositoryFacade
	sequenceSvc portssvc.SequenceSvc
}

// NewItemService creates a new ItemSvcFacade.
func NewItemService(uow portsrepo.UnitOfWork, itemRepo portsrepo.ItemRepositoryFacade, sequenceSvc portssvc.SequenceSvc, opts ...Option) portssvc.ItemSvcFacade {
	return &itemService{
		BaseService: newBaseService(opts...),
		uow:         uow,
		itemRepo:    itemRepo,
		sequenceSvc: sequenceSvc,
	}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem implements portssvc.ItemSvcFacade
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", apperrors.ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}
	condition := req.Condition
	if condition == "" {
		condition = domain.ConditionServiceable
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("%w: unknown condition %q", apperrors.ErrValidation, condition)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.Classify(name + " " + req.Description)
	}

	now := s.Now()
	item := domain.InventoryItem{
		ItemID:          s.NewID(),
		SerialNumber:    trimmedOrNil(req.SerialNumber),
		Name:            name,
		Description:     req.Description,
		Category:        category,
		UnitOfMeasure:   req.UnitOfMeasure,
		UnitCost:        req.UnitCost,
		BrandModel:      req.BrandModel,
		Condition:       condition,
		Status:          domain.ItemActive,
		FundSource:      req.FundSource,
		Supplier:        req.Supplier,
		AcquisitionDate: now,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	if req.AcquisitionDate != nil {
		item.AcquisitionDate = req.AcquisitionDate.UTC()
	}
	if item.RequiresTagging() {
		years := domain.UsefulLifeYears(category)
		item.UsefulLifeYears = &years
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		code, err := s.sequenceSvc.NextInTx(ctx, tx, domain.ItemCodePrefix(category), item.AcquisitionDate.Year())
		if err != nil {
			return err
		}
		item.ItemCode = code
		return s.itemRepo.SaveItemInTx(ctx, tx, item)
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to create item", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("item_code", item.ItemCode))
	return &item, nil
}

// GetItemByID implements portssvc.ItemSvcFacade
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find item", slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

// ListItems implements portssvc.ItemSvcFacade
func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error) {
	items, err := s.itemRepo.ListItems(ctx, domain.ItemFilter{
		Category: params.Category,
		Status:   domain.ItemStatus(params.Status),
		Search:   strings.TrimSpace(params.Search),
		Limit:    clampLimit(params.Limit),
		Offset:   max(params.Offset, 0),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list items")
		return nil, err
	}
	return items, nil
}

// UpdateItem implements portssvc.ItemSvcFacade. Codes, tags, category and
// quantities are not editable here.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.InventoryItem, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item name must not be empty", apperrors.ErrValidation)
		}
		item.Name = name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitOfMeasure != nil {
		item.UnitOfMeasure = *req.UnitOfMeasure
	}
	if req.UnitCost != nil {
		if req.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
		}
		item.UnitCost = *req.UnitCost
	}
	if req.BrandModel != nil {
		item.BrandModel = *req.BrandModel
	}
	if req.Condition != nil {
		if !req.Condition.IsValid() {
			return nil, fmt.Errorf("%w: unknown condition %q", apperrors.ErrValidation, *req.Condition)
		}
		item.Condition = *req.Condition
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		item.Status = *req.Status
	}
	if req.FundSource != nil {
		item.FundSource = *req.FundSource
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	item.Touch(userID, s.Now())

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.logRefusal(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, err
	}
	s.LogInfo(ctx, "Item updated", slog.String("item_id", itemID))
	return item, nil
}
