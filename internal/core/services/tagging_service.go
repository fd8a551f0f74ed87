package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
)

// taggingService turns delivery lines into items and assigns durable identifiers.
type taggingService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	itemRepo    portsrepo.ItemRepositoryFacade
	ledgerSvc   portssvc.StockLedgerWriterSvc
	sequenceSvc portssvc.SequenceSvc
}

// NewAssetTaggingService creates a new AssetTaggingSvcFacade.
func NewAssetTaggingService(uow portsrepo.UnitOfWork, itemRepo portsrepo.ItemRepositoryFacade, ledgerSvc portssvc.StockLedgerWriterSvc, sequenceSvc portssvc.SequenceSvc, opts ...Option) portssvc.AssetTaggingSvcFacade {
	return &taggingService{
		BaseService: newBaseService(opts...),
		uow:         uow,
		itemRepo:    itemRepo,
		ledgerSvc:   ledgerSvc,
		sequenceSvc: sequenceSvc,
	}
}

var _ portssvc.AssetTaggingSvcFacade = (*taggingService)(nil)

// Classify implements portssvc.AssetTaggingSvcFacade
func (s *taggingService) Classify(description string) string {
	return domain.Classify(description)
}

// RequiresTagging implements portssvc.AssetTaggingSvcFacade
func (s *taggingService) RequiresTagging(category string) bool {
	return domain.RequiresTagging(category)
}

// MaterializeDelivery implements portssvc.AssetTaggingSvcFacade. The item and
// its opening Receipt commit together. Property numbers are left for AssignTag.
func (s *taggingService) MaterializeDelivery(ctx context.Context, line domain.DeliveryLine, userID string) (*domain.InventoryItem, error) {
	description := strings.TrimSpace(line.Description)
	switch {
	case description == "":
		return nil, fmt.Errorf("%w: delivery line description is required", apperrors.ErrValidation)
	case line.Quantity <= 0:
		return nil, fmt.Errorf("%w: delivered quantity must be positive", apperrors.ErrValidation)
	case line.UnitPrice.IsNegative():
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	case strings.TrimSpace(line.ReferenceNumber) == "":
		return nil, fmt.Errorf("%w: delivery reference number is required", apperrors.ErrValidation)
	}

	category := domain.Classify(description)
	now := s.Now()
	acquired := line.DeliveryDate.UTC()
	if acquired.IsZero() {
		acquired = now
	}
	unit := line.UnitOfMeasure
	if unit == "" {
		unit = "unit"
	}

	item := domain.InventoryItem{
		ItemID:             s.NewID(),
		Name:               description,
		Description:        description,
		Category:           category,
		UnitOfMeasure:      unit,
		UnitCost:           line.UnitPrice,
		BrandModel:         line.BrandModel,
		QuantityAtCreation: line.Quantity,
		Condition:          domain.ConditionServiceable,
		Status:             domain.ItemActive,
		FundSource:         line.FundSource,
		Supplier:           line.Supplier,
		AcquisitionDate:    acquired,
		DeliveryReference:  line.ReferenceNumber,
		AuditFields:        domain.NewAuditFields(userID, now),
	}
	if item.RequiresTagging() {
		years := domain.UsefulLifeYears(category)
		item.UsefulLifeYears = &years
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		code, err := s.sequenceSvc.NextInTx(ctx, tx, domain.ItemCodePrefix(category), acquired.Year())
		if err != nil {
			return err
		}
		item.ItemCode = code
		if err := s.itemRepo.SaveItemInTx(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to save item: %w", err)
		}
		_, err = s.ledgerSvc.AppendInTx(ctx, tx, domain.Movement{
			ItemID:          item.ItemID,
			Type:            domain.Receipt,
			QuantityIn:      line.Quantity,
			UnitCost:        line.UnitPrice,
			TransactionDate: acquired,
			ReferenceNumber: line.ReferenceNumber,
			Remarks:         "Initial receipt from delivery",
			ProcessedBy:     userID,
		})
		return err
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to materialize delivery line", slog.String("reference", line.ReferenceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Item materialized from delivery",
		slog.String("item_id", item.ItemID),
		slog.String("item_code", item.ItemCode),
		slog.String("category", category),
		slog.Bool("requires_tagging", item.RequiresTagging()))
	s.Publish(ctx, domain.LedgerEvent{
		Type:      domain.EventItemMaterialized,
		ActorID:   userID,
		ItemID:    item.ItemID,
		EntityID:  item.ItemID,
		Reference: line.ReferenceNumber,
		Attributes: map[string]string{
			"item_code": item.ItemCode,
			"category":  category,
		},
	})
	return &item, nil
}

// AssignTag implements portssvc.AssetTaggingSvcFacade
func (s *taggingService) AssignTag(ctx context.Context, itemID string, serialNumber, propertyNumber *string, userID string) (*domain.InventoryItem, error) {
	serial := trimmedOrNil(serialNumber)
	requested := trimmedOrNil(propertyNumber)
	if requested != nil {
		if err := domain.ValidatePropertyNumber(*requested); err != nil {
			return nil, err
		}
	}

	var item *domain.InventoryItem
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		item, err = s.itemRepo.FindItemByIDForUpdate(ctx, tx, itemID)
		if err != nil {
			return err
		}

		assigned := item.PropertyNumber
		switch {
		case requested != nil:
			if item.HasPropertyNumber() && *item.PropertyNumber != *requested {
				return &apperrors.StateError{Entity: "item", ID: item.ItemID, Action: "re-tag", Current: "tagged " + *item.PropertyNumber}
			}
			taken, err := s.itemRepo.PropertyNumberTakenInTx(ctx, tx, *requested, item.ItemID)
			if err != nil {
				return fmt.Errorf("failed to check property number: %w", err)
			}
			if taken {
				return fmt.Errorf("%w: property number %s is already assigned", apperrors.ErrDuplicate, *requested)
			}
			if err := s.sequenceSvc.ReserveInTx(ctx, tx, *requested); err != nil {
				return err
			}
			assigned = requested
		case item.HasPropertyNumber():
			// keep the existing number
		case item.RequiresTagging():
			code, err := s.nextFreePropertyNumber(ctx, tx, item.ItemID)
			if err != nil {
				return err
			}
			assigned = &code
		case serial == nil:
			return fmt.Errorf("%w: %s items are not tracked as assets", apperrors.ErrTaggingNotRequired, item.Category)
		}

		if serial == nil {
			serial = item.SerialNumber
		}
		now := s.Now()
		if err := s.itemRepo.UpdateItemTagInTx(ctx, tx, item.ItemID, serial, assigned, userID, now); err != nil {
			return err
		}
		item.SerialNumber = serial
		item.PropertyNumber = assigned
		item.Touch(userID, now)
		return nil
	})
	if err != nil {
		s.logRefusal(ctx, err, "Failed to assign asset tag", slog.String("item_id", itemID))
		return nil, err
	}

	attrs := map[string]string{}
	if item.PropertyNumber != nil {
		attrs["property_number"] = *item.PropertyNumber
	}
	if item.SerialNumber != nil {
		attrs["serial_number"] = *item.SerialNumber
	}
	s.LogInfo(ctx, "Asset tag assigned", slog.String("item_id", itemID))
	s.Publish(ctx, domain.LedgerEvent{
		Type:       domain.EventAssetTagged,
		ActorID:    userID,
		ItemID:     item.ItemID,
		EntityID:   item.ItemID,
		Reference:  attrs["property_number"],
		Attributes: attrs,
	})
	return item, nil
}

// nextFreePropertyNumber draws PROP codes until one is not held by another
// item. Numbers assigned before counters were raised on reservation can still
// sit ahead of the counter.
func (s *taggingService) nextFreePropertyNumber(ctx context.Context, tx pgx.Tx, itemID string) (string, error) {
	year := s.Now().Year()
	for range maxPropertyDraws {
		code, err := s.sequenceSvc.NextInTx(ctx, tx, domain.SequenceProperty, year)
		if err != nil {
			return "", err
		}
		taken, err := s.itemRepo.PropertyNumberTakenInTx(ctx, tx, code, itemID)
		if err != nil {
			return "", fmt.Errorf("failed to check property number: %w", err)
		}
		if !taken {
			return code, nil
		}
		s.GetLogger(ctx).Warn("Skipping property number already in use", slog.String("property_number", code))
	}
	return "", fmt.Errorf("%w: no free property number after %d draws", apperrors.ErrDuplicate, maxPropertyDraws)
}

const maxPropertyDraws = 100

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
