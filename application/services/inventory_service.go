package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"freshtrack-backend/application/ports"
	"freshtrack-backend/domain/inventory"
	apperrors "freshtrack-backend/pkg/errors"
)

// InventoryService handles the per-user item CRUD and analytics. Every
// operation is scoped to the authenticated owner's partition; there is no
// cross-user access path.
type InventoryService struct {
	items     ports.ItemRepository
	validator *inventory.ItemValidator
	logger    *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	items ports.ItemRepository,
	validator *inventory.ItemValidator,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		items:     items,
		validator: validator,
		logger:    logger,
	}
}

// AddItem validates the input, assigns a fresh id and stores the item.
func (s *InventoryService) AddItem(ctx context.Context, ownerEmail string, input inventory.ItemInput) (*inventory.Item, error) {
	if violations := s.validator.Validate(input); len(violations) > 0 {
		return nil, apperrors.NewValidationErrors(violations)
	}

	item := inventory.NewItem(input, time.Now())
	if err := s.items.Put(ctx, ownerEmail, item); err != nil {
		return nil, err
	}

	s.logger.Info("Item added",
		zap.String("owner", ownerEmail),
		zap.String("itemID", item.ID),
	)
	return &item, nil
}

// ListItems returns all of the owner's items.
func (s *InventoryService) ListItems(ctx context.Context, ownerEmail string) ([]inventory.Item, error) {
	return s.items.ListByOwner(ctx, ownerEmail)
}

// UpdateItem replaces every field of an existing item. The existence check
// runs first so an absent item is a 404 rather than an upsert.
func (s *InventoryService) UpdateItem(ctx context.Context, ownerEmail, itemID string, input inventory.ItemInput) error {
	if violations := s.validator.Validate(input); len(violations) > 0 {
		return apperrors.NewValidationErrors(violations)
	}

	current, err := s.items.Get(ctx, ownerEmail, itemID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFoundError("Item")
		}
		return err
	}

	updated := current.Replace(input, time.Now())
	if err := s.items.Update(ctx, ownerEmail, updated); err != nil {
		if apperrors.IsNotFound(err) {
			// Deleted between the existence check and the write; the caller
			// still gets a 404.
			return apperrors.NewNotFoundError("Item")
		}
		return err
	}

	s.logger.Info("Item updated",
		zap.String("owner", ownerEmail),
		zap.String("itemID", itemID),
	)
	return nil
}

// DeleteItem removes the item. The delete is unconditional: removing an id
// that does not exist still succeeds.
func (s *InventoryService) DeleteItem(ctx context.Context, ownerEmail, itemID string) error {
	if err := s.items.Delete(ctx, ownerEmail, itemID); err != nil {
		return err
	}

	s.logger.Info("Item deleted",
		zap.String("owner", ownerEmail),
		zap.String("itemID", itemID),
	)
	return nil
}

// Analytics aggregates the owner's items into the inventory report.
func (s *InventoryService) Analytics(ctx context.Context, ownerEmail string) (*inventory.Analytics, error) {
	items, err := s.items.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	report := inventory.ComputeAnalytics(items, time.Now())
	return &report, nil
}
