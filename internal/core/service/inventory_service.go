package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

type inventoryService struct {
	repo ports.InventoryRepository
	log  zerolog.Logger
}

// NewInventoryService returns an InventoryService implementation.
func NewInventoryService(repo ports.InventoryRepository, log zerolog.Logger) ports.InventoryService {
	return &inventoryService{repo: repo, log: log}
}

// CreateItem registers a new item after enforcing SKU uniqueness.
func (s *inventoryService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.InventoryItem, error) {
	if _, err := s.repo.FindBySKU(ctx, input.SKU); err == nil {
		return nil, domain.ErrSKUExists
	} else if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.InventoryItem{
		ID:          uuid.NewString(),
		SKU:         input.SKU,
		Name:        input.Name,
		MetalType:   input.MetalType,
		WeightGrams: input.WeightGrams,
		CostPrice:   input.CostPrice,
		PhotoBase64: input.PhotoBase64,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error().Err(err).Str("sku", input.SKU).Msg("failed to create inventory item")
		return nil, err
	}

	s.log.Info().Str("sku", item.SKU).Str("created_by", item.CreatedBy).Msg("inventory item created")
	return item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *inventoryService) ListItems(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.repo.List(ctx)
}

// UpdateItem applies a partial update; nil fields keep their stored value.
func (s *inventoryService) UpdateItem(ctx context.Context, id string, input ports.UpdateItemInput) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.MetalType != nil {
		item.MetalType = *input.MetalType
	}
	if input.WeightGrams != nil {
		item.WeightGrams = *input.WeightGrams
	}
	if input.CostPrice != nil {
		item.CostPrice = *input.CostPrice
	}
	if input.PhotoBase64 != nil {
		item.PhotoBase64 = *input.PhotoBase64
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("failed to update inventory item")
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("inventory item deleted")
	return nil
}
