package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// CreateItemInput carries all data needed to register a new inventory item.
// CreatedBy is the username of the authenticated actor, never client input.
type CreateItemInput struct {
	SKU         string
	Name        string
	MetalType   domain.MetalType
	WeightGrams float64
	CostPrice   float64
	PhotoBase64 string
	Description string
	CreatedBy   string
}

// UpdateItemInput carries a partial update; nil fields are left unchanged.
type UpdateItemInput struct {
	Name        *string
	MetalType   *domain.MetalType
	WeightGrams *float64
	CostPrice   *float64
	PhotoBase64 *string
	Description *string
}

// InventoryService defines the inventory use cases.
type InventoryService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, id string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context) ([]*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, input UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
}
