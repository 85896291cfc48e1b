package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// InventoryRepository defines persistence operations for inventory items.
// Lookups return domain.ErrItemNotFound when no record matches.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (*domain.InventoryItem, error)
	// List returns items ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
}
