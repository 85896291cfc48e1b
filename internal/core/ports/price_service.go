package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// UpdatePricesInput carries a full price quote. UpdatedBy is the username of
// the authenticated actor.
type UpdatePricesInput struct {
	GoldPrice     float64
	SilverPrice   float64
	PlatinumPrice float64
	UpdatedBy     string
}

// PriceService defines the metal price use cases.
type PriceService interface {
	// Latest returns the most recent price record, or a zeroed default
	// attributed to "system" when none has been recorded yet.
	Latest(ctx context.Context) (*domain.MetalPrice, error)
	Update(ctx context.Context, input UpdatePricesInput) (*domain.MetalPrice, error)
}
