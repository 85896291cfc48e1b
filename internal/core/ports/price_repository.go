package ports

import (
	"context"
	"errors"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// ErrNoPriceRecorded is returned by FindLatest when the price collection is
// empty. The service layer substitutes a zeroed default in that case.
var ErrNoPriceRecorded = errors.New("no metal price recorded")

// PriceRepository persists metal price records. Updates append a new record;
// history is never rewritten.
type PriceRepository interface {
	Insert(ctx context.Context, price *domain.MetalPrice) error
	FindLatest(ctx context.Context) (*domain.MetalPrice, error)
}
