package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// StatusRepository persists client heartbeat records.
type StatusRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	// List returns the most recent checks, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}
