package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

type stubInventoryRepo struct {
	items map[string]*domain.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *domain.InventoryItem) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubInventoryRepo) FindBySKU(_ context.Context, sku string) (*domain.InventoryItem, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			clone := *item
			return &clone, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubInventoryRepo) List(_ context.Context) ([]*domain.InventoryItem, error) {
	out := make([]*domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func createItemInput(sku string) ports.CreateItemInput {
	return ports.CreateItemInput{
		SKU:         sku,
		Name:        "Gold Ring",
		MetalType:   domain.MetalGold,
		WeightGrams: 4.2,
		CostPrice:   310,
		CreatedBy:   "alice",
	}
}

func TestInventoryService_CreateItem(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), createItemInput("RING-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if item.CreatedBy != "alice" {
		t.Fatalf("expected created_by alice, got %q", item.CreatedBy)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestInventoryService_CreateItem_DuplicateSKU(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	if _, err := svc.CreateItem(context.Background(), createItemInput("RING-001")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateItem(context.Background(), createItemInput("RING-001")); !errors.Is(err, domain.ErrSKUExists) {
		t.Fatalf("expected ErrSKUExists, got %v", err)
	}
}

func TestInventoryService_UpdateItem_Partial(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), createItemInput("RING-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Gold Band"
	newPrice := 355.0
	updated, err := svc.UpdateItem(context.Background(), item.ID, ports.UpdateItemInput{
		Name:      &newName,
		CostPrice: &newPrice,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Gold Band" || updated.CostPrice != 355.0 {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if updated.SKU != "RING-001" || updated.MetalType != domain.MetalGold || updated.WeightGrams != 4.2 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(item.UpdatedAt) && !updated.UpdatedAt.Equal(item.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}
}

func TestInventoryService_UpdateItem_NotFound(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	if _, err := svc.UpdateItem(context.Background(), "missing", ports.UpdateItemInput{}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryService_DeleteItem(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), createItemInput("RING-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteItem(context.Background(), item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetItem(context.Background(), item.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := svc.DeleteItem(context.Background(), item.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on double delete, got %v", err)
	}
}
