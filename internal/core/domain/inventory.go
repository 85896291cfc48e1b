package domain

import (
	"errors"
	"time"
)

// MetalType identifies the precious metal an item is made of.
type MetalType string

const (
	MetalGold     MetalType = "gold"
	MetalSilver   MetalType = "silver"
	MetalPlatinum MetalType = "platinum"
)

// Valid reports whether m names a supported metal.
func (m MetalType) Valid() bool {
	switch m {
	case MetalGold, MetalSilver, MetalPlatinum:
		return true
	}
	return false
}

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrSKUExists    = errors.New("sku already exists")
)

// InventoryItem is a single piece of stock. CreatedBy records the username
// of the actor who registered it.
type InventoryItem struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	MetalType   MetalType `json:"metal_type"`
	WeightGrams float64   `json:"weight_grams"`
	CostPrice   float64   `json:"cost_price"`
	PhotoBase64 string    `json:"photo_base64,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
}
