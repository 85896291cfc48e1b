package domain

import "time"

// MetalPrice is an append-only quote for all tracked metals. The latest
// record by UpdatedAt is the current price; history is never rewritten.
type MetalPrice struct {
	ID            string    `json:"id"`
	GoldPrice     float64   `json:"gold_price"`
	SilverPrice   float64   `json:"silver_price"`
	PlatinumPrice float64   `json:"platinum_price"`
	UpdatedAt     time.Time `json:"updated_at"`
	UpdatedBy     string    `json:"updated_by"`
}
