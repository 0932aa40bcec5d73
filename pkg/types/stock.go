package types

import (
	"time"
)

type StockStatus string

const (
	StockStatusTersedia StockStatus = "tersedia"
	StockStatusMenipis  StockStatus = "menipis"
	StockStatusHabis    StockStatus = "habis"
)

// lowStockThreshold is unit-agnostic on purpose: 20 sacks of rice and
// 20 litres of oil both count as running low.
const lowStockThreshold = 20

// StockStatusFor classifies a quantity. The status is view state, recomputed
// on every read and never persisted, so the rule can change without touching
// stored rows.
func StockStatusFor(quantity *int) StockStatus {
	if quantity == nil || *quantity <= 0 {
		return StockStatusHabis
	}
	if *quantity <= lowStockThreshold {
		return StockStatusMenipis
	}
	return StockStatusTersedia
}

type StockItem struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Quantity  *int      `db:"quantity" json:"quantity"`
	Unit      string    `db:"unit" json:"unit"`
	AddedDate time.Time `db:"added_date" json:"added_date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Derived from Quantity, never stored.
	Status StockStatus `db:"-" json:"status"`
}

// Derive recomputes the derived fields after a fetch or patch.
func (s *StockItem) Derive() {
	s.Status = StockStatusFor(s.Quantity)
}

type CreateStockRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity *int   `json:"quantity"`
	Unit     string `json:"unit"`
}

type UpdateStockRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
}
