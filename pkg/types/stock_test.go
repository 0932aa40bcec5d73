package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusFor(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	tests := []struct {
		name     string
		quantity *int
		want     StockStatus
	}{
		{name: "nil quantity", quantity: nil, want: StockStatusHabis},
		{name: "zero", quantity: intPtr(0), want: StockStatusHabis},
		{name: "negative", quantity: intPtr(-5), want: StockStatusHabis},
		{name: "one", quantity: intPtr(1), want: StockStatusMenipis},
		{name: "at threshold", quantity: intPtr(20), want: StockStatusMenipis},
		{name: "just above threshold", quantity: intPtr(21), want: StockStatusTersedia},
		{name: "plenty", quantity: intPtr(1000), want: StockStatusTersedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockStatusFor(tt.quantity))
		})
	}
}

func TestStockItemDerive(t *testing.T) {
	quantity := 3
	item := StockItem{Quantity: &quantity}
	item.Derive()
	assert.Equal(t, StockStatusMenipis, item.Status)

	item.Quantity = nil
	item.Derive()
	assert.Equal(t, StockStatusHabis, item.Status)
}
