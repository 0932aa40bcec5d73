package seed

import (
	"context"
	"fmt"

	"lumbungwarga/internal/store"
	"lumbungwarga/internal/utils"
	"lumbungwarga/pkg/types"
)

type stockSeed struct {
	Name     string
	Category string
	Quantity *int
	Unit     string
}

var fakeStock = []stockSeed{
	{Name: "Beras", Category: "sembako", Quantity: utils.IntPtr(150), Unit: "kg"},
	{Name: "Minyak goreng", Category: "sembako", Quantity: utils.IntPtr(18), Unit: "liter"},
	{Name: "Mie instan", Category: "sembako", Quantity: utils.IntPtr(240), Unit: "bungkus"},
	{Name: "Gula pasir", Category: "sembako", Quantity: utils.IntPtr(0), Unit: "kg"},
	{Name: "Susu bubuk", Category: "balita", Quantity: nil, Unit: "kotak"},
}

func SeedStock(ctx context.Context, stockRepo *store.StockRepository) error {
	existing, err := stockRepo.StockItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing stock: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	adminID := seedWargaIDs()[0]

	for _, fixture := range fakeStock {
		item := &types.StockItem{
			UserID:   adminID,
			Name:     fixture.Name,
			Category: fixture.Category,
			Quantity: fixture.Quantity,
			Unit:     fixture.Unit,
		}

		if err := stockRepo.CreateStockItem(ctx, item); err != nil {
			return fmt.Errorf("failed to create stock item %q: %w", fixture.Name, err)
		}
	}

	return nil
}
