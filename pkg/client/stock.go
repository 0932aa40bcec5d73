package client

import (
	"context"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

// StockService syncs the stock collection. The server computes added_date
// and timestamps, so every mutation refetches the full list rather than
// guessing those fields locally. Derived statuses are recomputed on every
// installed response.
type StockService struct {
	c          *Client
	Collection *Collection[types.StockItem]
}

func newStockService(c *Client) *StockService {
	return &StockService{
		c:          c,
		Collection: NewCollection[types.StockItem](SyncRefetch),
	}
}

func (s *StockService) List(ctx context.Context) ([]types.StockItem, error) {
	ticket := s.Collection.Begin()

	var items []types.StockItem
	if err := s.c.do(ctx, http.MethodGet, "/api/stock", nil, &items); err != nil {
		return nil, s.c.fail(err)
	}

	for i := range items {
		items[i].Derive()
	}

	s.Collection.Complete(ticket, items)
	return items, nil
}

func (s *StockService) Create(ctx context.Context, req types.CreateStockRequest) (*types.StockItem, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Unit) == "" {
		return nil, s.c.fail(validationError("Nama barang dan satuan wajib diisi."))
	}

	var item types.StockItem
	if err := s.c.do(ctx, http.MethodPost, "/api/stock", req, &item); err != nil {
		return nil, s.c.fail(err)
	}
	item.Derive()

	if _, err := s.List(ctx); err != nil {
		return nil, err
	}

	s.c.notifier.Success("Berhasil", "Stok ditambahkan.")
	return &item, nil
}

func (s *StockService) Update(ctx context.Context, itemID string, req types.UpdateStockRequest) (*types.StockItem, error) {
	var item types.StockItem
	if err := s.c.do(ctx, http.MethodPut, "/api/stock/"+itemID, req, &item); err != nil {
		return nil, s.c.fail(err)
	}
	item.Derive()

	if _, err := s.List(ctx); err != nil {
		return nil, err
	}

	s.c.notifier.Success("Berhasil", "Stok diperbarui.")
	return &item, nil
}

func (s *StockService) Remove(ctx context.Context, itemID string) error {
	if err := s.c.do(ctx, http.MethodDelete, "/api/stock/"+itemID, nil, nil); err != nil {
		return s.c.fail(err)
	}

	if _, err := s.List(ctx); err != nil {
		return err
	}

	s.c.notifier.Success("Berhasil", "Stok dihapus.")
	return nil
}
