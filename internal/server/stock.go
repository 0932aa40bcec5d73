package server

import (
	"errors"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.stockRepo.StockItems(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch stock items")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, items)
}

func (s *Service) handleCreateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	manager := s.requireManager(w, r)
	if manager == nil {
		return
	}

	var req types.CreateStockRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Unit) == "" {
		s.respondError(w, http.StatusBadRequest, "Nama dan satuan wajib diisi")
		return
	}

	item := &types.StockItem{
		UserID:   manager.ID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}

	if err := s.stockRepo.CreateStockItem(ctx, item); err != nil {
		s.logger.WithError(err).Error("failed to create stock item")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Service) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := flow.Param(ctx, "id")

	if s.requireManager(w, r) == nil {
		return
	}

	var req types.UpdateStockRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	item, err := s.stockRepo.UpdateStockItem(ctx, itemID, req)
	if err != nil {
		if errors.Is(err, types.ErrStockNotFound) {
			s.respondError(w, http.StatusNotFound, "Stok tidak ditemukan")
			return
		}
		s.logger.WithError(err).WithField("stock_id", itemID).Error("failed to update stock item")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, item)
}

func (s *Service) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := flow.Param(ctx, "id")

	if s.requireManager(w, r) == nil {
		return
	}

	if err := s.stockRepo.DeleteStockItem(ctx, itemID); err != nil {
		if errors.Is(err, types.ErrStockNotFound) {
			s.respondError(w, http.StatusNotFound, "Stok tidak ditemukan")
			return
		}
		s.logger.WithError(err).WithField("stock_id", itemID).Error("failed to delete stock item")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"id": itemID})
}
