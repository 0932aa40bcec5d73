package client

import (
	"context"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

// NeedsService syncs the need-request collection. Verify and fulfill
// mutations have fully client-known effects, so the collection patches in
// place instead of refetching.
type NeedsService struct {
	c          *Client
	Collection *Collection[types.NeedRequest]
}

func newNeedsService(c *Client) *NeedsService {
	return &NeedsService{
		c:          c,
		Collection: NewCollection[types.NeedRequest](SyncPatch),
	}
}

func (s *NeedsService) List(ctx context.Context) ([]types.NeedRequest, error) {
	ticket := s.Collection.Begin()

	var needs []types.NeedRequest
	if err := s.c.do(ctx, http.MethodGet, "/api/needs", nil, &needs); err != nil {
		return nil, s.c.fail(err)
	}

	s.Collection.Complete(ticket, needs)
	return needs, nil
}

func (s *NeedsService) Create(ctx context.Context, req types.CreateNeedRequest) (*types.NeedRequest, error) {
	if strings.TrimSpace(req.ItemName) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, s.c.fail(validationError("Nama barang dan deskripsi wajib diisi."))
	}

	var need types.NeedRequest
	if err := s.c.do(ctx, http.MethodPost, "/api/needs", req, &need); err != nil {
		return nil, s.c.fail(err)
	}

	s.Collection.Prepend(need)
	s.c.notifier.Success("Berhasil", "Permintaan bantuan terkirim.")
	return &need, nil
}

// Verify marks a need request as verified by an admin.
func (s *NeedsService) Verify(ctx context.Context, needID string) error {
	update := types.UpdateNeedRequest{IsVerified: boolPtr(true)}
	if err := s.c.do(ctx, http.MethodPut, "/api/needs/"+needID, update, nil); err != nil {
		return s.c.fail(err)
	}

	s.Collection.Patch(needID, func(need types.NeedRequest) types.NeedRequest {
		need.IsVerified = true
		return need
	})
	s.c.notifier.Success("Berhasil", "Permintaan telah diverifikasi.")
	return nil
}

// Fulfill marks a need request as fulfilled, normally as the side effect of
// matching a donation to it.
func (s *NeedsService) Fulfill(ctx context.Context, needID string) error {
	update := types.UpdateNeedRequest{IsFulfilled: boolPtr(true)}
	if err := s.c.do(ctx, http.MethodPut, "/api/needs/"+needID, update, nil); err != nil {
		return s.c.fail(err)
	}

	s.Collection.Patch(needID, func(need types.NeedRequest) types.NeedRequest {
		need.IsFulfilled = true
		return need
	})
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
