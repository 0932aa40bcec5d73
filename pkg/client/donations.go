package client

import (
	"context"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

// DonationsService syncs the donation collection. Status changes and need
// links are fully known client-side, so the collection patches in place.
type DonationsService struct {
	c          *Client
	Collection *Collection[types.Donation]
}

func newDonationsService(c *Client) *DonationsService {
	return &DonationsService{
		c:          c,
		Collection: NewCollection[types.Donation](SyncPatch),
	}
}

func (s *DonationsService) List(ctx context.Context) ([]types.Donation, error) {
	ticket := s.Collection.Begin()

	var donations []types.Donation
	if err := s.c.do(ctx, http.MethodGet, "/api/donations", nil, &donations); err != nil {
		return nil, s.c.fail(err)
	}

	s.Collection.Complete(ticket, donations)
	return donations, nil
}

func (s *DonationsService) Create(ctx context.Context, req types.CreateDonationRequest) (*types.Donation, error) {
	if strings.TrimSpace(req.ItemName) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, s.c.fail(validationError("Nama barang dan deskripsi wajib diisi."))
	}

	var donation types.Donation
	if err := s.c.do(ctx, http.MethodPost, "/api/donations", req, &donation); err != nil {
		return nil, s.c.fail(err)
	}

	s.Collection.Prepend(donation)
	s.c.notifier.Success("Berhasil", "Donasi kamu sudah terdaftar.")
	return &donation, nil
}

// Advance moves a donation forward along available -> matched -> delivered.
func (s *DonationsService) Advance(ctx context.Context, donationID string, status types.DonationStatus) error {
	update := types.UpdateDonationRequest{Status: &status}
	if err := s.c.do(ctx, http.MethodPut, "/api/donations/"+donationID, update, nil); err != nil {
		return s.c.fail(err)
	}

	s.Collection.Patch(donationID, func(donation types.Donation) types.Donation {
		donation.Status = status
		return donation
	})
	s.c.notifier.Success("Berhasil", "Status donasi diperbarui.")
	return nil
}

// Match links a donation to a need request and marks the need fulfilled.
// Two requests go out; each collection is patched only after its own
// request succeeds.
func (s *DonationsService) Match(ctx context.Context, donationID, needID string, needs *NeedsService) error {
	status := types.DonationStatusMatched
	update := types.UpdateDonationRequest{
		Status:        &status,
		NeedRequestID: &needID,
	}
	if err := s.c.do(ctx, http.MethodPut, "/api/donations/"+donationID, update, nil); err != nil {
		return s.c.fail(err)
	}

	s.Collection.Patch(donationID, func(donation types.Donation) types.Donation {
		donation.Status = status
		donation.NeedRequestID = &needID
		return donation
	})

	if err := needs.Fulfill(ctx, needID); err != nil {
		return err
	}

	s.c.notifier.Success("Berhasil", "Donasi dicocokkan dengan permintaan.")
	return nil
}
