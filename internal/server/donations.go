package server

import (
	"errors"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"

	"github.com/alexedwards/flow"
)

// deliveredPoints is awarded to the donor when their donation is marked
// delivered.
const deliveredPoints = 25

func (s *Service) handleListDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donations, err := s.donationsRepo.Donations(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch donations")
		s.internalServerError(w)
		return
	}

	userIDs := make([]string, 0, len(donations))
	for _, donation := range donations {
		userIDs = append(userIDs, donation.UserID)
	}

	contacts, err := s.contactsByUserID(ctx, userIDs)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch donors for donations")
		s.internalServerError(w)
		return
	}

	for _, donation := range donations {
		donation.Donor = contacts[donation.UserID]
	}

	s.respondJSON(w, http.StatusOK, donations)
}

func (s *Service) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	var req types.CreateDonationRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.ItemName) == "" || strings.TrimSpace(req.Description) == "" {
		s.respondError(w, http.StatusBadRequest, "Nama barang dan deskripsi wajib diisi")
		return
	}

	donation := &types.Donation{
		UserID:      userID,
		ItemName:    req.ItemName,
		Description: req.Description,
	}

	if err := s.donationsRepo.CreateDonation(ctx, donation); err != nil {
		s.logger.WithError(err).Error("failed to create donation")
		s.internalServerError(w)
		return
	}

	if donor, err := s.usersRepo.User(ctx, userID); err == nil {
		donation.Donor = donor.Contact()
	}

	s.respondJSON(w, http.StatusCreated, donation)
}

func (s *Service) handleUpdateDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donationID := flow.Param(ctx, "id")

	if s.requireManager(w, r) == nil {
		return
	}

	var req types.UpdateDonationRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Status != nil && !req.Status.Valid() {
		s.respondError(w, http.StatusBadRequest, "Status tidak dikenal")
		return
	}
	if req.NeedRequestID != nil && *req.NeedRequestID != "" {
		if _, err := s.needsRepo.Need(ctx, *req.NeedRequestID); err != nil {
			if errors.Is(err, types.ErrNeedNotFound) {
				s.respondError(w, http.StatusBadRequest, "Permintaan tidak ditemukan")
				return
			}
			s.logger.WithError(err).Error("failed to fetch need for donation link")
			s.internalServerError(w)
			return
		}
	}

	donation, err := s.donationsRepo.UpdateDonation(ctx, donationID, req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrDonationNotFound):
			s.respondError(w, http.StatusNotFound, "Donasi tidak ditemukan")
		case errors.Is(err, types.ErrBackwardTransition):
			s.respondError(w, http.StatusBadRequest, "Status donasi tidak bisa mundur")
		default:
			s.logger.WithError(err).WithField("donation_id", donationID).Error("failed to update donation")
			s.internalServerError(w)
		}
		return
	}

	if req.Status != nil && *req.Status == types.DonationStatusDelivered {
		if err := s.usersRepo.AddCommunityPoints(ctx, donation.UserID, deliveredPoints); err != nil {
			s.logger.WithError(err).WithField("user_id", donation.UserID).Error("failed to award delivery points")
		} else {
			s.cache.InvalidateLeaderboard(ctx)
		}
	}

	if donor, err := s.usersRepo.User(ctx, donation.UserID); err == nil {
		donation.Donor = donor.Contact()
	}

	s.respondJSON(w, http.StatusOK, donation)
}
