package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleListNeeds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	needs, err := s.needsRepo.Needs(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch needs")
		s.internalServerError(w)
		return
	}

	userIDs := make([]string, 0, len(needs))
	for _, need := range needs {
		userIDs = append(userIDs, need.UserID)
	}

	contacts, err := s.contactsByUserID(ctx, userIDs)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch requesters for needs")
		s.internalServerError(w)
		return
	}

	for _, need := range needs {
		need.Requester = contacts[need.UserID]
	}

	s.respondJSON(w, http.StatusOK, needs)
}

func (s *Service) handleCreateNeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	var req types.CreateNeedRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.ItemName) == "" || strings.TrimSpace(req.Description) == "" {
		s.respondError(w, http.StatusBadRequest, "Nama barang dan deskripsi wajib diisi")
		return
	}
	if req.Category == "" {
		req.Category = types.NeedCategoryOthers
	}
	if !req.Category.Valid() {
		s.respondError(w, http.StatusBadRequest, "Kategori tidak dikenal")
		return
	}

	need := &types.NeedRequest{
		UserID:      userID,
		ItemName:    req.ItemName,
		Description: req.Description,
		IsUrgent:    req.IsUrgent,
		Category:    req.Category,
		Needed:      req.Needed,
	}

	if err := s.needsRepo.CreateNeed(ctx, need); err != nil {
		s.logger.WithError(err).Error("failed to create need")
		s.internalServerError(w)
		return
	}

	if requester, err := s.usersRepo.User(ctx, userID); err == nil {
		need.Requester = requester.Contact()
	}

	s.respondJSON(w, http.StatusCreated, need)
}

func (s *Service) handleUpdateNeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	needID := flow.Param(ctx, "id")

	if s.requireManager(w, r) == nil {
		return
	}

	var req types.UpdateNeedRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.IsVerified == nil && req.IsFulfilled == nil {
		s.respondError(w, http.StatusBadRequest, "Tidak ada perubahan yang dikirim")
		return
	}

	if err := s.needsRepo.UpdateNeedFlags(ctx, needID, req); err != nil {
		if errors.Is(err, types.ErrNeedNotFound) {
			s.respondError(w, http.StatusNotFound, "Permintaan tidak ditemukan")
			return
		}
		s.logger.WithError(err).WithField("need_id", needID).Error("failed to update need")
		s.internalServerError(w)
		return
	}

	need, err := s.needsRepo.Need(ctx, needID)
	if err != nil {
		s.logger.WithError(err).WithField("need_id", needID).Error("failed to fetch need after update")
		s.internalServerError(w)
		return
	}

	if requester, err := s.usersRepo.User(ctx, need.UserID); err == nil {
		need.Requester = requester.Contact()
	}

	s.respondJSON(w, http.StatusOK, need)
}

// contactsByUserID batch-fetches users and returns their contact shapes
// keyed by id.
func (s *Service) contactsByUserID(ctx context.Context, userIDs []string) (map[string]*types.Contact, error) {
	users, err := s.usersRepo.UsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	contacts := make(map[string]*types.Contact, len(users))
	for _, user := range users {
		contacts[user.ID] = user.Contact()
	}
	return contacts, nil
}
