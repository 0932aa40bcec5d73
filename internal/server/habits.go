package server

import (
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

func (s *Service) handleListHabits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	logs, err := s.habitsRepo.LogsByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch habit logs")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, logs)
}

func (s *Service) handleLogHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("user id not found in context")
		s.internalServerError(w)
		return
	}

	var req types.CreateHabitLogRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.ActivityType) == "" {
		s.respondError(w, http.StatusBadRequest, "Nama aktivitas wajib diisi")
		return
	}
	if req.Points < 0 {
		s.respondError(w, http.StatusBadRequest, "Poin tidak boleh negatif")
		return
	}

	log := &types.EcoHabitLog{
		UserID:       userID,
		ActivityType: req.ActivityType,
		Points:       req.Points,
	}

	if err := s.habitsRepo.CreateLog(ctx, log); err != nil {
		s.logger.WithError(err).Error("failed to create habit log")
		s.internalServerError(w)
		return
	}

	s.cache.InvalidateLeaderboard(ctx)

	s.respondJSON(w, http.StatusCreated, log)
}
