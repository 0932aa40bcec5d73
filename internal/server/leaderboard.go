package server

import (
	"encoding/json"
	"net/http"
)

const leaderboardSize = 50

func (s *Service) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if data, ok := s.cache.Leaderboard(ctx); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	entries, err := s.usersRepo.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch leaderboard")
		s.internalServerError(w)
		return
	}

	if data, err := json.Marshal(entries); err == nil {
		s.cache.SetLeaderboard(ctx, data)
	}

	s.respondJSON(w, http.StatusOK, entries)
}
