package client

import (
	"context"
	"net/http"

	"lumbungwarga/pkg/types"
)

// ProfileService reads and updates the caller's own profile. There is no
// collection here; the profile is a single record.
type ProfileService struct {
	c *Client
}

func newProfileService(c *Client) *ProfileService {
	return &ProfileService{c: c}
}

func (s *ProfileService) Get(ctx context.Context) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := s.c.do(ctx, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, s.c.fail(err)
	}
	return &profile, nil
}

func (s *ProfileService) Update(ctx context.Context, req types.UpdateProfileRequest) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := s.c.do(ctx, http.MethodPut, "/api/profile", req, &profile); err != nil {
		return nil, s.c.fail(err)
	}

	s.c.notifier.Success("Berhasil", "Profil diperbarui.")
	return &profile, nil
}

func (s *ProfileService) Leaderboard(ctx context.Context) ([]types.LeaderboardEntry, error) {
	var entries []types.LeaderboardEntry
	if err := s.c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &entries); err != nil {
		return nil, s.c.fail(err)
	}
	return entries, nil
}
