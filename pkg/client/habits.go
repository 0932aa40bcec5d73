package client

import (
	"context"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

// HabitsService syncs the eco-habit log. Poin totals and timestamps are
// server-side facts, so mutations refetch.
type HabitsService struct {
	c          *Client
	Collection *Collection[types.EcoHabitLog]
}

func newHabitsService(c *Client) *HabitsService {
	return &HabitsService{
		c:          c,
		Collection: NewCollection[types.EcoHabitLog](SyncRefetch),
	}
}

func (s *HabitsService) List(ctx context.Context) ([]types.EcoHabitLog, error) {
	ticket := s.Collection.Begin()

	var logs []types.EcoHabitLog
	if err := s.c.do(ctx, http.MethodGet, "/api/eco-habits", nil, &logs); err != nil {
		return nil, s.c.fail(err)
	}

	for i := range logs {
		logs[i].Derive()
	}

	s.Collection.Complete(ticket, logs)
	return logs, nil
}

// Log records an activity from a metered amount: points are
// round(meter x perUnit).
func (s *HabitsService) Log(ctx context.Context, activityType string, meter, perUnit float64) (*types.EcoHabitLog, error) {
	if strings.TrimSpace(activityType) == "" || meter < 0 {
		return nil, s.c.fail(validationError("Jenis aktivitas dan meteran wajib diisi."))
	}

	req := types.CreateHabitLogRequest{
		ActivityType: activityType,
		Points:       types.HabitPoints(meter, perUnit),
	}

	var log types.EcoHabitLog
	if err := s.c.do(ctx, http.MethodPost, "/api/eco-habits", req, &log); err != nil {
		return nil, s.c.fail(err)
	}
	log.Derive()

	if _, err := s.List(ctx); err != nil {
		return nil, err
	}

	s.c.notifier.Success("Berhasil", "Aktivitas tercatat.")
	return &log, nil
}
