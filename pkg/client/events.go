package client

import (
	"context"
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

// EventsService syncs the community event calendar.
type EventsService struct {
	c          *Client
	Collection *Collection[types.CommunityEvent]
}

func newEventsService(c *Client) *EventsService {
	return &EventsService{
		c:          c,
		Collection: NewCollection[types.CommunityEvent](SyncRefetch),
	}
}

func (s *EventsService) List(ctx context.Context) ([]types.CommunityEvent, error) {
	ticket := s.Collection.Begin()

	var events []types.CommunityEvent
	if err := s.c.do(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, s.c.fail(err)
	}

	s.Collection.Complete(ticket, events)
	return events, nil
}

func (s *EventsService) Create(ctx context.Context, req types.CreateEventRequest) (*types.CommunityEvent, error) {
	if strings.TrimSpace(req.Title) == "" || req.StartsAt.IsZero() {
		return nil, s.c.fail(validationError("Judul dan waktu mulai kegiatan wajib diisi."))
	}

	var event types.CommunityEvent
	if err := s.c.do(ctx, http.MethodPost, "/api/events", req, &event); err != nil {
		return nil, s.c.fail(err)
	}

	if _, err := s.List(ctx); err != nil {
		return nil, err
	}

	s.c.notifier.Success("Berhasil", "Kegiatan ditambahkan.")
	return &event, nil
}
