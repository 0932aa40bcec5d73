package server

import (
	"net/http"
	"strings"

	"lumbungwarga/pkg/types"
)

func (s *Service) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.eventsRepo.Events(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch events")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusOK, events)
}

func (s *Service) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	manager := s.requireManager(w, r)
	if manager == nil {
		return
	}

	var req types.CreateEventRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.StartsAt.IsZero() {
		s.respondError(w, http.StatusBadRequest, "Judul dan waktu mulai wajib diisi")
		return
	}

	event := &types.CommunityEvent{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   manager.ID,
	}

	if err := s.eventsRepo.CreateEvent(ctx, event); err != nil {
		s.logger.WithError(err).Error("failed to create event")
		s.internalServerError(w)
		return
	}

	s.respondJSON(w, http.StatusCreated, event)
}
