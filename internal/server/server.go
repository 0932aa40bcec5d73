package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lumbungwarga/internal/cache"
	"lumbungwarga/internal/storage"
	"lumbungwarga/internal/store"
	"lumbungwarga/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	logger *logrus.Logger
	config *types.Config

	needsRepo     *store.NeedRepository
	donationsRepo *store.DonationRepository
	stockRepo     *store.StockRepository
	habitsRepo    *store.HabitRepository
	usersRepo     *store.UserRepository
	eventsRepo    *store.EventRepository

	cache   *cache.Cache
	avatars *storage.AvatarStorage

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	needsRepo *store.NeedRepository,
	donationsRepo *store.DonationRepository,
	stockRepo *store.StockRepository,
	habitsRepo *store.HabitRepository,
	usersRepo *store.UserRepository,
	eventsRepo *store.EventRepository,
	leaderboardCache *cache.Cache,
	avatars *storage.AvatarStorage,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	s := &Service{
		logger: logger,
		config: config,

		needsRepo:     needsRepo,
		donationsRepo: donationsRepo,
		stockRepo:     stockRepo,
		habitsRepo:    habitsRepo,
		usersRepo:     usersRepo,
		eventsRepo:    eventsRepo,

		cache:   leaderboardCache,
		avatars: avatars,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           corsHandler.Handler(mux),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.MetricsMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", promhttp.Handler(), http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/needs", s.handleListNeeds, http.MethodGet)
		r.HandleFunc("/api/needs", s.handleCreateNeed, http.MethodPost)
		r.HandleFunc("/api/needs/:id", s.handleUpdateNeed, http.MethodPut)

		r.HandleFunc("/api/donations", s.handleListDonations, http.MethodGet)
		r.HandleFunc("/api/donations", s.handleCreateDonation, http.MethodPost)
		r.HandleFunc("/api/donations/:id", s.handleUpdateDonation, http.MethodPut)

		r.HandleFunc("/api/stock", s.handleListStock, http.MethodGet)
		r.HandleFunc("/api/stock", s.handleCreateStock, http.MethodPost)
		r.HandleFunc("/api/stock/:id", s.handleUpdateStock, http.MethodPut)
		r.HandleFunc("/api/stock/:id", s.handleDeleteStock, http.MethodDelete)

		r.HandleFunc("/api/eco-habits", s.handleListHabits, http.MethodGet)
		r.HandleFunc("/api/eco-habits", s.handleLogHabit, http.MethodPost)

		r.HandleFunc("/api/profile", s.handleGetProfile, http.MethodGet)
		r.HandleFunc("/api/profile", s.handleUpdateProfile, http.MethodPut)
		r.HandleFunc("/api/profile/avatar", s.handleUploadAvatar, http.MethodPost)

		r.HandleFunc("/api/leaderboard", s.handleLeaderboard, http.MethodGet)

		r.HandleFunc("/api/events", s.handleListEvents, http.MethodGet)
		r.HandleFunc("/api/events", s.handleCreateEvent, http.MethodPost)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"cache":  s.cache.Healthy(r.Context()),
	})
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	if !ok {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}
