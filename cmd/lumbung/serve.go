package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumbungwarga/internal/cache"
	"lumbungwarga/internal/db"
	"lumbungwarga/internal/server"
	"lumbungwarga/internal/storage"
	"lumbungwarga/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	s3Client := s3.NewFromConfig(awsConfig)
	avatars := storage.NewAvatarStorage(s3Client, config.AvatarBucket, config.AvatarURLPrefix)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	leaderboardCache, err := cache.Connect(ctx, config.RedisAddr, config.RedisPassword)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, leaderboard caching disabled")
	}
	defer leaderboardCache.Close()

	needsRepo := store.NewNeedRepository(pool)
	donationsRepo := store.NewDonationRepository(pool)
	stockRepo := store.NewStockRepository(pool)
	habitsRepo := store.NewHabitRepository(pool)
	usersRepo := store.NewUserRepository(pool)
	eventsRepo := store.NewEventRepository(pool)

	jwkCache, err := jwk.NewCache(context.Background(), httprc.NewClient())
	if err != nil {
		return fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	jwksURL := fmt.Sprintf("%s/.well-known/jwks.json", config.AuthIssuerURL)

	err = jwkCache.Register(context.Background(), jwksURL)
	if err != nil {
		return fmt.Errorf("failed to register session provider jwk with cache: %w", err)
	}

	srv, err := server.New(
		config,
		logger,
		needsRepo,
		donationsRepo,
		stockRepo,
		habitsRepo,
		usersRepo,
		eventsRepo,
		leaderboardCache,
		avatars,
		jwkCache,
		jwksURL,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
