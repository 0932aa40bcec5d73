package main

import (
	"context"
	"fmt"

	"lumbungwarga/internal/db"
	"lumbungwarga/internal/seed"
	"lumbungwarga/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with development data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		usersRepo := store.NewUserRepository(pool)
		needsRepo := store.NewNeedRepository(pool)
		stockRepo := store.NewStockRepository(pool)

		logrus.Info("Seeding warga...")
		if err := seed.SeedWarga(ctx, usersRepo); err != nil {
			return fmt.Errorf("failed to seed warga: %w", err)
		}

		logrus.Info("Seeding need requests...")
		if err := seed.SeedNeeds(ctx, needsRepo, cfg.Environment == "development"); err != nil {
			return fmt.Errorf("failed to seed needs: %w", err)
		}

		logrus.Info("Seeding stock...")
		if err := seed.SeedStock(ctx, stockRepo); err != nil {
			return fmt.Errorf("failed to seed stock: %w", err)
		}

		logrus.Info("Seeding complete")

		return nil
	},
}
