package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gdps-tools/central-migrate/internal/config"
	"github.com/gdps-tools/central-migrate/internal/gdapi"
	"github.com/gdps-tools/central-migrate/internal/logging"
	"github.com/gdps-tools/central-migrate/internal/migrate"
	"github.com/gdps-tools/central-migrate/internal/storage"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	setupConfig()
	logging.Init()

	cfg := config.New()
	logrus.Debugf("config: %+v", cfg)

	legacyDB, err := gorm.Open(sqlite.Open(cfg.LegacyDBPath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to open legacy database: %v", err)
	}

	var links *storage.LinkSource
	if cfg.LinksDBPath != "" {
		linksDB, err := gorm.Open(sqlite.Open(cfg.LinksDBPath), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("Failed to open links database: %v", err)
		}
		links = storage.NewLinkSource(linksDB)
	} else {
		logrus.Info("no links database configured, skipping discord link merge")
	}

	targetDB, err := gorm.Open(sqlite.Open(cfg.TargetDBPath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to open target accounts database: %v", err)
	}

	featuresDB, err := gorm.Open(sqlite.Open(cfg.FeaturesDBPath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to open target features database: %v", err)
	}

	accounts := storage.NewAccounts(targetDB)
	if err := accounts.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate accounts database: %v", err)
	}

	features := storage.NewFeatures(featuresDB)
	if err := features.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate features database: %v", err)
	}

	if cfg.GDAuthToken == "" {
		logrus.Warn("no GD auth token configured, featured levels will be migrated without metadata")
	}
	resolver := gdapi.NewClient(cfg.GDBaseURL, cfg.GDAuthToken)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	m := migrate.New(cfg, storage.NewSource(legacyDB), links, accounts, features, resolver)
	if err := m.Run(ctx); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}
}

func setupConfig() {
	// .env is optional, env vars alone are fine
	_ = godotenv.Load()
	config.SetupCommon()
}
