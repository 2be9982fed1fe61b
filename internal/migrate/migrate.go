package migrate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gdps-tools/central-migrate/internal/config"
	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/gdps-tools/central-migrate/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Migrator drives the whole migration: legacy database in, accounts and
// features databases out. It runs sequentially; any error aborts the run and
// leaves already-committed writes in place.
type Migrator struct {
	config   *config.Config
	source   *storage.Source
	links    *storage.LinkSource // nil when no links database is configured
	accounts *storage.Accounts
	features *storage.Features
	resolver LevelResolver
}

func New(
	cfg *config.Config,
	source *storage.Source,
	links *storage.LinkSource,
	accounts *storage.Accounts,
	features *storage.Features,
	resolver LevelResolver,
) *Migrator {
	return &Migrator{
		config:   cfg,
		source:   source,
		links:    links,
		accounts: accounts,
		features: features,
		resolver: resolver,
	}
}

func (m *Migrator) Run(ctx context.Context) error {
	log := logrus.WithField("run_id", uuid.New().String())

	legacyUsers, err := m.source.Users(ctx)
	if err != nil {
		return fmt.Errorf("reading users: %w", err)
	}
	log.Infof("read %d legacy users", len(legacyUsers))

	users := TransformUsers(legacyUsers)

	legacyPunishments, err := m.source.Punishments(ctx)
	if err != nil {
		return fmt.Errorf("reading punishments: %w", err)
	}

	punishments, active, err := ReconcilePunishments(log, legacyPunishments, users, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("reconciling punishments: %w", err)
	}
	log.Infof("migrated %d punishments, %d active", len(punishments), active)

	audit := SynthesizeAuditLog(punishments)
	log.Infof("synthesized %d audit log entries", len(audit))

	if err := MergeDiscordLinks(ctx, log, m.links, users); err != nil {
		return fmt.Errorf("merging discord links: %w", err)
	}

	if err := m.accounts.Replace(ctx, sortedUsers(users), punishments, audit); err != nil {
		return fmt.Errorf("writing accounts database: %w", err)
	}
	log.Info("accounts database committed")

	legacyFeatured, err := m.source.FeaturedLevels(ctx)
	if err != nil {
		return fmt.Errorf("reading featured levels: %w", err)
	}

	featured, err := MigrateFeatures(ctx, log, legacyFeatured, m.resolver, m.config.GDRequestDelay)
	if err != nil {
		return fmt.Errorf("migrating featured levels: %w", err)
	}

	if err := m.features.Replace(ctx, featured); err != nil {
		return fmt.Errorf("writing features database: %w", err)
	}
	log.Info("features database committed")

	log.Infof(
		"migration complete: %d users, %d punishments (%d active), %d audit entries, %d featured levels",
		len(users), len(punishments), active, len(audit), len(featured),
	)

	return nil
}

func sortedUsers(users map[int32]*models.User) []*models.User {
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
