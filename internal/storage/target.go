package storage

import (
	"context"
	"fmt"

	"github.com/gdps-tools/central-migrate/internal/models"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// Accounts writes the new accounts database (users, punishments, audit log).
type Accounts struct {
	db *gorm.DB
}

func NewAccounts(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

func (s *Accounts) Migrate() error {
	if err := s.db.AutoMigrate(
		&models.User{},
		&models.Punishment{},
		&models.AuditLogEntry{},
	); err != nil {
		return fmt.Errorf("migrating accounts database: %w", err)
	}
	return nil
}

// Replace deletes all existing rows and bulk-inserts the migrated records in
// one transaction. These are replace semantics: target data not present in
// the current run is lost.
func (s *Accounts) Replace(
	ctx context.Context,
	users []*models.User,
	punishments []models.Punishment,
	audit []models.AuditLogEntry,
) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&models.AuditLogEntry{}, &models.Punishment{}, &models.User{}} {
			if err := wipe.Delete(model).Error; err != nil {
				return fmt.Errorf("deleting existing rows: %w", err)
			}
		}

		if len(users) > 0 {
			if err := tx.CreateInBatches(users, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting users: %w", err)
			}
		}
		if len(punishments) > 0 {
			if err := tx.CreateInBatches(punishments, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting punishments: %w", err)
			}
		}
		if len(audit) > 0 {
			if err := tx.CreateInBatches(audit, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting audit log entries: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("in tx: %w", err)
	}

	return nil
}

// Features writes the new features database. It commits independently of the
// accounts database; a crash between the two commits leaves a partially
// migrated state.
type Features struct {
	db *gorm.DB
}

func NewFeatures(db *gorm.DB) *Features {
	return &Features{db: db}
}

func (s *Features) Migrate() error {
	if err := s.db.AutoMigrate(&models.FeaturedLevel{}); err != nil {
		return fmt.Errorf("migrating features database: %w", err)
	}
	return nil
}

func (s *Features) Replace(ctx context.Context, levels []models.FeaturedLevel) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.FeaturedLevel{}).
			Error; err != nil {
			return fmt.Errorf("deleting existing rows: %w", err)
		}

		if len(levels) > 0 {
			if err := tx.CreateInBatches(levels, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting featured levels: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("in tx: %w", err)
	}

	return nil
}
