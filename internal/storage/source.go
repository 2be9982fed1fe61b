package storage

import (
	"context"
	"fmt"

	"github.com/gdps-tools/central-migrate/internal/models"
	"gorm.io/gorm"
)

// Source reads the legacy central server database.
type Source struct {
	db *gorm.DB
}

func NewSource(db *gorm.DB) *Source {
	return &Source{db: db}
}

// Users reads all legacy users keyed by account id. Role strings are parsed
// here so that a malformed row aborts the run before anything is written.
func (s *Source) Users(ctx context.Context) (map[int32]models.LegacyUser, error) {
	var rows []models.LegacyUser
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading legacy users: %w", err)
	}

	users := make(map[int32]models.LegacyUser, len(rows))
	for _, user := range rows {
		roles, err := models.ParseRoleList(user.RoleString)
		if err != nil {
			return nil, fmt.Errorf("user %d has malformed role string: %w", user.AccountID, err)
		}
		user.Roles = roles
		users[user.AccountID] = user
	}

	return users, nil
}

// Punishments reads all legacy punishments in ascending id order. The
// reconciler's last-wins rule depends on this order.
func (s *Source) Punishments(ctx context.Context) ([]models.LegacyPunishment, error) {
	var rows []models.LegacyPunishment
	if err := s.db.
		WithContext(ctx).
		Order("punishment_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("reading legacy punishments: %w", err)
	}
	return rows, nil
}

func (s *Source) FeaturedLevels(ctx context.Context) ([]models.LegacyFeaturedLevel, error) {
	var rows []models.LegacyFeaturedLevel
	if err := s.db.
		WithContext(ctx).
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("reading legacy featured levels: %w", err)
	}
	return rows, nil
}
