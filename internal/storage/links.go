package storage

import (
	"context"
	"fmt"

	"github.com/gdps-tools/central-migrate/internal/models"
	"gorm.io/gorm"
)

// LinkSource reads the optional discord links database exported by the
// community bot. A nil *LinkSource disables the merge step entirely.
type LinkSource struct {
	db *gorm.DB
}

func NewLinkSource(db *gorm.DB) *LinkSource {
	return &LinkSource{db: db}
}

func (s *LinkSource) Roles(ctx context.Context) ([]models.LegacyDiscordRole, error) {
	var rows []models.LegacyDiscordRole
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading discord roles: %w", err)
	}
	return rows, nil
}

func (s *LinkSource) Links(ctx context.Context) ([]models.LegacyDiscordLink, error) {
	var rows []models.LegacyDiscordLink
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading discord links: %w", err)
	}
	return rows, nil
}
