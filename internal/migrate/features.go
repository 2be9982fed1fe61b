package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/gdps-tools/central-migrate/internal/gdapi"
	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/sirupsen/logrus"
)

// LevelResolver resolves level metadata from the game's API.
type LevelResolver interface {
	FetchLevel(ctx context.Context, levelID int32) (gdapi.Level, error)
}

// MigrateFeatures resolves metadata for every legacy featured level and
// builds the new featured level records. Calls are paced with a fixed delay
// to stay under the API's rate limit. Resolver errors abort the migration;
// there are no retries.
func MigrateFeatures(
	ctx context.Context,
	log logrus.FieldLogger,
	legacy []models.LegacyFeaturedLevel,
	resolver LevelResolver,
	delay time.Duration,
) ([]models.FeaturedLevel, error) {
	levels := make([]models.FeaturedLevel, 0, len(legacy))
	for i, feature := range legacy {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		level, err := resolver.FetchLevel(ctx, feature.LevelID)
		if err != nil {
			return nil, fmt.Errorf("resolving level %d: %w", feature.LevelID, err)
		}

		log.Debugf("resolved level %d: %q by %q (%d)", feature.LevelID, level.Name, level.AuthorName, level.AuthorID)

		// FeatureDuration stays NULL: the legacy schema has no such field
		levels = append(levels, models.FeaturedLevel{
			LevelID:    feature.LevelID,
			Name:       level.Name,
			Author:     level.AuthorID,
			AuthorName: level.AuthorName,
			FeaturedAt: feature.PickedAt,
			RateTier:   feature.RateTier,
		})
	}

	return levels, nil
}
