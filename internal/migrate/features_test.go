package migrate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdps-tools/central-migrate/internal/gdapi"
	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	fetch func(ctx context.Context, levelID int32) (gdapi.Level, error)
	calls int
}

func (s *stubResolver) FetchLevel(ctx context.Context, levelID int32) (gdapi.Level, error) {
	s.calls++
	return s.fetch(ctx, levelID)
}

func TestMigrateFeatures(t *testing.T) {
	resolver := &stubResolver{
		fetch: func(_ context.Context, levelID int32) (gdapi.Level, error) {
			return gdapi.Level{Name: "MyLevel", AuthorID: 777, AuthorName: "someuser"}, nil
		},
	}

	legacy := []models.LegacyFeaturedLevel{
		{ID: 1, LevelID: 128, PickedAt: 1690000000, PickedBy: 9, IsActive: true, RateTier: 2},
		{ID: 2, LevelID: 256, PickedAt: 1690001000, PickedBy: 9, RateTier: 1},
	}

	levels, err := MigrateFeatures(context.Background(), nullLogger(), legacy, resolver, 0)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, 2, resolver.calls)

	first := levels[0]
	assert.Equal(t, int32(128), first.LevelID)
	assert.Equal(t, "MyLevel", first.Name)
	assert.Equal(t, int32(777), first.Author)
	assert.Equal(t, "someuser", first.AuthorName)
	assert.Equal(t, int64(1690000000), first.FeaturedAt)
	assert.Equal(t, int32(2), first.RateTier)
	assert.Nil(t, first.FeatureDuration, "feature duration is always absent at migration time")
}

func TestMigrateFeaturesDegradedResolver(t *testing.T) {
	resolver := &stubResolver{
		fetch: func(context.Context, int32) (gdapi.Level, error) {
			return gdapi.Level{Difficulty: gdapi.DifficultyNA}, nil
		},
	}

	legacy := []models.LegacyFeaturedLevel{{ID: 1, LevelID: 128, PickedAt: 100, RateTier: 1}}

	levels, err := MigrateFeatures(context.Background(), nullLogger(), legacy, resolver, 0)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Empty(t, levels[0].Name)
	assert.Zero(t, levels[0].Author)
	assert.Empty(t, levels[0].AuthorName)
}

func TestMigrateFeaturesPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	resolver := &stubResolver{
		fetch: func(context.Context, int32) (gdapi.Level, error) {
			return gdapi.Level{}, wantErr
		},
	}

	legacy := []models.LegacyFeaturedLevel{
		{ID: 1, LevelID: 128},
		{ID: 2, LevelID: 256},
	}

	levels, err := MigrateFeatures(context.Background(), nullLogger(), legacy, resolver, 0)
	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, levels)
	assert.Equal(t, 1, resolver.calls, "no retry, no further calls after a failure")
}

func TestMigrateFeaturesPacesCalls(t *testing.T) {
	resolver := &stubResolver{
		fetch: func(context.Context, int32) (gdapi.Level, error) {
			return gdapi.Level{Name: "x"}, nil
		},
	}

	legacy := []models.LegacyFeaturedLevel{
		{ID: 1, LevelID: 1},
		{ID: 2, LevelID: 2},
		{ID: 3, LevelID: 3},
	}

	start := time.Now()
	_, err := MigrateFeatures(context.Background(), nullLogger(), legacy, resolver, 20*time.Millisecond)
	require.NoError(t, err)
	// delay applies between calls, not before the first one
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestMigrateFeaturesCancelledContext(t *testing.T) {
	resolver := &stubResolver{
		fetch: func(context.Context, int32) (gdapi.Level, error) {
			return gdapi.Level{}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	legacy := []models.LegacyFeaturedLevel{
		{ID: 1, LevelID: 1},
		{ID: 2, LevelID: 2},
	}

	_, err := MigrateFeatures(ctx, nullLogger(), legacy, resolver, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, resolver.calls)
}
