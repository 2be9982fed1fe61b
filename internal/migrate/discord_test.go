package migrate

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/gdps-tools/central-migrate/internal/storage"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openLinksDB(t *testing.T) (*gorm.DB, *storage.LinkSource) {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "links.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LegacyDiscordRole{}, &models.LegacyDiscordLink{}))

	return db, storage.NewLinkSource(db)
}

func TestMergeDiscordLinksNilSource(t *testing.T) {
	users := singleUser(5)
	require.NoError(t, MergeDiscordLinks(context.Background(), nullLogger(), nil, users))
	assert.Nil(t, users[5].DiscordID)
}

func TestMergeDiscordLinks(t *testing.T) {
	db, links := openLinksDB(t)

	require.NoError(t, db.Create(&models.LegacyDiscordRole{ID: "mod", DiscordID: 1111}).Error)
	require.NoError(t, db.Create(&models.LegacyDiscordLink{DiscordID: 424242, GDID: 555}).Error)
	require.NoError(t, db.Create(&models.LegacyDiscordLink{DiscordID: 434343, GDID: 999}).Error)

	users := map[int32]*models.User{555: {AccountID: 555}}

	logger, hook := logtest.NewNullLogger()
	log := logger.WithField("run_id", "run-1")
	require.NoError(t, MergeDiscordLinks(context.Background(), log, links, users))

	// 555 merges, the link for the missing 999 is dropped without effect
	require.NotNil(t, users[555].DiscordID)
	assert.Equal(t, int64(424242), *users[555].DiscordID)

	// the orphan warning keeps the run fields
	warning := hook.LastEntry()
	require.NotNil(t, warning)
	assert.Equal(t, logrus.WarnLevel, warning.Level)
	assert.Equal(t, "run-1", warning.Data["run_id"])
}

func TestMergeDiscordLinksNoLinks(t *testing.T) {
	_, links := openLinksDB(t)

	users := singleUser(5)
	require.NoError(t, MergeDiscordLinks(context.Background(), nullLogger(), links, users))
	assert.Nil(t, users[5].DiscordID)
}
