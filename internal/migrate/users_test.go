package migrate

import (
	"testing"

	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformUsers(t *testing.T) {
	legacy := map[int32]models.LegacyUser{
		1: {
			AccountID:         1,
			Username:          "alice",
			NameColor:         "#ff0000",
			IsWhitelisted:     true,
			AdminPasswordHash: "$argon2$hash",
			Roles:             models.RoleList{"mod", "admin"},
		},
		2: {AccountID: 2, Username: "bob"},
	}

	users := TransformUsers(legacy)
	require.Len(t, users, 2)

	alice := users[1]
	require.NotNil(t, alice)
	assert.Equal(t, int32(1), alice.AccountID)
	assert.Equal(t, "alice", alice.Username)
	assert.Equal(t, "#ff0000", alice.NameColor)
	assert.True(t, alice.IsWhitelisted)
	assert.Equal(t, "$argon2$hash", alice.AdminPasswordHash)
	assert.Equal(t, models.RoleList{"mod", "admin"}, alice.Roles)

	// cosmetics, active punishments and discord id all start zeroed
	assert.Zero(t, alice.Cube)
	assert.Zero(t, alice.Color1)
	assert.Zero(t, alice.Color2)
	assert.Zero(t, alice.GlowColor)
	assert.Zero(t, alice.ActiveMute)
	assert.Zero(t, alice.ActiveBan)
	assert.Zero(t, alice.ActiveRoomBan)
	assert.Nil(t, alice.DiscordID)

	bob := users[2]
	require.NotNil(t, bob)
	assert.False(t, bob.IsWhitelisted)
	assert.Empty(t, bob.Roles)
}
