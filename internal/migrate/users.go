package migrate

import (
	"github.com/gdps-tools/central-migrate/internal/models"
)

// TransformUsers maps every legacy user to a new user record. Cosmetic
// fields start zeroed, the discord id unset and the active punishment ids at
// 0; the reconciler and the link merger fill those in afterwards.
func TransformUsers(legacy map[int32]models.LegacyUser) map[int32]*models.User {
	users := make(map[int32]*models.User, len(legacy))
	for id, user := range legacy {
		users[id] = &models.User{
			AccountID:         id,
			Username:          user.Username,
			NameColor:         user.NameColor,
			IsWhitelisted:     user.IsWhitelisted,
			AdminPasswordHash: user.AdminPasswordHash,
			Roles:             user.Roles,
		}
	}
	return users
}
