package migrate

import (
	"fmt"

	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/sirupsen/logrus"
)

// UnknownPunishmentTypeError reports a punishment whose effective type is
// none of mute/ban/roomban. That is a data-integrity violation in the legacy
// database and aborts the migration.
type UnknownPunishmentTypeError struct {
	PunishmentID int32
	Type         string
}

func (e *UnknownPunishmentTypeError) Error() string {
	return fmt.Sprintf("punishment %d has unknown type %q", e.PunishmentID, e.Type)
}

// ReconcilePunishments converts every legacy punishment (expired and
// orphaned ones included) and mutates users in place to record which
// punishment of each type is currently active. It returns the converted
// punishments and the number applied as active.
//
// Legacy punishments must be in ascending id order: when a user has several
// non-expired punishments of the same type, the last one processed
// overwrites the active id set by an earlier one. NULL issued_by/issued_at
// become 0, matching the audit rule that an absent actor is 0.
//
// Orphan warnings go through log so they carry the caller's run fields.
func ReconcilePunishments(
	log logrus.FieldLogger,
	legacy []models.LegacyPunishment,
	users map[int32]*models.User,
	now int64,
) ([]models.Punishment, int, error) {
	punishments := make([]models.Punishment, 0, len(legacy))
	for _, p := range legacy {
		var issuedBy int32
		if p.IssuedBy != nil {
			issuedBy = *p.IssuedBy
		}
		var issuedAt int64
		if p.IssuedAt != nil {
			issuedAt = *p.IssuedAt
		}

		punishments = append(punishments, models.Punishment{
			ID:        p.PunishmentID,
			AccountID: p.AccountID,
			Type:      p.EffectiveType(),
			Reason:    p.Reason,
			ExpiresAt: p.ExpiresAt,
			IssuedBy:  issuedBy,
			IssuedAt:  issuedAt,
		})
	}

	active := 0
	for _, p := range punishments {
		// expires_at 0 means permanent
		if p.ExpiresAt != 0 && p.ExpiresAt < now {
			continue
		}

		user, ok := users[p.AccountID]
		if !ok {
			log.Warnf("punishment %d references non-existent user %d", p.ID, p.AccountID)
			continue
		}

		switch p.Type {
		case models.PunishmentMute:
			user.ActiveMute = p.ID
		case models.PunishmentBan:
			user.ActiveBan = p.ID
		case models.PunishmentRoomBan:
			user.ActiveRoomBan = p.ID
		default:
			return nil, 0, &UnknownPunishmentTypeError{PunishmentID: p.ID, Type: p.Type}
		}
		active++
	}

	return punishments, active, nil
}
