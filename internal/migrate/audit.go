package migrate

import (
	"github.com/gdps-tools/central-migrate/internal/models"
)

// SynthesizeAuditLog derives one audit entry per punishment. The audit trail
// is total: expired punishments and punishments of deleted users are
// recorded the same as active ones.
func SynthesizeAuditLog(punishments []models.Punishment) []models.AuditLogEntry {
	entries := make([]models.AuditLogEntry, 0, len(punishments))
	for _, p := range punishments {
		entries = append(entries, models.AuditLogEntry{
			AccountID:       p.IssuedBy,
			Type:            p.Type,
			Timestamp:       p.IssuedAt,
			TargetAccountID: p.AccountID,
			Message:         p.Reason,
			ExpiresAt:       p.ExpiresAt,
		})
	}
	return entries
}
