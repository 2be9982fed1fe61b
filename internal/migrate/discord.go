package migrate

import (
	"context"
	"fmt"

	"github.com/gdps-tools/central-migrate/internal/models"
	"github.com/gdps-tools/central-migrate/internal/storage"
	"github.com/sirupsen/logrus"
)

// MergeDiscordLinks sets the discord id on every user the links database
// knows about. A nil source means no links database was configured and the
// step is skipped. Links pointing at accounts the legacy database does not
// have are logged and dropped.
func MergeDiscordLinks(ctx context.Context, log logrus.FieldLogger, links *storage.LinkSource, users map[int32]*models.User) error {
	if links == nil {
		return nil
	}

	// roles are only read to validate the source shape; the new server
	// manages discord roles itself
	roles, err := links.Roles(ctx)
	if err != nil {
		return fmt.Errorf("reading roles: %w", err)
	}
	log.Debugf("links database has %d discord roles", len(roles))

	rows, err := links.Links(ctx)
	if err != nil {
		return fmt.Errorf("reading links: %w", err)
	}

	for _, link := range rows {
		user, ok := users[link.GDID]
		if !ok {
			log.Warnf("discord link for account %d (discord id %d) has no matching user", link.GDID, link.DiscordID)
			continue
		}

		discordID := link.DiscordID
		user.DiscordID = &discordID
	}

	return nil
}
