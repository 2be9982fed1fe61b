package models

// Legacy rows are read-only snapshots of the old central server schema.

type LegacyUser struct {
	AccountID         int32  `gorm:"column:account_id;primaryKey"`
	Username          string `gorm:"column:user_name"`
	NameColor         string `gorm:"column:name_color"`
	IsWhitelisted     bool   `gorm:"column:is_whitelisted"`
	RoleString        string `gorm:"column:user_roles"`
	AdminPasswordHash string `gorm:"column:admin_password_hash"`

	// parsed from RoleString when the row is read
	Roles RoleList `gorm:"-"`
}

func (LegacyUser) TableName() string { return "users" }

type LegacyPunishment struct {
	PunishmentID int32   `gorm:"column:punishment_id;primaryKey"`
	AccountID    int32   `gorm:"column:account_id"`
	Type         string  `gorm:"column:type"`
	Reason       string  `gorm:"column:reason"`
	ExpiresAt    int64   `gorm:"column:expires_at"`
	IssuedBy     *int32  `gorm:"column:issued_by"`
	IssuedAt     *int64  `gorm:"column:issued_at"`
	TypeOverride *string `gorm:"column:type2"`
}

func (LegacyPunishment) TableName() string { return "punishments" }

// EffectiveType is the override type if one is set, else the primary type.
func (p *LegacyPunishment) EffectiveType() string {
	if p.TypeOverride != nil && *p.TypeOverride != "" {
		return *p.TypeOverride
	}
	return p.Type
}

// LegacyDiscordRole lives in the separate links database exported by the
// community bot. Rows are read to validate the source shape but are not
// consumed by the migration yet.
type LegacyDiscordRole struct {
	ID        string `gorm:"column:id"`
	DiscordID int64  `gorm:"column:discord_id"`
}

func (LegacyDiscordRole) TableName() string { return "roles" }

type LegacyDiscordLink struct {
	DiscordID int64 `gorm:"column:discord_id"`
	GDID      int32 `gorm:"column:gd_id"`
}

func (LegacyDiscordLink) TableName() string { return "linked_users" }

type LegacyFeaturedLevel struct {
	ID       int32 `gorm:"column:id;primaryKey"`
	LevelID  int32 `gorm:"column:level_id"`
	PickedAt int64 `gorm:"column:picked_at"`
	PickedBy int32 `gorm:"column:picked_by"`
	IsActive bool  `gorm:"column:is_active"`
	RateTier int32 `gorm:"column:rate_tier"`
}

func (LegacyFeaturedLevel) TableName() string { return "featured_levels" }
