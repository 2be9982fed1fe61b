package models

// Punishment types, the only valid effective types after override
// resolution.
const (
	PunishmentMute    = "mute"
	PunishmentBan     = "ban"
	PunishmentRoomBan = "roomban"
)

// Audit log action types. The migration only ever synthesizes the three
// punishment types above; the rest are written by the new server at runtime
// and listed here to document the full domain of the audit_log type column.
const (
	AuditKick         = "kick"
	AuditNotice       = "notice"
	AuditEditMute     = "editmute"
	AuditUnmute       = "unmute"
	AuditEditBan      = "editban"
	AuditUnban        = "unban"
	AuditEditRoomBan  = "editroomban"
	AuditRoomUnban    = "roomunban"
	AuditEditRoles    = "editroles"
	AuditEditPassword = "editpassword"
)

// User is a row of the new accounts database. Cosmetic fields are
// zero-initialized at migration time; the game fills them in on first login.
type User struct {
	AccountID         int32    `gorm:"column:account_id;primaryKey"`
	Cube              int16    `gorm:"column:cube"`
	Color1            int16    `gorm:"column:color1"`
	Color2            int16    `gorm:"column:color2"`
	GlowColor         int16    `gorm:"column:glow_color"`
	Username          string   `gorm:"column:username"`
	NameColor         string   `gorm:"column:name_color"`
	IsWhitelisted     bool     `gorm:"column:is_whitelisted"`
	AdminPasswordHash string   `gorm:"column:admin_password_hash"`
	Roles             RoleList `gorm:"column:roles;type:text"`

	// id of the currently active punishment of each type, 0 = none
	ActiveMute    int32 `gorm:"column:active_mute"`
	ActiveBan     int32 `gorm:"column:active_ban"`
	ActiveRoomBan int32 `gorm:"column:active_room_ban"`

	DiscordID *int64 `gorm:"column:discord_id"`
}

func (User) TableName() string { return "user" }

// Punishment keeps its legacy id so that the active_* fields on User can
// reference it.
type Punishment struct {
	ID        int32  `gorm:"column:id;primaryKey;autoIncrement:false"`
	AccountID int32  `gorm:"column:account_id"`
	Type      string `gorm:"column:type"`
	Reason    string `gorm:"column:reason"`
	ExpiresAt int64  `gorm:"column:expires_at"`
	IssuedBy  int32  `gorm:"column:issued_by"`
	IssuedAt  int64  `gorm:"column:issued_at"`
}

func (Punishment) TableName() string { return "punishment" }

// AuditLogEntry is an immutable historical record of a moderation action.
// AccountID is the actor (0 for system actions), TargetAccountID the account
// the action applied to.
type AuditLogEntry struct {
	ID              int32  `gorm:"column:id;primaryKey"`
	AccountID       int32  `gorm:"column:account_id"`
	Type            string `gorm:"column:type"`
	Timestamp       int64  `gorm:"column:timestamp"`
	TargetAccountID int32  `gorm:"column:target_account_id"`
	Message         string `gorm:"column:message"`
	ExpiresAt       int64  `gorm:"column:expires_at"`
}

func (AuditLogEntry) TableName() string { return "audit_log" }

// FeaturedLevel lives in the separate features database. FeatureDuration is
// not present in the legacy schema and is always NULL after migration.
type FeaturedLevel struct {
	ID              int32  `gorm:"column:id;primaryKey"`
	LevelID         int32  `gorm:"column:level_id;uniqueIndex"`
	Name            string `gorm:"column:name"`
	Author          int32  `gorm:"column:author"`
	AuthorName      string `gorm:"column:author_name"`
	FeaturedAt      int64  `gorm:"column:featured_at"`
	RateTier        int32  `gorm:"column:rate_tier"`
	FeatureDuration *int32 `gorm:"column:feature_duration"`
}

func (FeaturedLevel) TableName() string { return "featured_level" }
