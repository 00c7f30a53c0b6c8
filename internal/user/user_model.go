package user

import "time"

// User is keyed by the derived user_hash rather than a surrogate id, so
// the session cookie value doubles as the primary key.
type User struct {
	UserHash      string `gorm:"primaryKey;size:64" json:"user_hash"`
	OsuID         int    `gorm:"uniqueIndex;not null" json:"osu_id"`
	OsuUsername   string `gorm:"unique" json:"osu_username"`
	OsuAvatarURL  string `json:"osu_avatar_url"`
	OsuGlobalRank *int   `json:"osu_global_rank"`
	BWSRank       int    `json:"bws_rank"`
	BadgeCount    int    `json:"badge_count"`
	OsuLinked     bool   `gorm:"default:true" json:"osu_linked"`

	DiscordID        *string `gorm:"uniqueIndex" json:"discord_id"`
	DiscordAvatarURL string  `json:"discord_avatar_url"`
	DiscordTag       string  `json:"discord_tag"`
	DiscordLinked    bool    `gorm:"default:false" json:"discord_linked"`

	Banned bool `gorm:"default:false" json:"banned"`
	Admin  bool `gorm:"default:false" json:"admin"`

	// TeamHash is nil while the user is teamless. "One team per user"
	// falls out of this being a single column.
	TeamHash *string `gorm:"size:64;index" json:"team_hash"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DiscordLink carries the secondary-provider fields applied when an
// existing account links discord. Discord ids are serialized as strings.
type DiscordLink struct {
	DiscordID string
	AvatarURL string
	Tag       string
}
