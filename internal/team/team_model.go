package team

import (
	"time"

	"gorm.io/gorm"

	"tourneyreg/internal/user"
)

// Team is keyed by a random team_hash so join links are unguessable.
type Team struct {
	TeamHash  string `gorm:"primaryKey;size:64" json:"team_hash"`
	Title     string `gorm:"unique;not null" json:"title"`
	AvatarURL string `json:"avatar_url"`

	// LobbyID is set when the team is scheduled into a qualifier lobby.
	LobbyID *uint `gorm:"index" json:"lobby_id"`

	Members []user.User `gorm:"foreignKey:TeamHash;references:TeamHash" json:"members,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Invite represents a pending team-join offer. Accepting happens through
// the join flow; invites for the pair are consumed there.
type Invite struct {
	gorm.Model
	InviterHash string `gorm:"size:64;index;not null" json:"inviter_hash"`
	InvitedHash string `gorm:"size:64;index;not null" json:"invited_hash"`
	TeamHash    string `gorm:"size:64;index;not null" json:"team_hash"`
}

// CreateTeamInput is the request body for POST /team/create.
type CreateTeamInput struct {
	Title     string `json:"title" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}
