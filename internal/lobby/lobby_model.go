package lobby

import (
	"time"

	"gorm.io/gorm"

	"tourneyreg/internal/team"
)

// QualifierLobby is a scheduled qualifier slot that teams are assigned to.
type QualifierLobby struct {
	gorm.Model
	Name        string    `gorm:"not null" json:"name"`
	RefereeHash *string   `gorm:"size:64" json:"referee_hash"`
	ScheduledAt time.Time `json:"scheduled_at"`

	Teams []team.Team `gorm:"foreignKey:LobbyID" json:"teams,omitempty"`
}

// CreateLobbyInput is the request body for POST /lobby/create.
type CreateLobbyInput struct {
	Name        string    `json:"name" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	RefereeHash *string   `json:"referee_hash"`
}
