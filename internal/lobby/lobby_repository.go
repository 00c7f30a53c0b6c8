package lobby

import (
	"errors"

	"gorm.io/gorm"

	"tourneyreg/internal/team"
	"tourneyreg/internal/user"
)

var ErrLobbyNotFound = errors.New("lobby not found")

// LobbyRepository defines the interface for qualifier lobby data operations
type LobbyRepository interface {
	CreateLobby(l *QualifierLobby) error
	GetLobby(id uint) (*QualifierLobby, error)
	GetLobbies(skip, limit int) ([]QualifierLobby, error)
	AssignTeam(lobbyID uint, teamHash string) error
	SetReferee(lobbyID uint, userHash string) error
}

type lobbyRepository struct {
	db *gorm.DB
}

// NewLobbyRepository creates a new instance of LobbyRepository
func NewLobbyRepository(db *gorm.DB) LobbyRepository {
	return &lobbyRepository{db: db}
}

func (r *lobbyRepository) CreateLobby(l *QualifierLobby) error {
	if l.RefereeHash != nil {
		var count int64
		if err := r.db.Model(&user.User{}).Where("user_hash = ?", *l.RefereeHash).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return user.ErrUserNotFound
		}
	}
	return r.db.Create(l).Error
}

func (r *lobbyRepository) GetLobby(id uint) (*QualifierLobby, error) {
	var l QualifierLobby
	if err := r.db.Preload("Teams").First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLobbyNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *lobbyRepository) GetLobbies(skip, limit int) ([]QualifierLobby, error) {
	var lobbies []QualifierLobby
	if err := r.db.Preload("Teams").Offset(skip).Limit(limit).Order("scheduled_at asc").Find(&lobbies).Error; err != nil {
		return nil, err
	}
	return lobbies, nil
}

func (r *lobbyRepository) AssignTeam(lobbyID uint, teamHash string) error {
	var count int64
	if err := r.db.Model(&QualifierLobby{}).Where("id = ?", lobbyID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrLobbyNotFound
	}

	result := r.db.Model(&team.Team{}).Where("team_hash = ?", teamHash).Update("lobby_id", lobbyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (r *lobbyRepository) SetReferee(lobbyID uint, userHash string) error {
	var count int64
	if err := r.db.Model(&user.User{}).Where("user_hash = ?", userHash).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return user.ErrUserNotFound
	}

	result := r.db.Model(&QualifierLobby{}).Where("id = ?", lobbyID).Update("referee_hash", userHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLobbyNotFound
	}
	return nil
}
