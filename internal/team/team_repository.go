package team

import (
	"errors"

	"gorm.io/gorm"

	"tourneyreg/internal/user"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrDuplicateTitle    = errors.New("team title already taken")
	ErrAlreadyOnTeam     = errors.New("user is already on a team")
	ErrNotOnTeam         = errors.New("user is not on a team")
	ErrInviteExists      = errors.New("user already has a pending invite for this team")
	ErrAlreadyOnThisTeam = errors.New("user is already on this team")
)

// TeamRepository defines the interface for team and invite data operations
type TeamRepository interface {
	CreateTeam(t *Team, creatorHash string) error
	GetTeam(teamHash string) (*Team, error)
	GetTeams(skip, limit int) ([]Team, error)
	AddToTeam(teamHash, userHash string) (*user.User, error)
	LeaveTeam(userHash string) (*user.User, error)

	CreateInvite(inviterHash string, invitedOsuID int) (*Invite, error)
	GetUserInvites(userHash string) ([]Invite, error)
	GetTeamInvites(teamHash string) ([]Invite, error)

	WithTransaction(txFunc func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// CreateTeam inserts the team and makes the creator its first member in
// one transaction, so a half-created team can never exist.
func (r *teamRepository) CreateTeam(t *Team, creatorHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var creator user.User
		if err := tx.First(&creator, "user_hash = ?", creatorHash).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}
		if creator.TeamHash != nil {
			return ErrAlreadyOnTeam
		}

		if err := tx.Create(t).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTitle
			}
			return err
		}

		// Guard on team_hash IS NULL so a concurrent join cannot put the
		// creator on two teams.
		result := tx.Model(&user.User{}).
			Where("user_hash = ? AND team_hash IS NULL", creatorHash).
			Update("team_hash", t.TeamHash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyOnTeam
		}
		return nil
	})
}

func (r *teamRepository) GetTeam(teamHash string) (*Team, error) {
	var t Team
	if err := r.db.Preload("Members").First(&t, "team_hash = ?", teamHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeams(skip, limit int) ([]Team, error) {
	var teams []Team
	if err := r.db.Preload("Members").Offset(skip).Limit(limit).Order("created_at asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// AddToTeam sets the user's team reference and consumes any pending
// invites for that team/user pair.
func (r *teamRepository) AddToTeam(teamHash, userHash string) (*user.User, error) {
	var joined user.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Team{}).Where("team_hash = ?", teamHash).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTeamNotFound
		}

		if err := tx.First(&joined, "user_hash = ?", userHash).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}
		if joined.TeamHash != nil {
			return ErrAlreadyOnTeam
		}

		result := tx.Model(&user.User{}).
			Where("user_hash = ? AND team_hash IS NULL", userHash).
			Update("team_hash", teamHash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyOnTeam
		}
		joined.TeamHash = &teamHash

		return tx.Where("team_hash = ? AND invited_hash = ?", teamHash, userHash).Delete(&Invite{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &joined, nil
}

func (r *teamRepository) LeaveTeam(userHash string) (*user.User, error) {
	var u user.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "user_hash = ?", userHash).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}
		if u.TeamHash == nil {
			return ErrNotOnTeam
		}

		if err := tx.Model(&user.User{}).Where("user_hash = ?", userHash).Update("team_hash", nil).Error; err != nil {
			return err
		}
		u.TeamHash = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateInvite validates that the inviter is on a team and that the
// invited user (looked up by osu id) is eligible, then records the offer.
// At most one pending invite may exist per team/user pair.
func (r *teamRepository) CreateInvite(inviterHash string, invitedOsuID int) (*Invite, error) {
	var invite Invite
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var inviter user.User
		if err := tx.First(&inviter, "user_hash = ?", inviterHash).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}
		if inviter.TeamHash == nil {
			return ErrNotOnTeam
		}

		var invited user.User
		if err := tx.First(&invited, "osu_id = ?", invitedOsuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrUserNotFound
			}
			return err
		}
		if invited.TeamHash != nil && *invited.TeamHash == *inviter.TeamHash {
			return ErrAlreadyOnThisTeam
		}

		var pending int64
		if err := tx.Model(&Invite{}).
			Where("team_hash = ? AND invited_hash = ?", *inviter.TeamHash, invited.UserHash).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrInviteExists
		}

		invite = Invite{
			InviterHash: inviter.UserHash,
			InvitedHash: invited.UserHash,
			TeamHash:    *inviter.TeamHash,
		}
		return tx.Create(&invite).Error
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *teamRepository) GetUserInvites(userHash string) ([]Invite, error) {
	var invites []Invite
	if err := r.db.Where("invited_hash = ?", userHash).Order("id asc").Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *teamRepository) GetTeamInvites(teamHash string) ([]Invite, error) {
	var invites []Invite
	if err := r.db.Where("team_hash = ?", teamHash).Order("id asc").Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *teamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&teamRepository{db: tx})
	})
}
