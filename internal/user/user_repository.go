package user

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUser(userHash string) (*User, error)
	GetUserByOsuID(osuID int) (*User, error)
	CreateOsuUser(u *User) error
	UpgradeToDiscordUser(userHash string, link DiscordLink) (*User, error)
	GetUsers(skip, limit int) ([]User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUser(userHash string) (*User, error) {
	var u User
	if err := r.db.First(&u, "user_hash = ?", userHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetUserByOsuID(osuID int) (*User, error) {
	var u User
	if err := r.db.First(&u, "osu_id = ?", osuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateOsuUser(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *userRepository) UpgradeToDiscordUser(userHash string, link DiscordLink) (*User, error) {
	u, err := r.GetUser(userHash)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"discord_id":         link.DiscordID,
		"discord_avatar_url": link.AvatarURL,
		"discord_tag":        link.Tag,
		"discord_linked":     true,
	}
	if err := r.db.Model(u).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	u.DiscordID = &link.DiscordID
	u.DiscordAvatarURL = link.AvatarURL
	u.DiscordTag = link.Tag
	u.DiscordLinked = true
	return u, nil
}

func (r *userRepository) GetUsers(skip, limit int) ([]User, error) {
	var users []User
	if err := r.db.Offset(skip).Limit(limit).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
