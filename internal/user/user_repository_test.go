package user

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func testUser(hash string, osuID int) *User {
	return &User{
		UserHash:    hash,
		OsuID:       osuID,
		OsuUsername: fmt.Sprintf("player%d", osuID),
		OsuLinked:   true,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	rank := 1234
	created := testUser("hash-a", 101)
	created.OsuGlobalRank = &rank
	created.BWSRank = 1200
	created.BadgeCount = 2
	require.NoError(t, repo.CreateOsuUser(created))

	got, err := repo.GetUser("hash-a")
	require.NoError(t, err)
	assert.Equal(t, 101, got.OsuID)
	assert.Equal(t, "player101", got.OsuUsername)
	require.NotNil(t, got.OsuGlobalRank)
	assert.Equal(t, 1234, *got.OsuGlobalRank)
	assert.True(t, got.OsuLinked)
	assert.False(t, got.DiscordLinked)
	assert.Nil(t, got.TeamHash)
}

func TestGetUserNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.GetUser("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateDuplicateUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.CreateOsuUser(testUser("hash-a", 101)))
	err := repo.CreateOsuUser(testUser("hash-a", 102))
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestGetUserByOsuID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.CreateOsuUser(testUser("hash-a", 101)))

	got, err := repo.GetUserByOsuID(101)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", got.UserHash)

	_, err = repo.GetUserByOsuID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpgradeToDiscordUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.CreateOsuUser(testUser("hash-a", 101)))

	link := DiscordLink{
		DiscordID: "123456789",
		AvatarURL: "https://cdn.discordapp.com/avatars/123456789/abc.png",
		Tag:       "player#0001",
	}
	upgraded, err := repo.UpgradeToDiscordUser("hash-a", link)
	require.NoError(t, err)
	require.NotNil(t, upgraded.DiscordID)
	assert.Equal(t, "123456789", *upgraded.DiscordID)
	assert.True(t, upgraded.DiscordLinked)

	persisted, err := repo.GetUser("hash-a")
	require.NoError(t, err)
	assert.True(t, persisted.DiscordLinked)
	assert.Equal(t, "player#0001", persisted.DiscordTag)
}

func TestUpgradeUnknownUser(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.UpgradeToDiscordUser("missing", DiscordLink{DiscordID: "1"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUsersPagination(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.CreateOsuUser(testUser(fmt.Sprintf("hash-%d", i), 100+i)))
	}

	page, err := repo.GetUsers(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)

	all, err := repo.GetUsers(0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
