package lobby

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tourneyreg/internal/middleware"
	"tourneyreg/internal/user"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	r := gin.New()
	RegisterLobbyRoutes(r, db)
	return r, db
}

func createLobbyRequest(userHash string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/lobby/create",
		strings.NewReader(`{"name":"Q1","scheduled_at":"2026-09-05T14:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	if userHash != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: userHash})
	}
	return req
}

func TestCreateLobbyRequiresAdmin(t *testing.T) {
	r, db := setupTestRouter(t)
	require.NoError(t, db.Create(&user.User{UserHash: "pleb", OsuID: 101, OsuUsername: "pleb"}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, createLobbyRequest("pleb"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateLobbyAsAdmin(t *testing.T) {
	r, db := setupTestRouter(t)
	require.NoError(t, db.Create(&user.User{UserHash: "boss", OsuID: 101, OsuUsername: "boss", Admin: true}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, createLobbyRequest("boss"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created QualifierLobby
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Q1", created.Name)
	assert.NotZero(t, created.ID)
}

func TestListLobbiesEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	repo := NewLobbyRepository(db)
	require.NoError(t, repo.CreateLobby(&QualifierLobby{Name: "Q1"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lobbies", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Data []QualifierLobby `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Data, 1)
}
