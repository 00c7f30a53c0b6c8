package team

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
	RegisterTeamRoutes(r, db)
	return r, db
}

func doRequest(r *gin.Engine, method, target, body, userHash string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userHash != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: userHash})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTeamEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "creator", 101)

	w := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator")
	require.Equal(t, http.StatusCreated, w.Code)

	var created Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Alpha", created.Title)
	assert.Len(t, created.TeamHash, 64)

	var creator user.User
	require.NoError(t, db.First(&creator, "user_hash = ?", "creator").Error)
	require.NotNil(t, creator.TeamHash)
	assert.Equal(t, created.TeamHash, *creator.TeamHash)
}

func TestCreateTeamEndpointFreshHashPerTeam(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "creator-a", 101)
	seedUser(t, db, "creator-b", 102)

	first := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator-a")
	second := doRequest(r, http.MethodPost, "/team/create", `{"title":"Beta"}`, "creator-b")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)

	var a, b Team
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.NotEqual(t, a.TeamHash, b.TeamHash)
}

func TestCreateTeamEndpointRequiresCookie(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTeamEndpointUnknownCookie(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "unknown-hash")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTeamEndpointDuplicateTitle(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "creator-a", 101)
	seedUser(t, db, "creator-b", 102)

	first := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator-a")
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator-b")
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestJoinTeamEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "creator", 101)
	seedUser(t, db, "joiner", 102)

	created := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator")
	require.Equal(t, http.StatusCreated, created.Code)
	var team Team
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &team))

	w := doRequest(r, http.MethodPost, "/team/join?team_hash="+team.TeamHash, "", "joiner")
	require.Equal(t, http.StatusOK, w.Code)

	again := doRequest(r, http.MethodPost, "/team/join?team_hash="+team.TeamHash, "", "joiner")
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestLeaveTeamEndpointWhenTeamless(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "loner", 101)

	w := doRequest(r, http.MethodPost, "/team/leave", "", "loner")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTeamListingEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedUser(t, db, "creator", 101)

	created := doRequest(r, http.MethodPost, "/team/create", `{"title":"Alpha"}`, "creator")
	require.Equal(t, http.StatusCreated, created.Code)

	w := doRequest(r, http.MethodGet, "/teams", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Status string `json:"status"`
		Data   []Team `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, "success", listing.Status)
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "Alpha", listing.Data[0].Title)
}

func TestTeamInvitesEndpointRequiresTeamHash(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/team/invites", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
