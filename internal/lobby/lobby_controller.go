package lobby

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tourneyreg/internal/common"
	"tourneyreg/internal/team"
	"tourneyreg/internal/user"
	"tourneyreg/pkg/responses"
)

type LobbyController struct {
	repo LobbyRepository
}

func NewLobbyController(repo LobbyRepository) *LobbyController {
	return &LobbyController{repo: repo}
}

// @Summary      List qualifier lobbies
// @Tags         Lobbies
// @Produce      json
// @Param        skip   query int false "Rows to skip" default(0)
// @Param        limit  query int false "Max rows to return" default(100)
// @Success      200 {object} responses.ListResponse
// @Router       /lobbies [get]
func (lc *LobbyController) ListLobbies(c *gin.Context) {
	skip, limit, err := common.ParsePagination(c)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	lobbies, err := lc.repo.GetLobbies(skip, limit)
	if err != nil {
		logrus.WithError(err).Error("lobby listing failed")
		responses.InternalServerError(c, "")
		return
	}
	responses.SendList(c, lobbies, skip, limit)
}

// @Summary      Create a qualifier lobby
// @Description  Admin only.
// @Tags         Lobbies
// @Accept       json
// @Produce      json
// @Param        lobby body CreateLobbyInput true "Lobby fields"
// @Success      201 {object} QualifierLobby
// @Failure      403 {object} responses.ErrorResponse "Caller is not an admin"
// @Router       /lobby/create [post]
func (lc *LobbyController) CreateLobby(c *gin.Context) {
	var input CreateLobbyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	l := &QualifierLobby{
		Name:        input.Name,
		ScheduledAt: input.ScheduledAt,
		RefereeHash: input.RefereeHash,
	}
	if err := lc.repo.CreateLobby(l); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			responses.NotFound(c, "Referee")
			return
		}
		logrus.WithError(err).Error("lobby creation failed")
		responses.InternalServerError(c, "")
		return
	}
	c.JSON(http.StatusCreated, l)
}

// @Summary      Assign a team to a lobby
// @Description  Admin only.
// @Tags         Lobbies
// @Produce      json
// @Param        lobby_id  query int    true "Lobby id"
// @Param        team_hash query string true "Team hash"
// @Success      200 {object} responses.SuccessResponse
// @Failure      404 {object} responses.ErrorResponse "Lobby or team not found"
// @Router       /lobby/assign [post]
func (lc *LobbyController) AssignTeam(c *gin.Context) {
	lobbyID, err := strconv.ParseUint(c.Query("lobby_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "lobby_id must be an integer")
		return
	}
	teamHash := c.Query("team_hash")
	if teamHash == "" {
		responses.BadRequest(c, "team_hash query parameter is required")
		return
	}

	if err := lc.repo.AssignTeam(uint(lobbyID), teamHash); err != nil {
		switch {
		case errors.Is(err, ErrLobbyNotFound):
			responses.NotFound(c, "Lobby")
		case errors.Is(err, team.ErrTeamNotFound):
			responses.NotFound(c, "Team")
		default:
			logrus.WithError(err).Error("lobby assignment failed")
			responses.InternalServerError(c, "")
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team assigned to lobby", nil)
}
