package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tourneyreg/internal/common"
	"tourneyreg/internal/middleware"
	"tourneyreg/internal/user"
	"tourneyreg/pkg/hashing"
	"tourneyreg/pkg/responses"
)

type TeamController struct {
	repo TeamRepository
}

func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// @Summary      Create a team
// @Description  Creates a team with a fresh random team_hash and makes the caller its first member.
// @Tags         Teams
// @Accept       json
// @Produce      json
// @Param        team body CreateTeamInput true "Team fields"
// @Success      201 {object} Team
// @Failure      400 {object} responses.ErrorResponse "Invalid body"
// @Failure      409 {object} responses.ErrorResponse "Caller already on a team or title taken"
// @Router       /team/create [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var input CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	t := &Team{
		TeamHash:  hashing.HashWithRandom(userHash),
		Title:     input.Title,
		AvatarURL: input.AvatarURL,
	}
	if err := tc.repo.CreateTeam(t, userHash); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyOnTeam):
			responses.Conflict(c, "You are already on a team")
		case errors.Is(err, ErrDuplicateTitle):
			responses.Conflict(c, "A team with this title already exists")
		case errors.Is(err, user.ErrUserNotFound):
			responses.NotFound(c, "User")
		default:
			logrus.WithError(err).Error("team creation failed")
			responses.InternalServerError(c, "")
		}
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Join a team
// @Tags         Teams
// @Produce      json
// @Param        team_hash query string true "Team to join"
// @Success      200 {object} user.User
// @Failure      404 {object} responses.ErrorResponse "Team not found"
// @Failure      409 {object} responses.ErrorResponse "Caller already on a team"
// @Router       /team/join [post]
func (tc *TeamController) JoinTeam(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	teamHash := c.Query("team_hash")
	if teamHash == "" {
		responses.BadRequest(c, "team_hash query parameter is required")
		return
	}

	u, err := tc.repo.AddToTeam(teamHash, userHash)
	if err != nil {
		switch {
		case errors.Is(err, ErrTeamNotFound):
			responses.NotFound(c, "Team")
		case errors.Is(err, user.ErrUserNotFound):
			responses.NotFound(c, "User")
		case errors.Is(err, ErrAlreadyOnTeam):
			responses.Conflict(c, "You are already on a team")
		default:
			logrus.WithError(err).Error("team join failed")
			responses.InternalServerError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Leave current team
// @Tags         Teams
// @Produce      json
// @Success      200 {object} user.User
// @Failure      409 {object} responses.ErrorResponse "Caller is not on a team"
// @Router       /team/leave [post]
func (tc *TeamController) LeaveTeam(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := tc.repo.LeaveTeam(userHash)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			responses.NotFound(c, "User")
		case errors.Is(err, ErrNotOnTeam):
			responses.Conflict(c, "You are not on a team")
		default:
			logrus.WithError(err).Error("team leave failed")
			responses.InternalServerError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Invite a user to the caller's team
// @Description  The caller must be on a team; the invited user is addressed by osu! id.
// @Tags         Teams
// @Produce      json
// @Param        other_user_osu_id query int true "osu! id of the user to invite"
// @Success      201 {object} Invite
// @Failure      404 {object} responses.ErrorResponse "Invited user not found"
// @Failure      409 {object} responses.ErrorResponse "Caller teamless, duplicate invite, or target already on the team"
// @Router       /team/invite [post]
func (tc *TeamController) CreateInvite(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	osuID, err := strconv.Atoi(c.Query("other_user_osu_id"))
	if err != nil {
		responses.BadRequest(c, "other_user_osu_id must be an integer")
		return
	}

	invite, err := tc.repo.CreateInvite(userHash, osuID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			responses.NotFound(c, "User")
		case errors.Is(err, ErrNotOnTeam):
			responses.Conflict(c, "You must be on a team to invite users")
		case errors.Is(err, ErrAlreadyOnThisTeam):
			responses.Conflict(c, "That user is already on your team")
		case errors.Is(err, ErrInviteExists):
			responses.Conflict(c, "That user already has a pending invite")
		default:
			logrus.WithError(err).Error("invite creation failed")
			responses.InternalServerError(c, "")
		}
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// @Summary      List teams
// @Tags         Teams
// @Produce      json
// @Param        skip   query int false "Rows to skip" default(0)
// @Param        limit  query int false "Max rows to return" default(100)
// @Success      200 {object} responses.ListResponse
// @Router       /teams [get]
func (tc *TeamController) ListTeams(c *gin.Context) {
	skip, limit, err := common.ParsePagination(c)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	teams, err := tc.repo.GetTeams(skip, limit)
	if err != nil {
		logrus.WithError(err).Error("team listing failed")
		responses.InternalServerError(c, "")
		return
	}
	responses.SendList(c, teams, skip, limit)
}

// @Summary      Invites addressed to the current user
// @Tags         Invites
// @Produce      json
// @Success      200 {array} Invite
// @Router       /users/me/invites [get]
func (tc *TeamController) ListMyInvites(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	invites, err := tc.repo.GetUserInvites(userHash)
	if err != nil {
		logrus.WithError(err).Error("invite listing failed")
		responses.InternalServerError(c, "")
		return
	}
	c.JSON(http.StatusOK, invites)
}

// @Summary      Invites for a team
// @Tags         Invites
// @Produce      json
// @Param        team_hash query string true "Team hash"
// @Success      200 {array} Invite
// @Router       /team/invites [get]
func (tc *TeamController) ListTeamInvites(c *gin.Context) {
	teamHash := c.Query("team_hash")
	if teamHash == "" {
		responses.BadRequest(c, "team_hash query parameter is required")
		return
	}

	invites, err := tc.repo.GetTeamInvites(teamHash)
	if err != nil {
		logrus.WithError(err).Error("invite listing failed")
		responses.InternalServerError(c, "")
		return
	}
	c.JSON(http.StatusOK, invites)
}
