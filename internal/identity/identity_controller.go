package identity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"tourneyreg/config"
	"tourneyreg/internal/middleware"
	"tourneyreg/internal/user"
	"tourneyreg/pkg/hashing"
	"tourneyreg/pkg/responses"
)

// cookieMaxAge is 30 days, matching the frontend's session expectations.
const cookieMaxAge = 2592000

const (
	osuTokenURL   = "https://osu.ppy.sh/oauth/token"
	osuAuthURL    = "https://osu.ppy.sh/oauth/authorize"
	osuProfileURL = "https://osu.ppy.sh/api/v2/me/osu"

	discordTokenURL   = "https://discord.com/api/oauth2/token"
	discordAuthURL    = "https://discord.com/api/oauth2/authorize"
	discordProfileURL = "https://discord.com/api/v10/users/@me"
)

type IdentityController struct {
	users    user.UserRepository
	hasher   *hashing.Hasher
	frontend string
	osu      *Provider
	discord  *Provider
}

func NewIdentityController(users user.UserRepository, hasher *hashing.Hasher, cfg *config.Config) *IdentityController {
	return &IdentityController{
		users:    users,
		hasher:   hasher,
		frontend: cfg.App.FrontendHomepage,
		osu: &Provider{
			Name: "osu",
			Config: &oauth2.Config{
				ClientID:     cfg.Osu.ClientID,
				ClientSecret: cfg.Osu.ClientSecret,
				RedirectURL:  cfg.App.RedirectURI + "/osu-identify",
				Endpoint:     oauth2.Endpoint{AuthURL: osuAuthURL, TokenURL: osuTokenURL},
			},
			ProfileURL: osuProfileURL,
		},
		discord: &Provider{
			Name: "discord",
			Config: &oauth2.Config{
				ClientID:     cfg.Discord.ClientID,
				ClientSecret: cfg.Discord.ClientSecret,
				RedirectURL:  cfg.App.RedirectURI + "/discord-identify",
				Endpoint:     oauth2.Endpoint{AuthURL: discordAuthURL, TokenURL: discordTokenURL},
			},
			ProfileURL: discordProfileURL,
		},
	}
}

// @Summary      osu! OAuth callback
// @Description  Exchanges the authorization code, derives the stable user_hash, creates the account on first sight, sets the session cookie and redirects to the frontend.
// @Tags         Identity
// @Param        code query string true "Authorization code"
// @Success      302
// @Failure      500 {object} responses.ErrorResponse "Upstream exchange failed"
// @Router       /osu-identify [get]
func (ic *IdentityController) OsuIdentify(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		responses.BadRequest(c, "code query parameter is required")
		return
	}

	var profile OsuProfile
	if err := ic.osu.Identify(c.Request.Context(), code, &profile); err != nil {
		logrus.WithError(err).WithField("provider", "osu").Error("identification failed")
		responses.InternalServerError(c, "Something went wrong with the authentication")
		return
	}
	if err := profile.Validate(); err != nil {
		logrus.WithError(err).WithField("provider", "osu").Error("invalid profile response")
		responses.InternalServerError(c, "Something went wrong with the authentication")
		return
	}

	userHash := ic.hasher.HashWithSecret(strconv.Itoa(profile.ID))

	_, err := ic.users.GetUser(userHash)
	switch {
	case err == nil:
		// Known account; identifying again only refreshes the cookie.
	case errors.Is(err, user.ErrUserNotFound):
		newUser := &user.User{
			UserHash:      userHash,
			OsuID:         profile.ID,
			OsuUsername:   profile.Username,
			OsuAvatarURL:  profile.AvatarURL,
			OsuGlobalRank: profile.Statistics.GlobalRank,
			BWSRank:       profile.BWSRank(),
			BadgeCount:    len(profile.Badges),
			OsuLinked:     true,
		}
		if err := ic.users.CreateOsuUser(newUser); err != nil && !errors.Is(err, user.ErrDuplicateUser) {
			logrus.WithError(err).Error("user creation failed")
			responses.InternalServerError(c, "")
			return
		}
	default:
		logrus.WithError(err).Error("user lookup failed")
		responses.InternalServerError(c, "")
		return
	}

	ic.setSessionCookie(c, userHash)
	c.Redirect(http.StatusFound, ic.frontend)
}

// @Summary      Discord OAuth callback
// @Description  Requires an existing user_hash cookie; links the discord account to it and redirects to the frontend.
// @Tags         Identity
// @Param        code query string true "Authorization code"
// @Success      302
// @Failure      401 {object} responses.ErrorResponse "No user_hash cookie"
// @Failure      404 {object} responses.ErrorResponse "Unknown user_hash"
// @Router       /discord-identify [get]
func (ic *IdentityController) DiscordIdentify(c *gin.Context) {
	userHash, err := c.Cookie(middleware.CookieName)
	if err != nil || userHash == "" {
		responses.Unauthorized(c, "Identify with osu! before linking discord")
		return
	}

	code := c.Query("code")
	if code == "" {
		responses.BadRequest(c, "code query parameter is required")
		return
	}

	var profile DiscordProfile
	if err := ic.discord.Identify(c.Request.Context(), code, &profile); err != nil {
		logrus.WithError(err).WithField("provider", "discord").Error("identification failed")
		responses.InternalServerError(c, "Something went wrong with the authentication")
		return
	}
	if err := profile.Validate(); err != nil {
		logrus.WithError(err).WithField("provider", "discord").Error("invalid profile response")
		responses.InternalServerError(c, "Something went wrong with the authentication")
		return
	}

	link := user.DiscordLink{
		DiscordID: profile.ID,
		AvatarURL: profile.AvatarURL(),
		Tag:       profile.Tag(),
	}
	if _, err := ic.users.UpgradeToDiscordUser(userHash, link); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			responses.NotFound(c, "User")
		case errors.Is(err, user.ErrDuplicateUser):
			responses.Conflict(c, "This discord account is already linked")
		default:
			logrus.WithError(err).Error("discord linkage failed")
			responses.InternalServerError(c, "")
		}
		return
	}

	ic.setSessionCookie(c, userHash)
	c.Redirect(http.StatusFound, ic.frontend)
}

func (ic *IdentityController) setSessionCookie(c *gin.Context, userHash string) {
	c.SetCookie(middleware.CookieName, userHash, cookieMaxAge, "/", "", false, false)
}
