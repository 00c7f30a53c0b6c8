package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tourneyreg/internal/common"
	"tourneyreg/internal/middleware"
	"tourneyreg/pkg/responses"
)

type UserController struct {
	repo UserRepository
}

func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// @Summary      Current user profile
// @Description  Returns the account identified by the user_hash cookie.
// @Tags         Users
// @Produce      json
// @Success      200 {object} User
// @Failure      401 {object} responses.ErrorResponse "Missing or unknown user_hash cookie"
// @Failure      404 {object} responses.ErrorResponse "User not found"
// @Router       /users/me [get]
func (uc *UserController) GetMe(c *gin.Context) {
	userHash, err := middleware.GetUserHashFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := uc.repo.GetUser(userHash)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			responses.NotFound(c, "User")
			return
		}
		logrus.WithError(err).Error("user lookup failed")
		responses.InternalServerError(c, "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      List users
// @Description  Paginated user listing in registration order.
// @Tags         Users
// @Produce      json
// @Param        skip   query int false "Rows to skip" default(0)
// @Param        limit  query int false "Max rows to return" default(100)
// @Success      200 {object} responses.ListResponse
// @Router       /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	skip, limit, err := common.ParsePagination(c)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	users, err := uc.repo.GetUsers(skip, limit)
	if err != nil {
		logrus.WithError(err).Error("user listing failed")
		responses.InternalServerError(c, "")
		return
	}
	responses.SendList(c, users, skip, limit)
}
