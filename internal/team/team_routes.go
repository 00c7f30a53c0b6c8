package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourneyreg/internal/middleware"
)

func RegisterTeamRoutes(router *gin.Engine, db *gorm.DB) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo)

	router.GET("/teams", controller.ListTeams)
	router.GET("/team/invites", controller.ListTeamInvites)

	identified := router.Group("/")
	identified.Use(middleware.IdentifyMiddleware(db))
	{
		identified.POST("/team/create", controller.CreateTeam)
		identified.POST("/team/join", controller.JoinTeam)
		identified.POST("/team/leave", controller.LeaveTeam)
		identified.POST("/team/invite", controller.CreateInvite)
		identified.GET("/users/me/invites", controller.ListMyInvites)
	}
}
