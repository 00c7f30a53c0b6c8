package lobby

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourneyreg/internal/middleware"
)

func RegisterLobbyRoutes(router *gin.Engine, db *gorm.DB) {
	repo := NewLobbyRepository(db)
	controller := NewLobbyController(repo)

	router.GET("/lobbies", controller.ListLobbies)

	admin := router.Group("/lobby")
	admin.Use(middleware.IdentifyMiddleware(db), middleware.RequireAdmin(db))
	{
		admin.POST("/create", controller.CreateLobby)
		admin.POST("/assign", controller.AssignTeam)
	}
}
