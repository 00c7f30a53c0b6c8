package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourneyreg/internal/middleware"
)

func RegisterUserRoutes(router *gin.Engine, db *gorm.DB) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo)

	router.GET("/users", controller.ListUsers)

	me := router.Group("/users/me")
	me.Use(middleware.IdentifyMiddleware(db))
	{
		me.GET("", controller.GetMe)
	}
}
