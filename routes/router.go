package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tourneyreg/config"
	"tourneyreg/internal/identity"
	"tourneyreg/internal/lobby"
	"tourneyreg/internal/team"
	"tourneyreg/internal/user"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	if cfg.App.Dev {
		// Dev-only: the frontend runs on another origin and sends the
		// session cookie, so credentials must be allowed.
		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  func(origin string) bool { return true },
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	identity.RegisterIdentityRoutes(r, db, cfg)
	user.RegisterUserRoutes(r, db)
	team.RegisterTeamRoutes(r, db)
	lobby.RegisterLobbyRoutes(r, db)

	return r
}
