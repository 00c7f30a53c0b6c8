package identity

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourneyreg/config"
	"tourneyreg/internal/user"
	"tourneyreg/pkg/hashing"
)

func RegisterIdentityRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	repo := user.NewUserRepository(db)
	controller := NewIdentityController(repo, hashing.New(cfg.Secret), cfg)

	router.GET("/osu-identify", controller.OsuIdentify)
	router.GET("/discord-identify", controller.DiscordIdentify)
}
