package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env              string `env:"APP_ENV" envDefault:"development"`
		Port             string `env:"PORT" envDefault:"8090"`
		FrontendHomepage string `env:"FRONTEND_HOMEPAGE" envDefault:"http://localhost:3000"`
		RedirectURI      string `env:"REDIRECT_URI" envDefault:"http://localhost:8090"`
		Dev              bool   `env:"DEV" envDefault:"false"`
	}
	DB struct {
		Host     string `env:"DB_HOST" envDefault:"localhost"`
		Port     string `env:"DB_PORT" envDefault:"5432"`
		User     string `env:"DB_USER" envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME" envDefault:"tourneyreg_db"`
		SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	}
	// Secret keys the identity hasher. Changing it invalidates every
	// user_hash already issued, so treat it like a database credential.
	Secret string `env:"SECRET,notEmpty"`
	Osu    struct {
		ClientID     string `env:"OSU_CLIENT_ID,notEmpty"`
		ClientSecret string `env:"OSU_CLIENT_SECRET,notEmpty"`
	}
	Discord struct {
		ClientID     string `env:"DISCORD_CLIENT_ID,notEmpty"`
		ClientSecret string `env:"DISCORD_CLIENT_SECRET,notEmpty"`
	}
}

// Load reads .env (if present) and parses configuration from the
// environment. It fails rather than starting with a missing OAuth
// credential or hashing secret.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// ConnectDB opens the postgres connection described by cfg.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the repositories match on.
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
