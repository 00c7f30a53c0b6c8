package main

import (
	"github.com/sirupsen/logrus"

	"tourneyreg/config"
	_ "tourneyreg/docs"
	"tourneyreg/internal/lobby"
	"tourneyreg/internal/team"
	"tourneyreg/internal/user"
	"tourneyreg/routes"
)

// @title Tournament Registration API
// @version 1.0
// @description Backend for tournament team registration: osu!/discord identification, teams, invites and qualifier lobbies.
// @host localhost:8090
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	err = db.AutoMigrate(
		&user.User{},
		&team.Team{}, &team.Invite{},
		&lobby.QualifierLobby{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("AutoMigrate failed")
	}
	logrus.Info("AutoMigrate successful")

	r := routes.SetupRoutes(db, cfg)

	logrus.WithFields(logrus.Fields{
		"port": cfg.App.Port,
		"env":  cfg.App.Env,
	}).Info("starting server")
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logrus.WithError(err).Fatal("failed to run server")
	}
}
