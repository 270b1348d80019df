package main

import (
	"context"
	"time"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/dataset"
	"joke_suggestions_system/internal/db"
	"joke_suggestions_system/internal/db/repositories"
	"joke_suggestions_system/internal/di"
	discordbot "joke_suggestions_system/internal/discord_bot"
	"joke_suggestions_system/internal/discord_bot/modules"

	"github.com/go-co-op/gocron"
)

// The sticky service reposts the welcome embeds periodically, so the
// published joke count stays fresh even when the channels are quiet, and
// reminds the godfathers about pending proposals. It only uses Discord's
// REST API, the gateway stays closed.
func main() {
	scheduler := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadStickyServiceConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	logger.Info("starting redis")
	redisClient, err := db.StartRedis(config.Redis, logger)
	if err != nil {
		logger.Fatalw("failed to start redis", "error", err)
	}
	logger.Info("redis started")

	session, err := discordbot.NewSession(config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	proposalRepository := repositories.NewProposalRepository(database)
	godfatherRepository := repositories.NewGodfatherRepository(database)

	datasetService := dataset.NewService(config.JokesAPI, redisClient)
	stickys := modules.NewStickys(session, redisClient, datasetService, config.Discord, logger)
	reminders := modules.NewReminders(session, proposalRepository, godfatherRepository, config.Discord, logger)

	if _, err := scheduler.Every(30).Minutes().Do(func() {
		logger.Info("reloading stickys")
		stickys.ReloadAll(context.Background())
	}); err != nil {
		logger.Fatalw("failed to schedule sticky reload", "error", err)
	}

	if _, err := scheduler.Every(1).Day().At("18:00").Do(func() {
		logger.Info("sending pending proposals reminder")
		reminders.Send()
	}); err != nil {
		logger.Fatalw("failed to schedule reminder", "error", err)
	}

	scheduler.StartBlocking()
}
