package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/dataset"
	"joke_suggestions_system/internal/db"
	"joke_suggestions_system/internal/db/repositories"
	"joke_suggestions_system/internal/di"
	discordbot "joke_suggestions_system/internal/discord_bot"
	"joke_suggestions_system/internal/discord_bot/commands"
	"joke_suggestions_system/internal/discord_bot/modules"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/ratelimit"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadSuggestionsBotConfig()
	logger := di.NewLogger(config.Logger.AppName, config.App.Environment, config.Logger.URL)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(logger)
	}()

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
	approvalRepository := repositories.NewApprovalRepository(database)
	disapprovalRepository := repositories.NewDisapprovalRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	godfatherRepository := repositories.NewGodfatherRepository(database)

	datasetService := dataset.NewService(config.JokesAPI, redisClient)
	platform := discordbot.NewPlatform(session, config.Discord, logger)
	ledger := engine.NewLedger(approvalRepository, disapprovalRepository, voteRepository, logger)

	jokeEngine := engine.NewEngine(
		engine.Config{
			NeededSuggestionsApprovals:    config.App.NeededSuggestionsApprovals,
			NeededCorrectionsApprovals:    config.App.NeededCorrectionsApprovals,
			NeededSuggestionsDisapprovals: config.App.NeededSuggestionsDisapprovals,
			NeededCorrectionsDisapprovals: config.App.NeededCorrectionsDisapprovals,
			MaxJokePartLength:             config.App.MaxJokePartLength,
			DuplicateScoreThreshold:       config.App.DuplicateScoreThreshold,
			SimilarScoreThreshold:         config.App.SimilarScoreThreshold,
		},
		proposalRepository,
		godfatherRepository,
		ledger,
		platform,
		datasetService,
		logger,
	)

	limiter := ratelimit.New(time.Duration(config.App.SubmissionCooldownSeconds) * time.Second)
	limiter.StartCleanup(10 * time.Minute)

	stickys := modules.NewStickys(session, redisClient, datasetService, config.Discord, logger)
	votes := modules.NewVotes(jokeEngine, proposalRepository, voteRepository, stickys, config.Discord, logger)

	logger.Info("starting bot")
	bot := discordbot.NewBot(
		session,
		config.Discord,
		jokeEngine,
		[]commands.Command{
			commands.NewSuggestCommand(jokeEngine, config.App, config.Discord, limiter, logger),
			commands.NewCorrectCommand(jokeEngine, config.App, config.Discord, limiter, logger),
			commands.NewStatsCommand(proposalRepository, approvalRepository, disapprovalRepository, voteRepository, logger),
			commands.NewJokeCommand(datasetService, logger),
			commands.NewIgnoreCommand(jokeEngine, logger),
		},
		stickys,
		votes,
		logger,
	)

	if err := bot.Start(); err != nil {
		logger.Fatalw("failed to start bot", "error", err)
	}
	logger.Info("bot started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("stopping bot")
	if err := bot.Stop(); err != nil {
		logger.Errorw("failed to stop bot", "error", err)
	}
}

func settingUpHealthCheckServer(logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/suggestions-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: ":8080", Handler: mux}

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
