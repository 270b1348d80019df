package commands

import (
	"context"

	"joke_suggestions_system/internal/dataset"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const jokeCommandName = "joke"

type jokeCommand struct {
	dataset dataset.Service
	logger  *zap.SugaredLogger
}

func NewJokeCommand(dataset dataset.Service, logger *zap.SugaredLogger) Command {
	return &jokeCommand{
		dataset: dataset,
		logger:  logger,
	}
}

func (c *jokeCommand) CanHandle(command string) bool {
	return command == jokeCommandName
}

func (c *jokeCommand) Handle(ctx context.Context, _, _ string, _ engine.Actor, _ *discordgo.Session, _ string) []*discordgo.MessageSend {
	joke, err := c.dataset.RandomJoke(ctx)
	if err != nil {
		c.logger.Errorw("failed to get random joke", "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	return []*discordgo.MessageSend{{
		Embed: &discordgo.MessageEmbed{
			Description: presentation.FormatJoke(joke.Category, joke.Question, joke.Answer),
			Color:       presentation.ColorPrimary,
		},
	}}
}
