package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"joke_suggestions_system/internal/db/models"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const ignoreCommandName = "ignore"

type ignoreCommand struct {
	engine *engine.Engine
	logger *zap.SugaredLogger
}

func NewIgnoreCommand(engine *engine.Engine, logger *zap.SugaredLogger) Command {
	return &ignoreCommand{
		engine: engine,
		logger: logger,
	}
}

func (c *ignoreCommand) CanHandle(command string) bool {
	return command == ignoreCommandName
}

func (c *ignoreCommand) Handle(_ context.Context, _, arguments string, actor engine.Actor, _ *discordgo.Session, _ string) []*discordgo.MessageSend {
	category := models.Category(strings.TrimSpace(arguments))
	if category == "" {
		return []*discordgo.MessageSend{dbot.InfoMessage(
			"Utilisation : `!ignore <catégorie>`\nCatégories : " + categoryList(),
		)}
	}

	ignored, err := c.engine.IgnoreCategory(actor, category)
	if err != nil {
		var validationErr *engine.ValidationError
		if errors.As(err, &validationErr) {
			return []*discordgo.MessageSend{dbot.ErrorMessage(validationErr.Reason)}
		}

		c.logger.Errorw("failed to toggle ignored category", "category", category, "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	if ignored {
		return []*discordgo.MessageSend{dbot.SuccessMessage(
			fmt.Sprintf("La catégorie %s est maintenant ignorée", models.CategoryNames[category]),
		)}
	}

	return []*discordgo.MessageSend{dbot.SuccessMessage(
		fmt.Sprintf("La catégorie %s n'est plus ignorée", models.CategoryNames[category]),
	)}
}
