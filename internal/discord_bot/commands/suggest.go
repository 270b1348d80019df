package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/presentation"
	"joke_suggestions_system/internal/ratelimit"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const suggestCommandName = "suggest"

type suggestCommand struct {
	engine        *engine.Engine
	appConfig     configs.App
	discordConfig configs.Discord
	limiter       *ratelimit.RateLimiter
	logger        *zap.SugaredLogger
}

func NewSuggestCommand(
	engine *engine.Engine,
	appConfig configs.App,
	discordConfig configs.Discord,
	limiter *ratelimit.RateLimiter,
	logger *zap.SugaredLogger,
) Command {
	return &suggestCommand{
		engine:        engine,
		appConfig:     appConfig,
		discordConfig: discordConfig,
		limiter:       limiter,
		logger:        logger,
	}
}

func (c *suggestCommand) CanHandle(command string) bool {
	return command == suggestCommandName
}

func (c *suggestCommand) Handle(ctx context.Context, _, arguments string, actor engine.Actor, session *discordgo.Session, channelID string) []*discordgo.MessageSend {
	if !c.limiter.CanUse(actor.ID) {
		wait := c.limiter.TimeUntilNext(actor.ID).Round(time.Second)
		return []*discordgo.MessageSend{dbot.ErrorMessage(fmt.Sprintf("Doucement ! Réessayez dans %s", wait))}
	}

	parts := jokeParts(arguments, 3)
	if parts == nil {
		return []*discordgo.MessageSend{dbot.InfoMessage(
			"Utilisation : `!suggest <catégorie> | <blague> | <réponse>`\nCatégories : " + categoryList(),
		)}
	}

	request := engine.SubmitRequest{
		Actor:    actor,
		Kind:     models.ProposalKindSuggestion,
		Category: models.Category(parts[0]),
		Question: parts[1],
		Answer:   parts[2],
	}

	confirmed, response := confirmSubmission(session, channelID, actor.ID, request, c.appConfig, c.logger)
	if !confirmed {
		return response
	}

	return submit(ctx, c.engine, request, c.discordConfig, c.logger)
}

// confirmSubmission previews the joke and waits for the author's reaction.
// The preview is removed either way.
func confirmSubmission(
	session *discordgo.Session,
	channelID, userID string,
	request engine.SubmitRequest,
	appConfig configs.App,
	logger *zap.SugaredLogger,
) (bool, []*discordgo.MessageSend) {
	preview, err := session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Description: presentation.FormatJoke(request.Category, request.Question, request.Answer),
			Color:       presentation.ColorInfo,
			Footer:      &discordgo.MessageEmbedFooter{Text: "Confirmez avec ✅"},
		},
	})
	if err != nil {
		logger.Errorw("failed to send preview", "error", err)
		return false, []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	timeout := time.Duration(appConfig.ConfirmTimeoutSeconds) * time.Second
	confirmed := dbot.AwaitConfirmation(session, channelID, preview.ID, userID, timeout)

	if err := session.ChannelMessageDelete(channelID, preview.ID); err != nil {
		logger.Errorw("failed to delete preview", "error", err)
	}

	if !confirmed {
		return false, []*discordgo.MessageSend{dbot.InfoMessage("Proposition annulée")}
	}

	return true, nil
}

func submit(
	ctx context.Context,
	jokeEngine *engine.Engine,
	request engine.SubmitRequest,
	discordConfig configs.Discord,
	logger *zap.SugaredLogger,
) []*discordgo.MessageSend {
	result, err := jokeEngine.Submit(ctx, request)
	if err != nil {
		var validationErr *engine.ValidationError
		if errors.As(err, &validationErr) {
			return []*discordgo.MessageSend{dbot.ErrorMessage(validationErr.Reason)}
		}

		logger.Errorw("failed to submit proposal", "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	if result.Duplicate != nil {
		message := dbot.ErrorMessage("Cette blague existe déjà :\n\n" +
			presentation.FormatJoke(result.Duplicate.Category, result.Duplicate.Question, result.Duplicate.Answer))
		return []*discordgo.MessageSend{message}
	}

	channelID := discordConfig.SuggestionsChannelID
	if request.Kind == models.ProposalKindCorrection {
		channelID = discordConfig.CorrectionsChannelID
	}
	link := dbot.MessageLink(discordConfig.GuildID, channelID, result.Proposal.MessageID)

	return []*discordgo.MessageSend{dbot.SuccessMessage("Proposition envoyée : " + link)}
}
