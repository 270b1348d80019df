package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/ratelimit"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const correctCommandName = "correct"

type correctCommand struct {
	engine        *engine.Engine
	appConfig     configs.App
	discordConfig configs.Discord
	limiter       *ratelimit.RateLimiter
	logger        *zap.SugaredLogger
}

func NewCorrectCommand(
	engine *engine.Engine,
	appConfig configs.App,
	discordConfig configs.Discord,
	limiter *ratelimit.RateLimiter,
	logger *zap.SugaredLogger,
) Command {
	return &correctCommand{
		engine:        engine,
		appConfig:     appConfig,
		discordConfig: discordConfig,
		limiter:       limiter,
		logger:        logger,
	}
}

func (c *correctCommand) CanHandle(command string) bool {
	return command == correctCommandName
}

func (c *correctCommand) Handle(ctx context.Context, _, arguments string, actor engine.Actor, session *discordgo.Session, channelID string) []*discordgo.MessageSend {
	if !c.limiter.CanUse(actor.ID) {
		wait := c.limiter.TimeUntilNext(actor.ID).Round(time.Second)
		return []*discordgo.MessageSend{dbot.ErrorMessage(fmt.Sprintf("Doucement ! Réessayez dans %s", wait))}
	}

	parts := jokeParts(arguments, 4)
	if parts == nil {
		return []*discordgo.MessageSend{dbot.InfoMessage(
			"Utilisation : `!correct <cible> | <catégorie> | <blague> | <réponse>`\n" +
				"La cible est l'identifiant du message de la suggestion, ou le numéro de la blague publiée.\n" +
				"Catégories : " + categoryList(),
		)}
	}

	request := engine.SubmitRequest{
		Actor:    actor,
		Kind:     models.ProposalKindCorrection,
		Category: models.Category(parts[1]),
		Question: parts[2],
		Answer:   parts[3],
	}

	target := parts[0]
	if isSnowflake(target) {
		request.SubjectMessageID = target
	} else {
		jokeID, err := strconv.ParseInt(target, 10, 64)
		if err != nil {
			return []*discordgo.MessageSend{dbot.ErrorMessage("La cible de la correction est introuvable")}
		}
		request.JokeID = &jokeID
	}

	confirmed, response := confirmSubmission(session, channelID, actor.ID, request, c.appConfig, c.logger)
	if !confirmed {
		return response
	}

	return submit(ctx, c.engine, request, c.discordConfig, c.logger)
}
