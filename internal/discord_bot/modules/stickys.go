// Package modules holds the channel-level behaviors of the suggestions bot:
// the sticky welcome messages and the reaction votes.
package modules

import (
	"context"
	"fmt"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/dataset"
	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Stickys keeps a welcome embed as the last message of the suggestions and
// corrections channels. The current sticky message id is tracked in redis so
// the bot and the refresh service share it.
type Stickys struct {
	session *discordgo.Session
	cache   *redis.Client
	dataset dataset.Service
	config  configs.Discord
	logger  *zap.SugaredLogger
}

func NewStickys(
	session *discordgo.Session,
	cache *redis.Client,
	dataset dataset.Service,
	config configs.Discord,
	logger *zap.SugaredLogger,
) *Stickys {
	return &Stickys{
		session: session,
		cache:   cache,
		dataset: dataset,
		config:  config,
		logger:  logger,
	}
}

func stickyKey(channelID string) string {
	return "sticky:" + channelID
}

// OnChannelMessage reposts the sticky when channel activity buried it. The
// sticky's own arrival is not activity.
func (s *Stickys) OnChannelMessage(ctx context.Context, channelID, messageID string) {
	if channelID != s.config.SuggestionsChannelID && channelID != s.config.CorrectionsChannelID {
		return
	}

	current, err := s.cache.Get(ctx, stickyKey(channelID)).Result()
	if err == nil && current == messageID {
		return
	}

	s.Reload(ctx, channelID)
}

// ReloadAll refreshes the stickys of both managed channels.
func (s *Stickys) ReloadAll(ctx context.Context) {
	s.Reload(ctx, s.config.SuggestionsChannelID)
	s.Reload(ctx, s.config.CorrectionsChannelID)
}

// Reload deletes the current sticky and posts a fresh one at the bottom of
// the channel.
func (s *Stickys) Reload(ctx context.Context, channelID string) {
	key := stickyKey(channelID)

	if previous, err := s.cache.Get(ctx, key).Result(); err == nil && previous != "" {
		if err := s.session.ChannelMessageDelete(channelID, previous); err != nil {
			s.logger.Warnw("failed to delete previous sticky", "channel_id", channelID, "error", err)
		}
	}

	message, err := s.session.ChannelMessageSendEmbed(channelID, s.buildEmbed(ctx, channelID))
	if err != nil {
		s.logger.Errorw("failed to post sticky", "channel_id", channelID, "error", err)
		return
	}

	if err := s.cache.Set(ctx, key, message.ID, 0).Err(); err != nil {
		s.logger.Errorw("failed to store sticky id", "channel_id", channelID, "error", err)
	}
}

// IsSticky reports whether the message is a tracked sticky, so deletion
// handlers can tell a sticky rotation apart from a proposal removal.
func (s *Stickys) IsSticky(ctx context.Context, channelID, messageID string) bool {
	current, err := s.cache.Get(ctx, stickyKey(channelID)).Result()
	return err == nil && current == messageID
}

func (s *Stickys) buildEmbed(ctx context.Context, channelID string) *discordgo.MessageEmbed {
	if channelID == s.config.CorrectionsChannelID {
		return &discordgo.MessageEmbed{
			Title: "Corrections",
			Description: "Une blague mal catégorisée, une faute d'orthographe ?\n" +
				"Proposez une correction avec la commande `!correct` et les parrains s'en occupent.",
			Color: presentation.ColorPrimary,
		}
	}

	description := "Proposez vos blagues avec la commande `!suggest` et votez pour " +
		"celles des autres avec " + s.config.UpEmoji + " et " + s.config.DownEmoji + ".\n" +
		"Les parrains décident de leur ajout à l'API."

	if count, err := s.dataset.Count(ctx); err == nil {
		description += fmt.Sprintf("\n\nBlagues publiées : **%d**", count)
	} else {
		s.logger.Warnw("failed to count jokes", "error", err)
	}

	return &discordgo.MessageEmbed{
		Title:       "Suggestions de blagues",
		Description: description,
		Color:       presentation.ColorPrimary,
	}
}
