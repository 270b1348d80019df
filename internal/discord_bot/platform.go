package discordbot

import (
	"context"
	"fmt"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Platform adapts the engine's platform port to Discord. A rendering is an
// embed message in the suggestions or corrections channel, the kind decides
// which.
type Platform struct {
	session *discordgo.Session
	config  configs.Discord
	logger  *zap.SugaredLogger
}

func NewPlatform(session *discordgo.Session, config configs.Discord, logger *zap.SugaredLogger) *Platform {
	return &Platform{
		session: session,
		config:  config,
		logger:  logger,
	}
}

func (p *Platform) channelFor(kind models.ProposalKind) string {
	if kind == models.ProposalKindSuggestion {
		return p.config.SuggestionsChannelID
	}
	return p.config.CorrectionsChannelID
}

func embedFromView(view presentation.View) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: view.Description,
		Color:       view.Color,
	}

	for _, field := range view.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  field.Name,
			Value: field.Value,
		})
	}

	if view.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: view.Footer}
	}

	return embed
}

func (p *Platform) PostRendering(_ context.Context, kind models.ProposalKind, view presentation.View) (string, error) {
	message, err := p.session.ChannelMessageSendEmbed(p.channelFor(kind), embedFromView(view))
	if err != nil {
		return "", fmt.Errorf("failed to post rendering: %w", err)
	}

	return message.ID, nil
}

// EditRendering rewrites the rendering embed. Fields set at submission time
// (the similar joke warning) are carried over when the view does not replace
// them, resynchronization only owns the description and footer.
func (p *Platform) EditRendering(rendering engine.Rendering, view presentation.View) error {
	channelID := p.channelFor(rendering.Kind)
	embed := embedFromView(view)

	if view.Fields == nil {
		if current, err := p.session.ChannelMessage(channelID, rendering.MessageID); err == nil {
			for _, existing := range current.Embeds {
				embed.Fields = append(embed.Fields, existing.Fields...)
			}
		}
	}

	_, err := p.session.ChannelMessageEditEmbed(channelID, rendering.MessageID, embed)
	if err != nil {
		return fmt.Errorf("failed to edit rendering: %w", err)
	}

	return nil
}

func (p *Platform) DeleteRendering(rendering engine.Rendering) error {
	return p.session.ChannelMessageDelete(p.channelFor(rendering.Kind), rendering.MessageID)
}

func (p *Platform) AddVoteReactions(rendering engine.Rendering) error {
	channelID := p.channelFor(rendering.Kind)

	if err := p.session.MessageReactionAdd(channelID, rendering.MessageID, p.config.UpEmoji); err != nil {
		return fmt.Errorf("failed to add up reaction: %w", err)
	}
	if err := p.session.MessageReactionAdd(channelID, rendering.MessageID, p.config.DownEmoji); err != nil {
		return fmt.Errorf("failed to add down reaction: %w", err)
	}

	return nil
}

func (p *Platform) RemoveAllReactions(rendering engine.Rendering) error {
	return p.session.MessageReactionsRemoveAll(p.channelFor(rendering.Kind), rendering.MessageID)
}

func (p *Platform) RemoveUserReactions(rendering engine.Rendering, userID string) error {
	channelID := p.channelFor(rendering.Kind)

	for _, emoji := range []string{p.config.UpEmoji, p.config.DownEmoji} {
		if err := p.session.MessageReactionRemove(channelID, rendering.MessageID, emoji, userID); err != nil {
			return fmt.Errorf("failed to remove %s reaction: %w", emoji, err)
		}
	}

	return nil
}

func (p *Platform) GrantRole(userID string, role engine.Role) error {
	roleID := p.config.JokerRoleID
	if role == engine.RoleCorrector {
		roleID = p.config.CorrectorRoleID
	}
	if roleID == "" {
		return nil
	}

	return p.session.GuildMemberRoleAdd(p.config.GuildID, userID, roleID)
}

func (p *Platform) AnnounceMerge(view presentation.View, note string) error {
	if p.config.LogsChannelID == "" {
		return nil
	}

	embed := embedFromView(view)
	embed.Title = note

	_, err := p.session.ChannelMessageSendEmbed(p.config.LogsChannelID, embed)
	return err
}
