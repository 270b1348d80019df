// Package discordbot wires the proposal engine to a Discord guild: prefix
// commands in the commands channel, reaction votes and decisions on the
// proposal renderings, sticky welcome messages and cleanup of removed
// renderings.
package discordbot

import (
	"context"
	"strings"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/discord_bot/commands"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/discord_bot/modules"
	"joke_suggestions_system/internal/engine"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const commandPrefix = "!"

// NewSession builds a Discord session with the intents the bot needs:
// messages and their content for the commands, reactions for the votes.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMessageReactions

	return session, nil
}

type Bot struct {
	session  *discordgo.Session
	config   configs.Discord
	engine   *engine.Engine
	commands []commands.Command
	stickys  *modules.Stickys
	votes    *modules.Votes
	logger   *zap.SugaredLogger
}

func NewBot(
	session *discordgo.Session,
	config configs.Discord,
	jokeEngine *engine.Engine,
	botCommands []commands.Command,
	stickys *modules.Stickys,
	votes *modules.Votes,
	logger *zap.SugaredLogger,
) *Bot {
	return &Bot{
		session:  session,
		config:   config,
		engine:   jokeEngine,
		commands: botCommands,
		stickys:  stickys,
		votes:    votes,
		logger:   logger,
	}
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleMessageCreate)
	b.session.AddHandler(b.handleMessageDelete)
	b.session.AddHandler(b.votes.HandleReactionAdd)
	b.session.AddHandler(b.votes.HandleReactionRemove)

	return b.session.Open()
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleReady(_ *discordgo.Session, event *discordgo.Ready) {
	b.logger.Infow("bot connected", "username", event.User.Username)
	b.stickys.ReloadAll(context.Background())
}

func (b *Bot) handleMessageCreate(session *discordgo.Session, message *discordgo.MessageCreate) {
	if message.Author == nil || message.Author.ID == session.State.User.ID {
		return
	}

	if message.ChannelID == b.config.CommandsChannelID {
		if !message.Author.Bot && strings.HasPrefix(message.Content, commandPrefix) {
			// Commands can block on a confirmation, keep the gateway loop free.
			go b.dispatchCommand(session, message)
		}
		return
	}

	b.stickys.OnChannelMessage(context.Background(), message.ChannelID, message.ID)
}

func (b *Bot) dispatchCommand(session *discordgo.Session, message *discordgo.MessageCreate) {
	content := strings.TrimPrefix(message.Content, commandPrefix)
	name, arguments, _ := strings.Cut(content, " ")
	name = strings.ToLower(strings.TrimSpace(name))

	actor := engine.Actor{
		ID:          message.Author.ID,
		IsGodfather: dbot.IsGodfather(message.Member, b.config.GodfatherRoleID),
	}

	for _, command := range b.commands {
		if !command.CanHandle(name) {
			continue
		}

		b.logger.Infow("received command", "command", name, "user_id", actor.ID)

		for _, response := range command.Handle(context.Background(), name, arguments, actor, session, message.ChannelID) {
			if _, err := session.ChannelMessageSendComplex(message.ChannelID, response); err != nil {
				b.logger.Errorw("failed to send response", "command", name, "error", err)
			}
		}
		return
	}
}

// handleMessageDelete keeps the store consistent with the channels: a
// deleted rendering takes its proposal row along, and a deleted suggestion
// rendering takes its corrections' renderings too.
func (b *Bot) handleMessageDelete(session *discordgo.Session, message *discordgo.MessageDelete) {
	if message.ChannelID != b.config.SuggestionsChannelID && message.ChannelID != b.config.CorrectionsChannelID {
		return
	}

	if b.stickys.IsSticky(context.Background(), message.ChannelID, message.ID) {
		return
	}

	orphaned, err := b.engine.HandleRenderingRemoved(message.ID)
	if err != nil {
		b.logger.Errorw("failed to clean up removed rendering", "message_id", message.ID, "error", err)
		return
	}

	for _, correctionMessageID := range orphaned {
		if err := session.ChannelMessageDelete(b.config.CorrectionsChannelID, correctionMessageID); err != nil {
			b.logger.Warnw("failed to delete orphaned correction rendering", "message_id", correctionMessageID, "error", err)
		}
	}
}
