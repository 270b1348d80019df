package commands

import (
	"context"

	"joke_suggestions_system/internal/engine"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, command, arguments string, actor engine.Actor, session *discordgo.Session, channelID string) []*discordgo.MessageSend
}
