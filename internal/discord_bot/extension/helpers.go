package extension

import (
	"context"
	"fmt"
	"time"

	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
)

const (
	ConfirmEmoji = "✅"
	CancelEmoji  = "❌"
)

func DefaultErrorMessage() *discordgo.MessageSend {
	return ErrorMessage("Une erreur est survenue, réessayez plus tard")
}

func ErrorMessage(text string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Description: text,
			Color:       presentation.ColorRefused,
		},
	}
}

func InfoMessage(text string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Description: text,
			Color:       presentation.ColorInfo,
		},
	}
}

func SuccessMessage(text string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Description: text,
			Color:       presentation.ColorAccepted,
		},
	}
}

func IsGodfather(member *discordgo.Member, godfatherRoleID string) bool {
	if member == nil {
		return false
	}
	for _, roleID := range member.Roles {
		if roleID == godfatherRoleID {
			return true
		}
	}
	return false
}

func MessageLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// AwaitConfirmation adds the two decision reactions to a preview message and
// waits for the author to pick one. A timeout or the cancel reaction resolves
// to false.
func AwaitConfirmation(session *discordgo.Session, channelID, messageID, userID string, timeout time.Duration) bool {
	for _, emoji := range []string{ConfirmEmoji, CancelEmoji} {
		if err := session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
			return false
		}
	}

	decision := make(chan bool, 1)

	remove := session.AddHandler(func(_ *discordgo.Session, reaction *discordgo.MessageReactionAdd) {
		if reaction.MessageID != messageID || reaction.UserID != userID {
			return
		}

		switch reaction.Emoji.Name {
		case ConfirmEmoji:
			select {
			case decision <- true:
			default:
			}
		case CancelEmoji:
			select {
			case decision <- false:
			default:
			}
		}
	})
	defer remove()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	select {
	case confirmed := <-decision:
		return confirmed
	case <-ctx.Done():
		return false
	}
}
