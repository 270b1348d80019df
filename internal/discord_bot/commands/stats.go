package commands

import (
	"context"
	"fmt"
	"strings"

	"joke_suggestions_system/internal/db/repositories"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"
	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const statsCommandName = "stats"

type statsCommand struct {
	proposalRepository    repositories.ProposalRepository
	approvalRepository    repositories.ApprovalRepository
	disapprovalRepository repositories.DisapprovalRepository
	voteRepository        repositories.VoteRepository
	logger                *zap.SugaredLogger
}

func NewStatsCommand(
	proposalRepository repositories.ProposalRepository,
	approvalRepository repositories.ApprovalRepository,
	disapprovalRepository repositories.DisapprovalRepository,
	voteRepository repositories.VoteRepository,
	logger *zap.SugaredLogger,
) Command {
	return &statsCommand{
		proposalRepository:    proposalRepository,
		approvalRepository:    approvalRepository,
		disapprovalRepository: disapprovalRepository,
		voteRepository:        voteRepository,
		logger:                logger,
	}
}

func (c *statsCommand) CanHandle(command string) bool {
	return command == statsCommandName
}

func (c *statsCommand) Handle(_ context.Context, _, arguments string, actor engine.Actor, _ *discordgo.Session, _ string) []*discordgo.MessageSend {
	userID := actor.ID
	if mentioned := parseMention(arguments); mentioned != "" {
		userID = mentioned
	}

	proposals, err := c.proposalRepository.GetManyByUser(userID)
	if err != nil {
		c.logger.Errorw("failed to get proposals", "user_id", userID, "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	approvals, err := c.approvalRepository.GetManyByUser(userID)
	if err != nil {
		c.logger.Errorw("failed to get approvals", "user_id", userID, "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	disapprovals, err := c.disapprovalRepository.GetManyByUser(userID)
	if err != nil {
		c.logger.Errorw("failed to get disapprovals", "user_id", userID, "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	votes, err := c.voteRepository.GetManyByUser(userID)
	if err != nil {
		c.logger.Errorw("failed to get votes", "user_id", userID, "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	leaderboard, err := c.proposalRepository.Leaderboard()
	if err != nil {
		c.logger.Errorw("failed to get leaderboard", "error", err)
		return []*discordgo.MessageSend{dbot.DefaultErrorMessage()}
	}

	var suggested, suggestionsMerged, corrected, correctionsMerged int
	for _, proposal := range proposals {
		if proposal.IsSuggestion() {
			suggested++
			if proposal.Merged {
				suggestionsMerged++
			}
		} else {
			corrected++
			if proposal.Merged {
				correctionsMerged++
			}
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Statistiques",
		Description: fmt.Sprintf("Statistiques de <@%s>", userID),
		Color:       presentation.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Propositions",
				Value: fmt.Sprintf("Suggestions : %d (%d ajoutées)\nCorrections : %d (%d migrées)",
					suggested, suggestionsMerged, corrected, correctionsMerged),
			},
			{
				Name: "Décisions",
				Value: fmt.Sprintf("Approbations : %d\nDésapprobations : %d\nVotes : %d",
					len(approvals), len(disapprovals), len(votes)),
			},
			{
				Name:  "Classement",
				Value: formatLeaderboard(leaderboard),
			},
		},
	}

	return []*discordgo.MessageSend{{Embed: embed}}
}

func parseMention(arguments string) string {
	argument := strings.TrimSpace(arguments)
	argument = strings.TrimPrefix(argument, "<@")
	argument = strings.TrimPrefix(argument, "!")
	argument = strings.TrimSuffix(argument, ">")

	if argument == "" || !isDigits(argument) {
		return ""
	}

	return argument
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}

func formatLeaderboard(entries []repositories.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "Aucune blague ajoutée pour le moment"
	}

	if len(entries) > 5 {
		entries = entries[:5]
	}

	var lines []string
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. <@%s> : %d", i+1, entry.UserID, entry.MergedCount))
	}

	return strings.Join(lines, "\n")
}
