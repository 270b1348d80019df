package modules

import (
	"fmt"
	"strings"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"
	"joke_suggestions_system/internal/presentation"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Reminders nudges the godfathers about proposals waiting on a decision.
// A godfather is only counted in for categories they do not ignore and for
// proposals they have not decided on yet.
type Reminders struct {
	session    *discordgo.Session
	proposals  repositories.ProposalRepository
	godfathers repositories.GodfatherRepository
	config     configs.Discord
	logger     *zap.SugaredLogger
}

func NewReminders(
	session *discordgo.Session,
	proposals repositories.ProposalRepository,
	godfathers repositories.GodfatherRepository,
	config configs.Discord,
	logger *zap.SugaredLogger,
) *Reminders {
	return &Reminders{
		session:    session,
		proposals:  proposals,
		godfathers: godfathers,
		config:     config,
		logger:     logger,
	}
}

// Send posts the pending-proposals digest in the commands channel. Nothing
// is posted when no godfather has work left.
func (r *Reminders) Send() {
	pending, err := r.proposals.GetManyOpen()
	if err != nil {
		r.logger.Errorw("failed to load pending proposals", "error", err)
		return
	}

	godfathers, err := r.godfathers.GetMany()
	if err != nil {
		r.logger.Errorw("failed to load godfathers", "error", err)
		return
	}

	description := digest(pending, godfathers)
	if description == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Propositions en attente",
		Description: description,
		Color:       presentation.ColorInfo,
	}

	if _, err := r.session.ChannelMessageSendEmbed(r.config.CommandsChannelID, embed); err != nil {
		r.logger.Errorw("failed to send reminder", "error", err)
	}
}

// digest builds the reminder body: a summary line plus one line per
// godfather with proposals still waiting on them. Empty when nobody has
// anything left to review.
func digest(pending []*models.Proposal, godfathers []*models.Godfather) string {
	var suggestions, corrections int
	for _, proposal := range pending {
		if proposal.IsSuggestion() {
			suggestions++
		} else {
			corrections++
		}
	}

	var lines []string
	for _, godfather := range godfathers {
		count := 0
		for _, proposal := range pending {
			if godfather.Ignores(proposal.Category) {
				continue
			}
			if proposal.ApprovedBy(godfather.UserID) || proposal.DisapprovedBy(godfather.UserID) {
				continue
			}
			count++
		}
		if count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("<@%s> : %d à relire", godfather.UserID, count))
	}

	if len(lines) == 0 {
		return ""
	}

	summary := fmt.Sprintf("%d suggestion(s) et %d correction(s) attendent une décision.", suggestions, corrections)
	return summary + "\n\n" + strings.Join(lines, "\n")
}
