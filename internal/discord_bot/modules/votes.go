package modules

import (
	"context"
	"errors"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"
	dbot "joke_suggestions_system/internal/discord_bot/extension"
	"joke_suggestions_system/internal/engine"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Votes routes the up/down reactions on proposal renderings. A godfather
// reaction casts a decision, anyone else's records a casual vote. Reactions
// behave as buttons for godfathers: the engine removes them once the
// decision is in the ledger.
type Votes struct {
	engine    *engine.Engine
	proposals repositories.ProposalRepository
	votes     repositories.VoteRepository
	stickys   *Stickys
	config    configs.Discord
	logger    *zap.SugaredLogger
}

func NewVotes(
	engine *engine.Engine,
	proposals repositories.ProposalRepository,
	votes repositories.VoteRepository,
	stickys *Stickys,
	config configs.Discord,
	logger *zap.SugaredLogger,
) *Votes {
	return &Votes{
		engine:    engine,
		proposals: proposals,
		votes:     votes,
		stickys:   stickys,
		config:    config,
		logger:    logger,
	}
}

func (v *Votes) managedChannel(channelID string) bool {
	return channelID == v.config.SuggestionsChannelID || channelID == v.config.CorrectionsChannelID
}

func (v *Votes) voteType(emojiName string) (models.VoteType, bool) {
	switch emojiName {
	case v.config.UpEmoji:
		return models.VoteTypeUp, true
	case v.config.DownEmoji:
		return models.VoteTypeDown, true
	default:
		return "", false
	}
}

func (v *Votes) HandleReactionAdd(session *discordgo.Session, reaction *discordgo.MessageReactionAdd) {
	if reaction.UserID == session.State.User.ID || !v.managedChannel(reaction.ChannelID) {
		return
	}

	voteType, ok := v.voteType(reaction.Emoji.Name)
	if !ok {
		return
	}

	ctx := context.Background()

	if dbot.IsGodfather(reaction.Member, v.config.GodfatherRoleID) {
		v.decide(ctx, session, reaction, voteType)
		return
	}

	proposal, err := v.proposals.GetOneByMessageID(reaction.MessageID)
	if err != nil {
		v.logger.Errorw("failed to load proposal", "message_id", reaction.MessageID, "error", err)
		return
	}
	if proposal == nil {
		return
	}

	// Authors cannot vote for their own jokes.
	if proposal.UserID != "" && proposal.UserID == reaction.UserID {
		if err := session.MessageReactionRemove(reaction.ChannelID, reaction.MessageID, reaction.Emoji.Name, reaction.UserID); err != nil {
			v.logger.Warnw("failed to remove author reaction", "message_id", reaction.MessageID, "error", err)
		}
		return
	}

	if _, err := v.votes.Create(&models.Vote{
		ProposalID: proposal.ID,
		UserID:     reaction.UserID,
		Type:       voteType,
	}); err != nil {
		v.logger.Errorw("failed to record vote", "proposal_id", proposal.ID, "error", err)
	}
}

func (v *Votes) HandleReactionRemove(session *discordgo.Session, reaction *discordgo.MessageReactionRemove) {
	if reaction.UserID == session.State.User.ID || !v.managedChannel(reaction.ChannelID) {
		return
	}

	voteType, ok := v.voteType(reaction.Emoji.Name)
	if !ok {
		return
	}

	proposal, err := v.proposals.GetOneByMessageID(reaction.MessageID)
	if err != nil {
		v.logger.Errorw("failed to load proposal", "message_id", reaction.MessageID, "error", err)
		return
	}
	if proposal == nil {
		return
	}

	if _, err := v.votes.DeleteOne(proposal.ID, reaction.UserID, voteType); err != nil {
		v.logger.Errorw("failed to remove vote", "proposal_id", proposal.ID, "error", err)
	}
}

func (v *Votes) decide(ctx context.Context, session *discordgo.Session, reaction *discordgo.MessageReactionAdd, voteType models.VoteType) {
	decision := engine.DecisionApprove
	if voteType == models.VoteTypeDown {
		decision = engine.DecisionDisapprove
	}

	actor := engine.Actor{ID: reaction.UserID, IsGodfather: true}

	outcome, err := v.engine.Decide(ctx, actor, reaction.MessageID, decision)
	if err != nil {
		v.handleDecisionError(session, reaction, err)
		return
	}

	if outcome.Info != "" {
		v.notify(session, reaction.UserID, outcome.Info)
	}

	// A merge changes the published count shown on the sticky.
	if outcome.Merged || outcome.AutoMerged {
		v.stickys.Reload(ctx, v.config.SuggestionsChannelID)
	}
}

func (v *Votes) handleDecisionError(session *discordgo.Session, reaction *discordgo.MessageReactionAdd, err error) {
	text, removeReaction, handled := v.decisionErrorFeedback(err)
	if !handled {
		v.logger.Errorw("failed to process decision", "message_id", reaction.MessageID, "error", err)
		return
	}

	if removeReaction {
		if err := session.MessageReactionRemove(reaction.ChannelID, reaction.MessageID, reaction.Emoji.Name, reaction.UserID); err != nil {
			v.logger.Warnw("failed to remove reaction", "message_id", reaction.MessageID, "error", err)
		}
	}

	if text != "" {
		v.notify(session, reaction.UserID, text)
	}
}

// decisionErrorFeedback translates a rejected decision into what the actor
// should see. removeReaction reports that the reaction will never count and
// must come off the rendering.
func (v *Votes) decisionErrorFeedback(err error) (text string, removeReaction, handled bool) {
	var selfErr *engine.SelfDecisionError
	if errors.As(err, &selfErr) {
		return "Vous ne pouvez pas décider du sort de votre propre blague", true, true
	}

	var staleErr *engine.StaleTargetError
	if errors.As(err, &staleErr) {
		text := "Cette correction a été remplacée"
		if staleErr.LatestMessageID != "" {
			link := dbot.MessageLink(v.config.GuildID, v.config.CorrectionsChannelID, staleErr.LatestMessageID)
			text += ", la dernière version est ici : " + link
		}
		return text, false, true
	}

	var terminalErr *engine.TerminalProposalError
	if errors.As(err, &terminalErr) {
		// The rendering was already repaired, nothing to tell the actor.
		return "", false, true
	}

	var validationErr *engine.ValidationError
	if errors.As(err, &validationErr) {
		return "", false, true
	}

	return "", false, false
}

func (v *Votes) notify(session *discordgo.Session, userID, text string) {
	message := dbot.InfoMessage(text)
	message.Content = "<@" + userID + ">"

	if _, err := session.ChannelMessageSendComplex(v.config.CommandsChannelID, message); err != nil {
		v.logger.Errorw("failed to notify godfather", "user_id", userID, "error", err)
	}
}
