package modules

import (
	"errors"
	"testing"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/engine"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newVotesUnderTest() *Votes {
	return &Votes{
		config: configs.Discord{
			GuildID:              "guild",
			CorrectionsChannelID: "corrections",
		},
		logger: zap.NewNop().Sugar(),
	}
}

func TestDecisionErrorFeedback_SelfDecision(t *testing.T) {
	votes := newVotesUnderTest()

	text, removeReaction, handled := votes.decisionErrorFeedback(&engine.SelfDecisionError{ProposalID: 1})
	assert.True(t, handled)
	assert.True(t, removeReaction)
	assert.Equal(t, "Vous ne pouvez pas décider du sort de votre propre blague", text)
}

func TestDecisionErrorFeedback_StaleTargetLinksLatest(t *testing.T) {
	votes := newVotesUnderTest()

	text, removeReaction, handled := votes.decisionErrorFeedback(&engine.StaleTargetError{
		ProposalID:      1,
		LatestMessageID: "latest",
	})
	assert.True(t, handled)
	assert.False(t, removeReaction)
	assert.Contains(t, text, "https://discord.com/channels/guild/corrections/latest")
}

func TestDecisionErrorFeedback_TerminalIsSilent(t *testing.T) {
	votes := newVotesUnderTest()

	text, removeReaction, handled := votes.decisionErrorFeedback(&engine.TerminalProposalError{ProposalID: 1, Status: "merged"})
	assert.True(t, handled)
	assert.False(t, removeReaction)
	assert.Empty(t, text)
}

func TestDecisionErrorFeedback_UnknownErrorIsNotHandled(t *testing.T) {
	votes := newVotesUnderTest()

	_, _, handled := votes.decisionErrorFeedback(errors.New("network down"))
	assert.False(t, handled)
}
