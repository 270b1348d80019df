package engine

import (
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"

	"go.uber.org/zap"
)

type LedgerAction string

const (
	LedgerActionAdded   LedgerAction = "added"
	LedgerActionRemoved LedgerAction = "removed"
)

type Counts struct {
	Approvals    int
	Disapprovals int
	VotesUp      int
	VotesDown    int
}

// Ledger manages the approval, disapproval and vote records of a proposal.
// Casting a decision is a toggle: an existing same-kind record is removed,
// an opposite-kind record for the same actor is displaced, and the actor's
// casual votes are cleared because a decision supersedes them.
type Ledger struct {
	approvals    repositories.ApprovalRepository
	disapprovals repositories.DisapprovalRepository
	votes        repositories.VoteRepository
	logger       *zap.SugaredLogger
}

func NewLedger(
	approvals repositories.ApprovalRepository,
	disapprovals repositories.DisapprovalRepository,
	votes repositories.VoteRepository,
	logger *zap.SugaredLogger,
) *Ledger {
	return &Ledger{
		approvals:    approvals,
		disapprovals: disapprovals,
		votes:        votes,
		logger:       logger,
	}
}

func (l *Ledger) CastApproval(proposal *models.Proposal, userID string) (LedgerAction, error) {
	if err := l.guard(proposal, userID); err != nil {
		return "", err
	}

	removed, err := l.approvals.DeleteByProposalAndUser(proposal.ID, userID)
	if err != nil {
		return "", &StoreError{Err: err}
	}
	if removed {
		return LedgerActionRemoved, nil
	}

	if _, err := l.disapprovals.DeleteByProposalAndUser(proposal.ID, userID); err != nil {
		return "", &StoreError{Err: err}
	}

	if _, err := l.approvals.Create(&models.Approval{ProposalID: proposal.ID, UserID: userID}); err != nil {
		return "", &StoreError{Err: err}
	}

	l.clearVotes(proposal, userID)

	return LedgerActionAdded, nil
}

func (l *Ledger) CastDisapproval(proposal *models.Proposal, userID string) (LedgerAction, error) {
	if err := l.guard(proposal, userID); err != nil {
		return "", err
	}

	removed, err := l.disapprovals.DeleteByProposalAndUser(proposal.ID, userID)
	if err != nil {
		return "", &StoreError{Err: err}
	}
	if removed {
		return LedgerActionRemoved, nil
	}

	if _, err := l.approvals.DeleteByProposalAndUser(proposal.ID, userID); err != nil {
		return "", &StoreError{Err: err}
	}

	if _, err := l.disapprovals.Create(&models.Disapproval{ProposalID: proposal.ID, UserID: userID}); err != nil {
		return "", &StoreError{Err: err}
	}

	l.clearVotes(proposal, userID)

	return LedgerActionAdded, nil
}

// Counts reads the current tallies. Callers sequence this after the toggle,
// never concurrently with it, so the read observes the toggle's effect.
func (l *Ledger) Counts(proposalID int64) (Counts, error) {
	approvals, err := l.approvals.CountByProposal(proposalID)
	if err != nil {
		return Counts{}, &StoreError{Err: err}
	}

	disapprovals, err := l.disapprovals.CountByProposal(proposalID)
	if err != nil {
		return Counts{}, &StoreError{Err: err}
	}

	votesUp, err := l.votes.CountByProposal(proposalID, models.VoteTypeUp)
	if err != nil {
		return Counts{}, &StoreError{Err: err}
	}

	votesDown, err := l.votes.CountByProposal(proposalID, models.VoteTypeDown)
	if err != nil {
		return Counts{}, &StoreError{Err: err}
	}

	return Counts{
		Approvals:    approvals,
		Disapprovals: disapprovals,
		VotesUp:      votesUp,
		VotesDown:    votesDown,
	}, nil
}

func (l *Ledger) guard(proposal *models.Proposal, userID string) error {
	if proposal.Merged || proposal.Refused {
		return &TerminalProposalError{ProposalID: proposal.ID, Status: terminalStatus(proposal)}
	}
	if proposal.UserID != "" && proposal.UserID == userID {
		return &SelfDecisionError{ProposalID: proposal.ID}
	}
	return nil
}

// Vote clearing is a side effect of the decision, not part of the toggle's
// success condition.
func (l *Ledger) clearVotes(proposal *models.Proposal, userID string) {
	if _, err := l.votes.DeleteByProposalAndUser(proposal.ID, userID); err != nil {
		l.logger.Errorw("failed to clear votes", "proposal_id", proposal.ID, "user_id", userID, "error", err)
	}
}

func terminalStatus(proposal *models.Proposal) string {
	switch {
	case proposal.Merged:
		return "merged"
	case proposal.Refused:
		return "refused"
	default:
		return "stale"
	}
}
