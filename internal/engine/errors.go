package engine

import "fmt"

// ValidationError rejects malformed or duplicate submissions; the actor can
// retry with different content.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SelfDecisionError rejects an actor deciding on their own proposal.
type SelfDecisionError struct {
	ProposalID int64
}

func (e *SelfDecisionError) Error() string {
	return fmt.Sprintf("proposal %d was authored by the deciding actor", e.ProposalID)
}

// TerminalProposalError rejects any ledger mutation on a merged or refused
// proposal.
type TerminalProposalError struct {
	ProposalID int64
	Status     string
}

func (e *TerminalProposalError) Error() string {
	return fmt.Sprintf("proposal %d is already %s", e.ProposalID, e.Status)
}

// StaleTargetError rejects decisions on a correction that is no longer the
// latest active one for its subject. LatestMessageID points the actor at
// the version that replaced it.
type StaleTargetError struct {
	ProposalID      int64
	LatestMessageID string
}

func (e *StaleTargetError) Error() string {
	return fmt.Sprintf("correction %d has been superseded", e.ProposalID)
}

// ExternalSyncError wraps a failed platform or dataset call. The state
// machine aborts on critical ones (dataset mutation) and logs the rest.
type ExternalSyncError struct {
	Op  string
	Err error
}

func (e *ExternalSyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalSyncError) Unwrap() error {
	return e.Err
}

// StoreError wraps a failed store call; proposal state is uncertain and
// must be reconciled by an operator.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
