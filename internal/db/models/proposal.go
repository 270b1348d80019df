package models

import "time"

type ProposalKind string

const (
	ProposalKindSuggestion ProposalKind = "suggestion"
	ProposalKindCorrection ProposalKind = "correction"
)

func (k ProposalKind) String() string {
	return string(k)
}

type Proposal struct {
	ID        int64        `json:"id" pg:",pk"`
	Kind      ProposalKind `json:"kind" pg:"type:ProposalKind,notnull"`
	MessageID string       `json:"message_id" pg:",notnull,unique"`

	// UserID is cleared when the author leaves the community, the row stays.
	UserID string `json:"user_id"`

	Category Category `json:"category" pg:",notnull"`
	Question string   `json:"question" pg:",notnull"`
	Answer   string   `json:"answer" pg:",notnull"`

	// A correction targets either a suggestion row or a published joke.
	SuggestionID *int64 `json:"suggestion_id"`
	JokeID       *int64 `json:"joke_id"`

	Merged  bool `json:"merged" pg:",notnull,default:false,use_zero"`
	Refused bool `json:"refused" pg:",notnull,default:false,use_zero"`
	Stale   bool `json:"stale" pg:",notnull,default:false,use_zero"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`

	Suggestion   *Proposal     `json:"suggestion" pg:"rel:has-one"`
	Corrections  []*Proposal   `json:"corrections" pg:"rel:has-many,fk:suggestion_id"`
	Approvals    []Approval    `json:"approvals" pg:"rel:has-many"`
	Disapprovals []Disapproval `json:"disapprovals" pg:"rel:has-many"`
	Votes        []Vote        `json:"votes" pg:"rel:has-many"`
}

func (p *Proposal) IsSuggestion() bool {
	return p.Kind == ProposalKindSuggestion
}

// Terminal reports whether the proposal can no longer accept decisions.
func (p *Proposal) Terminal() bool {
	return p.Merged || p.Refused || p.Stale
}

// TargetsPublishedJoke reports whether a correction amends a joke that is
// already part of the canonical dataset.
func (p *Proposal) TargetsPublishedJoke() bool {
	return p.Kind == ProposalKindCorrection && p.JokeID != nil
}

func (p *Proposal) ApprovedBy(userID string) bool {
	for _, approval := range p.Approvals {
		if approval.UserID == userID {
			return true
		}
	}
	return false
}

func (p *Proposal) DisapprovedBy(userID string) bool {
	for _, disapproval := range p.Disapprovals {
		if disapproval.UserID == userID {
			return true
		}
	}
	return false
}

// LatestActiveCorrection returns the newest correction that is still open,
// or nil. Corrections are loaded newest first.
func (p *Proposal) LatestActiveCorrection() *Proposal {
	for _, correction := range p.Corrections {
		if !correction.Terminal() {
			return correction
		}
	}
	return nil
}
