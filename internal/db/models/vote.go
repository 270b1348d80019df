package models

import "time"

type VoteType string

const (
	VoteTypeUp   VoteType = "up"
	VoteTypeDown VoteType = "down"
)

type Vote struct {
	ID         int64     `json:"id" pg:",pk"`
	ProposalID int64     `json:"proposal_id" pg:",notnull,unique:vote_proposal_user_type"`
	UserID     string    `json:"user_id" pg:",notnull,unique:vote_proposal_user_type"`
	Type       VoteType  `json:"type" pg:"type:VoteType,notnull,unique:vote_proposal_user_type"`
	CreatedAt  time.Time `json:"created_at" pg:"default:now()"`
}
