package models

import "time"

type Disapproval struct {
	ID         int64     `json:"id" pg:",pk"`
	ProposalID int64     `json:"proposal_id" pg:",notnull,unique:disapproval_proposal_user"`
	UserID     string    `json:"user_id" pg:",notnull,unique:disapproval_proposal_user"`
	CreatedAt  time.Time `json:"created_at" pg:"default:now()"`
}
