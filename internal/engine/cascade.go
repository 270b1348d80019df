package engine

import (
	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"
)

// CascadeInput is a snapshot of everything the cascade decision needs:
// the merging correction, its active siblings on the same subject, and the
// subject's current approval tally.
type CascadeInput struct {
	Correction       *models.Proposal
	Siblings         []*models.Proposal
	JokeID           *int64
	SubjectApprovals int
	NeededApprovals  int
}

// CascadePlan is the set of transitions a correction merge implies. The
// store transitions are applied in one transaction; the rendering updates
// listed here run after commit and are safe to retry.
type CascadePlan struct {
	Merge            repositories.CorrectionMerge
	StaleRenderings  []*models.Proposal
	AutoMergeSubject bool
}

// planCascade is pure: given a snapshot it returns the transitions to
// apply. Every other active correction on the same subject goes stale, and
// the subject suggestion auto-merges when it already meets its own
// threshold.
func planCascade(in CascadeInput) CascadePlan {
	plan := CascadePlan{
		Merge: repositories.CorrectionMerge{
			MergeID: in.Correction.ID,
			JokeID:  in.JokeID,
		},
	}

	if subject := in.Correction.Suggestion; subject != nil {
		plan.Merge.UpdateSubject = &repositories.SubjectUpdate{
			ID:       subject.ID,
			Category: in.Correction.Category,
			Question: in.Correction.Question,
			Answer:   in.Correction.Answer,
		}

		if !subject.Terminal() && in.SubjectApprovals >= in.NeededApprovals {
			plan.AutoMergeSubject = true
		}
	}

	for _, sibling := range in.Siblings {
		if sibling.ID == in.Correction.ID || sibling.Terminal() {
			continue
		}
		plan.Merge.StaleIDs = append(plan.Merge.StaleIDs, sibling.ID)
		plan.StaleRenderings = append(plan.StaleRenderings, sibling)
	}

	return plan
}
