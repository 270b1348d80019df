package engine

import (
	"testing"

	"joke_suggestions_system/internal/db/models"
	"joke_suggestions_system/internal/db/repositories"

	"github.com/stretchr/testify/assert"
)

func TestPlanCascade_StalesActiveSiblings(t *testing.T) {
	correction := &models.Proposal{ID: 2, Kind: models.ProposalKindCorrection}
	siblings := []*models.Proposal{
		correction,
		{ID: 3, Kind: models.ProposalKindCorrection},
		{ID: 4, Kind: models.ProposalKindCorrection, Refused: true},
		{ID: 5, Kind: models.ProposalKindCorrection},
	}

	plan := planCascade(CascadeInput{Correction: correction, Siblings: siblings})

	assert.Equal(t, []int64{3, 5}, plan.Merge.StaleIDs)
	assert.Len(t, plan.StaleRenderings, 2)
	assert.False(t, plan.AutoMergeSubject)
}

func TestPlanCascade_UpdatesSubjectPayload(t *testing.T) {
	subject := &models.Proposal{ID: 10, Kind: models.ProposalKindSuggestion}
	correction := &models.Proposal{
		ID:         2,
		Kind:       models.ProposalKindCorrection,
		Category:   models.CategoryDark,
		Question:   "corrected question",
		Answer:     "corrected answer",
		Suggestion: subject,
	}

	plan := planCascade(CascadeInput{Correction: correction})

	assert.Equal(t, &repositories.SubjectUpdate{
		ID:       10,
		Category: models.CategoryDark,
		Question: "corrected question",
		Answer:   "corrected answer",
	}, plan.Merge.UpdateSubject)
}

func TestPlanCascade_AutoMergeAtThreshold(t *testing.T) {
	subject := &models.Proposal{ID: 10, Kind: models.ProposalKindSuggestion}
	correction := &models.Proposal{ID: 2, Kind: models.ProposalKindCorrection, Suggestion: subject}

	plan := planCascade(CascadeInput{
		Correction:       correction,
		SubjectApprovals: 3,
		NeededApprovals:  3,
	})
	assert.True(t, plan.AutoMergeSubject)

	plan = planCascade(CascadeInput{
		Correction:       correction,
		SubjectApprovals: 2,
		NeededApprovals:  3,
	})
	assert.False(t, plan.AutoMergeSubject)
}

func TestPlanCascade_NoAutoMergeForTerminalSubject(t *testing.T) {
	subject := &models.Proposal{ID: 10, Kind: models.ProposalKindSuggestion, Merged: true}
	correction := &models.Proposal{ID: 2, Kind: models.ProposalKindCorrection, Suggestion: subject}

	plan := planCascade(CascadeInput{
		Correction:       correction,
		SubjectApprovals: 3,
		NeededApprovals:  3,
	})
	assert.False(t, plan.AutoMergeSubject)
}

func TestPlanCascade_PublishedJokeTarget(t *testing.T) {
	jokeID := int64(42)
	correction := &models.Proposal{ID: 2, Kind: models.ProposalKindCorrection}

	plan := planCascade(CascadeInput{Correction: correction, JokeID: &jokeID})

	assert.Equal(t, &jokeID, plan.Merge.JokeID)
	assert.Nil(t, plan.Merge.UpdateSubject)
	assert.False(t, plan.AutoMergeSubject)
}
