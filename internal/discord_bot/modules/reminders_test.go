package modules

import (
	"testing"

	"joke_suggestions_system/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func TestDigest_FiltersIgnoredCategoriesAndOwnDecisions(t *testing.T) {
	pending := []*models.Proposal{
		{
			ID:       1,
			Kind:     models.ProposalKindSuggestion,
			Category: models.CategoryGlobal,
		},
		{
			ID:        2,
			Kind:      models.ProposalKindSuggestion,
			Category:  models.CategoryDark,
			Approvals: []models.Approval{{UserID: "g1"}},
		},
		{
			ID:       3,
			Kind:     models.ProposalKindCorrection,
			Category: models.CategoryDev,
		},
	}
	godfathers := []*models.Godfather{
		{UserID: "g1", IgnoredCategories: []models.Category{models.CategoryDev}},
		{UserID: "g2"},
	}

	description := digest(pending, godfathers)
	assert.Contains(t, description, "2 suggestion(s) et 1 correction(s)")

	// g1 already approved the dark joke and ignores dev, one left.
	assert.Contains(t, description, "<@g1> : 1 à relire")
	assert.Contains(t, description, "<@g2> : 3 à relire")
}

func TestDigest_SilentWhenNothingLeft(t *testing.T) {
	pending := []*models.Proposal{
		{
			ID:           1,
			Kind:         models.ProposalKindSuggestion,
			Category:     models.CategoryGlobal,
			Approvals:    []models.Approval{{UserID: "g1"}},
			Disapprovals: []models.Disapproval{{UserID: "g2"}},
		},
	}
	godfathers := []*models.Godfather{
		{UserID: "g1"},
		{UserID: "g2"},
	}

	assert.Empty(t, digest(pending, godfathers))
}

func TestDigest_SilentWithoutGodfathers(t *testing.T) {
	pending := []*models.Proposal{{ID: 1, Kind: models.ProposalKindSuggestion, Category: models.CategoryGlobal}}

	assert.Empty(t, digest(pending, nil))
}
