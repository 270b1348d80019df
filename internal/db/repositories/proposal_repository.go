package repositories

import (
	"joke_suggestions_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// SubjectUpdate carries the corrected payload applied to a suggestion when
// one of its corrections merges.
type SubjectUpdate struct {
	ID       int64
	Category models.Category
	Question string
	Answer   string
}

// CorrectionMerge is the set of row transitions implied by one correction
// merge. It is applied in a single transaction: the merge must never commit
// while sibling corrections remain active.
type CorrectionMerge struct {
	MergeID       int64
	JokeID        *int64
	UpdateSubject *SubjectUpdate
	StaleIDs      []int64
}

type LeaderboardEntry struct {
	UserID      string `pg:"user_id"`
	MergedCount int    `pg:"merged_count"`
}

type proposalRepository struct {
	repository
}

type ProposalRepository interface {
	Create(request *models.Proposal) (*models.Proposal, error)
	Update(request *models.Proposal) (*models.Proposal, error)
	Delete(request *models.Proposal) error
	GetOne(proposalID int64) (*models.Proposal, error)
	GetOneByMessageID(messageID string) (*models.Proposal, error)
	GetOpenSuggestions() ([]*models.Proposal, error)
	GetManyOpen() ([]*models.Proposal, error)
	GetActiveCorrectionsByJoke(jokeID int64) ([]*models.Proposal, error)
	GetManyByUser(userID string) ([]*models.Proposal, error)
	Leaderboard() ([]LeaderboardEntry, error)
	MarkMerged(proposalID int64, jokeID *int64) (bool, error)
	MarkRefused(proposalID int64) (bool, error)
	ApplyCorrectionMerge(merge CorrectionMerge) error
}

func NewProposalRepository(db *pg.DB) ProposalRepository {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func activeCorrections(q *orm.Query) (*orm.Query, error) {
	return q.
		Where("merged = ?", false).
		Where("refused = ?", false).
		Where("stale = ?", false).
		Order("created_at DESC"), nil
}

func (r *proposalRepository) Create(request *models.Proposal) (*models.Proposal, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *proposalRepository) Update(request *models.Proposal) (*models.Proposal, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *proposalRepository) Delete(request *models.Proposal) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *proposalRepository) GetOne(proposalID int64) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	err := r.db.Model(proposal).
		Relation("Suggestion").
		Relation("Suggestion.Corrections", activeCorrections).
		Relation("Suggestion.Approvals").
		Relation("Suggestion.Disapprovals").
		Relation("Corrections", activeCorrections).
		Relation("Corrections.Approvals").
		Relation("Corrections.Disapprovals").
		Relation("Approvals").
		Relation("Disapprovals").
		Relation("Votes").
		Where("proposal.id = ?", proposalID).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return proposal, nil
}

func (r *proposalRepository) GetOneByMessageID(messageID string) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	err := r.db.Model(proposal).
		Where("proposal.message_id = ?", messageID).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return r.GetOne(proposal.ID)
}

func (r *proposalRepository) GetOpenSuggestions() ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		Where("kind = ?", models.ProposalKindSuggestion).
		Where("merged = ?", false).
		Where("refused = ?", false).
		Select()

	return proposals, err
}

func (r *proposalRepository) GetManyOpen() ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		Relation("Approvals").
		Relation("Disapprovals").
		Where("merged = ?", false).
		Where("refused = ?", false).
		Where("stale = ?", false).
		Order("created_at ASC").
		Select()

	return proposals, err
}

func (r *proposalRepository) GetActiveCorrectionsByJoke(jokeID int64) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		Where("kind = ?", models.ProposalKindCorrection).
		Where("joke_id = ?", jokeID).
		Where("merged = ?", false).
		Where("refused = ?", false).
		Where("stale = ?", false).
		Order("created_at DESC").
		Select()

	return proposals, err
}

func (r *proposalRepository) GetManyByUser(userID string) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		Where("user_id = ?", userID).
		Where("stale = ?", false).
		Order("created_at ASC").
		Select()

	return proposals, err
}

func (r *proposalRepository) Leaderboard() ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0)

	err := r.db.Model((*models.Proposal)(nil)).
		Column("user_id").
		ColumnExpr("count(*) AS merged_count").
		Where("merged = ?", true).
		Where("user_id <> ''").
		Group("user_id").
		OrderExpr("merged_count DESC").
		Select(&entries)

	return entries, err
}

// MarkMerged flips the merged flag if and only if the proposal is still
// open. Returns false when another transition won.
func (r *proposalRepository) MarkMerged(proposalID int64, jokeID *int64) (bool, error) {
	query := r.db.Model((*models.Proposal)(nil)).
		Set("merged = ?", true).
		Where("id = ?", proposalID).
		Where("merged = ?", false).
		Where("refused = ?", false).
		Where("stale = ?", false)

	if jokeID != nil {
		query.Set("joke_id = ?", *jokeID)
	}

	result, err := query.Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *proposalRepository) MarkRefused(proposalID int64) (bool, error) {
	result, err := r.db.Model((*models.Proposal)(nil)).
		Set("refused = ?", true).
		Where("id = ?", proposalID).
		Where("merged = ?", false).
		Where("refused = ?", false).
		Where("stale = ?", false).
		Update()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() == 1, nil
}

func (r *proposalRepository) ApplyCorrectionMerge(merge CorrectionMerge) error {
	return r.db.RunInTransaction(r.db.Context(), func(tx *pg.Tx) error {
		query := tx.Model((*models.Proposal)(nil)).
			Set("merged = ?", true).
			Where("id = ?", merge.MergeID).
			Where("merged = ?", false).
			Where("refused = ?", false).
			Where("stale = ?", false)

		if merge.JokeID != nil {
			query.Set("joke_id = ?", *merge.JokeID)
		}

		result, err := query.Update()
		if err != nil {
			return err
		}
		if result.RowsAffected() != 1 {
			return pg.ErrNoRows
		}

		if merge.UpdateSubject != nil {
			_, err = tx.Model((*models.Proposal)(nil)).
				Set("category = ?", merge.UpdateSubject.Category).
				Set("question = ?", merge.UpdateSubject.Question).
				Set("answer = ?", merge.UpdateSubject.Answer).
				Where("id = ?", merge.UpdateSubject.ID).
				Update()
			if err != nil {
				return err
			}
		}

		if len(merge.StaleIDs) > 0 {
			// Never mark an already decided correction stale.
			_, err = tx.Model((*models.Proposal)(nil)).
				Set("stale = ?", true).
				Where("id IN (?)", pg.In(merge.StaleIDs)).
				Where("merged = ?", false).
				Where("refused = ?", false).
				Update()
			if err != nil {
				return err
			}
		}

		return nil
	})
}
