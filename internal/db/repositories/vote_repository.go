package repositories

import (
	"joke_suggestions_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	DeleteOne(proposalID int64, userID string, voteType models.VoteType) (bool, error)
	DeleteByProposalAndUser(proposalID int64, userID string) (int, error)
	CountByProposal(proposalID int64, voteType models.VoteType) (int, error)
	GetManyByUser(userID string) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Create is idempotent: a second identical reaction is swallowed by the
// (proposal, user, type) uniqueness constraint.
func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *voteRepository) DeleteOne(proposalID int64, userID string, voteType models.VoteType) (bool, error) {
	result, err := r.db.Model((*models.Vote)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("user_id = ?", userID).
		Where("type = ?", voteType).
		Delete()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *voteRepository) DeleteByProposalAndUser(proposalID int64, userID string) (int, error) {
	result, err := r.db.Model((*models.Vote)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("user_id = ?", userID).
		Delete()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *voteRepository) CountByProposal(proposalID int64, voteType models.VoteType) (int, error) {
	return r.db.Model((*models.Vote)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("type = ?", voteType).
		Count()
}

func (r *voteRepository) GetManyByUser(userID string) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("user_id = ?", userID).
		Select()

	return votes, err
}
