package repositories

import (
	"joke_suggestions_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type disapprovalRepository struct {
	repository
}

type DisapprovalRepository interface {
	Create(request *models.Disapproval) (*models.Disapproval, error)
	DeleteByProposalAndUser(proposalID int64, userID string) (bool, error)
	CountByProposal(proposalID int64) (int, error)
	GetManyByUser(userID string) ([]*models.Disapproval, error)
}

func NewDisapprovalRepository(db *pg.DB) DisapprovalRepository {
	return &disapprovalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *disapprovalRepository) Create(request *models.Disapproval) (*models.Disapproval, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *disapprovalRepository) DeleteByProposalAndUser(proposalID int64, userID string) (bool, error) {
	result, err := r.db.Model((*models.Disapproval)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("user_id = ?", userID).
		Delete()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *disapprovalRepository) CountByProposal(proposalID int64) (int, error) {
	return r.db.Model((*models.Disapproval)(nil)).
		Where("proposal_id = ?", proposalID).
		Count()
}

func (r *disapprovalRepository) GetManyByUser(userID string) ([]*models.Disapproval, error) {
	disapprovals := make([]*models.Disapproval, 0)

	err := r.db.Model(&disapprovals).
		Where("user_id = ?", userID).
		Select()

	return disapprovals, err
}
