package repositories

import (
	"joke_suggestions_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type approvalRepository struct {
	repository
}

type ApprovalRepository interface {
	Create(request *models.Approval) (*models.Approval, error)
	DeleteByProposalAndUser(proposalID int64, userID string) (bool, error)
	CountByProposal(proposalID int64) (int, error)
	GetManyByUser(userID string) ([]*models.Approval, error)
}

func NewApprovalRepository(db *pg.DB) ApprovalRepository {
	return &approvalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *approvalRepository) Create(request *models.Approval) (*models.Approval, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *approvalRepository) DeleteByProposalAndUser(proposalID int64, userID string) (bool, error) {
	result, err := r.db.Model((*models.Approval)(nil)).
		Where("proposal_id = ?", proposalID).
		Where("user_id = ?", userID).
		Delete()
	if err != nil {
		return false, err
	}

	return result.RowsAffected() > 0, nil
}

func (r *approvalRepository) CountByProposal(proposalID int64) (int, error) {
	return r.db.Model((*models.Approval)(nil)).
		Where("proposal_id = ?", proposalID).
		Count()
}

func (r *approvalRepository) GetManyByUser(userID string) ([]*models.Approval, error) {
	approvals := make([]*models.Approval, 0)

	err := r.db.Model(&approvals).
		Where("user_id = ?", userID).
		Select()

	return approvals, err
}
