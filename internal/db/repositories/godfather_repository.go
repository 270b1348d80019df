package repositories

import (
	"joke_suggestions_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type godfatherRepository struct {
	repository
}

type GodfatherRepository interface {
	Create(request *models.Godfather) (*models.Godfather, error)
	Update(request *models.Godfather) (*models.Godfather, error)
	GetOneByUserID(userID string) (*models.Godfather, error)
	GetMany() ([]*models.Godfather, error)
}

func NewGodfatherRepository(db *pg.DB) GodfatherRepository {
	return &godfatherRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *godfatherRepository) Create(request *models.Godfather) (*models.Godfather, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *godfatherRepository) Update(request *models.Godfather) (*models.Godfather, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *godfatherRepository) GetOneByUserID(userID string) (*models.Godfather, error) {
	godfather := &models.Godfather{}

	err := r.db.Model(godfather).
		Where("user_id = ?", userID).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return godfather, nil
}

func (r *godfatherRepository) GetMany() ([]*models.Godfather, error) {
	godfathers := make([]*models.Godfather, 0)

	err := r.db.Model(&godfathers).
		Select()

	return godfathers, err
}
