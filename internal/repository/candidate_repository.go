package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

// FindAll returns candidates best match first, the order the employer
// browser displays.
func (r *CandidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.DB.Order("match_score DESC").Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var c model.Candidate
	err := r.DB.First(&c, id).Error
	return &c, err
}
