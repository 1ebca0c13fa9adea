package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

func (r *InterviewRepository) FindAll() ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.DB.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *InterviewRepository) FindByRole(role string) ([]model.InterviewQuestion, error) {
	var questions []model.InterviewQuestion
	err := r.DB.Where("role = ?", role).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *InterviewRepository) FindByID(id uint) (*model.InterviewQuestion, error) {
	var q model.InterviewQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}
