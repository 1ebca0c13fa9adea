package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) FindByUser(userID uint) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) Exists(userID uint, jobTitle string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.JobApplication{}).
		Where("user_id = ? AND job_title = ?", userID, jobTitle).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepository) Create(app *model.JobApplication) error {
	return r.DB.Create(app).Error
}
