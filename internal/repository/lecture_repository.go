package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

// FindAll returns lectures in catalog order (id asc), matching how the
// course page consumes them.
func (r *LectureRepository) FindAll() ([]model.Lecture, error) {
	var lectures []model.Lecture
	err := r.DB.Order("id ASC").Find(&lectures).Error
	return lectures, err
}

func (r *LectureRepository) FindByID(id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, id).Error
	return &lecture, err
}
