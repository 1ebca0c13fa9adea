package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) FindByUser(userID uint) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.DB.Save(skill).Error
}

func (r *SkillRepository) Delete(userID, id uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&model.Skill{}, id).Error
}
