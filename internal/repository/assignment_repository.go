package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Order("due_date ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AssignmentRepository) FindSubmissions(userID uint) ([]model.AssignmentSubmission, error) {
	var subs []model.AssignmentSubmission
	err := r.DB.Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}

func (r *AssignmentRepository) FindSubmission(userID, assignmentID uint) (*model.AssignmentSubmission, error) {
	var sub model.AssignmentSubmission
	err := r.DB.Where("user_id = ? AND assignment_id = ?", userID, assignmentID).First(&sub).Error
	return &sub, err
}

// UpsertSubmission writes the submission state as one read-modify-write unit.
func (r *AssignmentRepository) UpsertSubmission(sub *model.AssignmentSubmission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.AssignmentSubmission
		err := tx.Where("user_id = ? AND assignment_id = ?", sub.UserID, sub.AssignmentID).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(sub).Error
		}
		if err != nil {
			return err
		}
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
		return tx.Save(sub).Error
	})
}
