package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	DB *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) FindByUser(userID uint) (*model.Portfolio, error) {
	var p model.Portfolio
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	return &p, err
}

// Upsert keeps a single portfolio row per user.
func (r *PortfolioRepository) Upsert(p *model.Portfolio) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Portfolio
		err := tx.Where("user_id = ?", p.UserID).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(p).Error
		}
		if err != nil {
			return err
		}
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		return tx.Save(p).Error
	})
}
