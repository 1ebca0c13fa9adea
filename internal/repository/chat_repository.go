package repository

import (
	"edubridge_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Save(msg *model.ChatMessage) error {
	return r.DB.Create(msg).Error
}

func (r *ChatRepository) History(userID uint, agent model.AgentType, limit int) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	query := r.DB.Where("user_id = ?", userID)
	if agent != "" {
		query = query.Where("agent_type = ?", agent)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) DeleteByAgent(userID uint, agent model.AgentType) error {
	return r.DB.Where("user_id = ? AND agent_type = ?", userID, agent).
		Delete(&model.ChatMessage{}).Error
}
