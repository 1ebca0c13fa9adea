package model

type AgentType string

const (
	AgentCofounder AgentType = "cofounder"
	AgentMentor    AgentType = "mentor"
	AgentSupport   AgentType = "support"
	AgentRoadmap   AgentType = "roadmap"
)

// ChatMessage is one row of an agent conversation transcript.
type ChatMessage struct {
	BaseModel
	UserID    uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Role      string    `gorm:"size:20;not null" json:"role"` // user, assistant
	Message   string    `gorm:"type:text;not null" json:"message"`
	AgentType AgentType `gorm:"size:30;index" json:"agentType"`
}

func (ChatMessage) TableName() string {
	return "chat_history"
}
