package model

// InterviewQuestion is seeded reference data; keywords are comma-joined in
// storage and split by the service layer.
type InterviewQuestion struct {
	BaseModel
	Role         string `gorm:"size:100;index" json:"role"`
	Company      string `gorm:"size:100" json:"company"`
	Question     string `gorm:"type:text;not null" json:"question"`
	Keywords     string `gorm:"size:500" json:"-"`
	SampleAnswer string `gorm:"type:text" json:"sampleAnswer"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
