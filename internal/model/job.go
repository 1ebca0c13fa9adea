package model

// JobApplication records that a student applied to one of the recommended
// postings. The unique index makes re-applying a no-op at the DB level.
type JobApplication struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex:idx_user_job;type:bigint unsigned" json:"userId"`
	JobTitle string `gorm:"uniqueIndex:idx_user_job;size:255" json:"jobTitle"`
	Company  string `gorm:"size:255" json:"company"`
	Location string `gorm:"size:255" json:"location"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
