package model

// Lecture is a seeded course entry pointing at an external video.
type Lecture struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Instructor  string `gorm:"size:100" json:"instructor"`
	VideoURL    string `gorm:"size:255" json:"videoUrl"`
	Duration    string `gorm:"size:50" json:"duration"`
	Category    string `gorm:"size:100" json:"category"`
}

func (Lecture) TableName() string {
	return "lectures"
}
