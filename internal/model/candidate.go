package model

// Candidate is an employer-facing profile row. MatchScore is stored data,
// never computed here; the analyze endpoint only produces a report.
type Candidate struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	Role       string `gorm:"size:100" json:"role"`
	Skills     string `gorm:"size:500" json:"-"` // comma-joined in storage
	MatchScore int    `gorm:"default:0" json:"match_score"`
	Experience string `gorm:"size:100" json:"experience"`
	Summary    string `gorm:"type:text" json:"summary"`
	Location   string `gorm:"size:100" json:"location"`
}

func (Candidate) TableName() string {
	return "candidates"
}
