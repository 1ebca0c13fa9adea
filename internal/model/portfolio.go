package model

type PortfolioTheme string

const (
	ThemeClassic PortfolioTheme = "classic"
	ThemeNeon    PortfolioTheme = "neon"
	ThemeMinimal PortfolioTheme = "minimal"
)

// Portfolio is one generated career portfolio per student, upserted on save.
type Portfolio struct {
	BaseModel
	UserID     uint           `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	CareerRole string         `gorm:"size:100" json:"careerRole"`
	Skills     string         `gorm:"size:500" json:"skills"`
	Summary    string         `gorm:"type:text" json:"summary"`
	Theme      PortfolioTheme `gorm:"size:20;default:'classic'" json:"theme"`
}

func (Portfolio) TableName() string {
	return "student_portfolios"
}
