package model

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

type SkillSource string

const (
	SkillSourceAI     SkillSource = "ai"
	SkillSourceManual SkillSource = "manual"
)

// Skill is one entry of a student's skill profile. It feeds the career
// classifier and the interview feedback generator.
type Skill struct {
	BaseModel
	UserID uint        `gorm:"index;type:bigint unsigned" json:"userId"`
	Name   string      `gorm:"size:100;not null" json:"name"`
	Level  SkillLevel  `gorm:"type:enum('Beginner','Intermediate','Advanced','Expert');default:'Beginner'" json:"level"`
	Source SkillSource `gorm:"type:enum('ai','manual');default:'manual'" json:"source"`
}

func (Skill) TableName() string {
	return "skills"
}
