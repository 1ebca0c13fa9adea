package model

import "time"

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "Pending"
	SubmissionSubmitted SubmissionStatus = "Submitted"
	SubmissionGraded    SubmissionStatus = "Graded"
)

// Assignment is a catalog entry shared by all students.
type Assignment struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Course      string     `gorm:"size:255" json:"course"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentSubmission tracks one student's state for one assignment.
// Absence of a row means Pending.
type AssignmentSubmission struct {
	BaseModel
	UserID        uint             `gorm:"uniqueIndex:idx_user_assignment;type:bigint unsigned" json:"userId"`
	AssignmentID  uint             `gorm:"uniqueIndex:idx_user_assignment;type:bigint unsigned" json:"assignmentId"`
	Status        SubmissionStatus `gorm:"type:enum('Pending','Submitted','Graded');default:'Pending'" json:"status"`
	FileName      string           `gorm:"size:255" json:"fileName"`
	FileURL       string           `gorm:"size:255" json:"fileUrl"`
	SubmittedDate *time.Time       `json:"submittedDate"`
	Grade         string           `gorm:"size:20" json:"grade"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}
