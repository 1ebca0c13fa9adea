package service

import (
	"context"
	"mime/multipart"
	"time"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"

	"gorm.io/gorm"
)

// AssignmentService merges the shared catalog with each student's
// submission state; a missing submission row reads as Pending.
type AssignmentService struct {
	assignments *repository.AssignmentRepository
	storage     StorageProvider
}

func NewAssignmentService(assignments *repository.AssignmentRepository, storage StorageProvider) *AssignmentService {
	return &AssignmentService{assignments: assignments, storage: storage}
}

// AssignmentView is one catalog entry with the caller's submission state.
type AssignmentView struct {
	model.Assignment
	Status        model.SubmissionStatus `json:"status"`
	FileName      string                 `json:"fileName,omitempty"`
	FileURL       string                 `json:"fileUrl,omitempty"`
	SubmittedDate *time.Time             `json:"submittedDate,omitempty"`
	Grade         string                 `json:"grade,omitempty"`
}

// List returns the catalog with the user's per-assignment status merged in.
func (s *AssignmentService) List(userID uint) ([]AssignmentView, error) {
	catalog, err := s.assignments.FindAll()
	if err != nil {
		return nil, err
	}
	submissions, err := s.assignments.FindSubmissions(userID)
	if err != nil {
		return nil, err
	}

	byAssignment := make(map[uint]model.AssignmentSubmission, len(submissions))
	for _, sub := range submissions {
		byAssignment[sub.AssignmentID] = sub
	}

	views := make([]AssignmentView, 0, len(catalog))
	for _, a := range catalog {
		view := AssignmentView{Assignment: a, Status: model.SubmissionPending}
		if sub, ok := byAssignment[a.ID]; ok {
			view.Status = sub.Status
			view.FileName = sub.FileName
			view.FileURL = sub.FileURL
			view.SubmittedDate = sub.SubmittedDate
			view.Grade = sub.Grade
		}
		views = append(views, view)
	}
	return views, nil
}

// Submit stores the uploaded file and marks the assignment Submitted.
// Re-submitting replaces the previous file and resets any grade.
func (s *AssignmentService) Submit(ctx context.Context, userID, assignmentID uint, file *multipart.FileHeader) (*model.AssignmentSubmission, error) {
	if _, err := s.assignments.FindByID(assignmentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}

	fileURL, err := s.storage.Save(ctx, file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &model.AssignmentSubmission{
		UserID:        userID,
		AssignmentID:  assignmentID,
		Status:        model.SubmissionSubmitted,
		FileName:      file.Filename,
		FileURL:       fileURL,
		SubmittedDate: &now,
	}
	if err := s.assignments.UpsertSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Grade marks a submission Graded with the given grade. Admin only, the
// controller enforces the role.
func (s *AssignmentService) Grade(userID, assignmentID uint, grade string) (*model.AssignmentSubmission, error) {
	sub, err := s.assignments.FindSubmission(userID, assignmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	sub.Status = model.SubmissionGraded
	sub.Grade = grade
	if err := s.assignments.UpsertSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}
