package service

import (
	"strings"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
)

// JobPosting is a fixed recommendation shown with a career profile.
type JobPosting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// CareerProfile is the classifier output for one user.
type CareerProfile struct {
	SuggestedRole   string       `json:"suggestedRole"`
	CareerColor     string       `json:"careerColor"`
	RecommendedJobs []JobPosting `json:"recommendedJobs"`
	Insight         string       `json:"localReadinessInsight"`
}

// The insight line is the same constant in both branches.
const readinessInsight = "Your profile is a 90% match for top-tier tech roles in Yangon's banking and fintech sectors."

var dataScientistJobs = []JobPosting{
	{Title: "Junior Data Analyst", Company: "KBZ Bank", Location: "Yangon, Myanmar"},
	{Title: "Business Intelligence Developer", Company: "Wave Money", Location: "Yangon, Myanmar"},
	{Title: "Data Scientist", Company: "MPT", Location: "Yangon, Myanmar"},
}

var webDeveloperJobs = []JobPosting{
	{Title: "Frontend Engineer", Company: "NexLabs", Location: "Yangon, Myanmar"},
	{Title: "React Developer", Company: "7Days Digital", Location: "Yangon, Myanmar"},
	{Title: "Full Stack Developer", Company: "Dot-Mill", Location: "Remote (Myanmar)"},
}

// ClassifyCareer picks one of two role buckets. A user is a Data Scientist
// when any skill name contains "python" at Expert level, or any assignment
// title containing "business" is Graded; everyone else is a Web Developer,
// including empty profiles.
func ClassifyCareer(skills []model.Skill, assignments []GradedAssignment) CareerProfile {
	pythonExpert := false
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s.Name), "python") && s.Level == model.SkillExpert {
			pythonExpert = true
			break
		}
	}

	gradedBusiness := false
	for _, a := range assignments {
		if strings.Contains(strings.ToLower(a.Title), "business") && a.Status == model.SubmissionGraded {
			gradedBusiness = true
			break
		}
	}

	if pythonExpert || gradedBusiness {
		return CareerProfile{
			SuggestedRole:   "Data Scientist",
			CareerColor:     "#8b5cf6",
			RecommendedJobs: dataScientistJobs,
			Insight:         readinessInsight,
		}
	}

	return CareerProfile{
		SuggestedRole:   "Web Developer",
		CareerColor:     "#0070f3",
		RecommendedJobs: webDeveloperJobs,
		Insight:         readinessInsight,
	}
}

// GradedAssignment pairs an assignment title with the user's submission
// status, the classifier's only view of assignment state.
type GradedAssignment struct {
	Title  string
	Status model.SubmissionStatus
}

// CareerService assembles classifier input from the user's stored skills
// and submissions, and handles job applications.
type CareerService struct {
	skills       *repository.SkillRepository
	assignments  *repository.AssignmentRepository
	applications *repository.ApplicationRepository
}

func NewCareerService(skills *repository.SkillRepository, assignments *repository.AssignmentRepository, applications *repository.ApplicationRepository) *CareerService {
	return &CareerService{skills: skills, assignments: assignments, applications: applications}
}

// Profile classifies the user from their current skills and submissions.
// Submissions without a matching catalog entry are skipped.
func (s *CareerService) Profile(userID uint) (*CareerProfile, error) {
	skills, err := s.skills.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.assignments.FindAll()
	if err != nil {
		return nil, err
	}
	titles := make(map[uint]string, len(catalog))
	for _, a := range catalog {
		titles[a.ID] = a.Title
	}

	submissions, err := s.assignments.FindSubmissions(userID)
	if err != nil {
		return nil, err
	}
	graded := make([]GradedAssignment, 0, len(submissions))
	for _, sub := range submissions {
		title, ok := titles[sub.AssignmentID]
		if !ok {
			continue
		}
		graded = append(graded, GradedAssignment{Title: title, Status: sub.Status})
	}

	profile := ClassifyCareer(skills, graded)
	return &profile, nil
}

// Apply records a job application; applying twice to the same title is
// rejected.
func (s *CareerService) Apply(userID uint, app *model.JobApplication) error {
	exists, err := s.applications.Exists(userID, app.JobTitle)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrAlreadyApplied
	}
	app.UserID = userID
	return s.applications.Create(app)
}

// Applications lists the user's submitted applications, newest first.
func (s *CareerService) Applications(userID uint) ([]model.JobApplication, error) {
	return s.applications.FindByUser(userID)
}
