package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CandidateService serves the employer-facing candidate browser and runs
// AI profile analysis.
type CandidateService struct {
	candidates *repository.CandidateRepository
	ai         *AIService
}

func NewCandidateService(candidates *repository.CandidateRepository, ai *AIService) *CandidateService {
	return &CandidateService{candidates: candidates, ai: ai}
}

// CandidateView is a candidate row with the comma-joined skills column
// coerced into a list.
type CandidateView struct {
	model.Candidate
	Skills []string `json:"skills"`
}

// CandidateAnalysis is the AI assessment of one candidate profile.
type CandidateAnalysis struct {
	ProfessionalSummary string   `json:"professionalSummary"`
	MatchScore          int      `json:"matchScore"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
}

// List returns all candidates, best match first.
func (s *CandidateService) List() ([]CandidateView, error) {
	candidates, err := s.candidates.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]CandidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, CandidateView{Candidate: c, Skills: util.SplitCSV(c.Skills)})
	}
	return views, nil
}

// Get returns one candidate by id.
func (s *CandidateService) Get(id uint) (*CandidateView, error) {
	c, err := s.candidates.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCandidateNotFound
		}
		return nil, err
	}
	return &CandidateView{Candidate: *c, Skills: util.SplitCSV(c.Skills)}, nil
}

var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

// Analyze asks the model to assess a candidate and extracts the JSON block
// from its reply. An unparsable reply degrades to a synthesized record
// rather than an error.
func (s *CandidateService) Analyze(ctx context.Context, id uint) (*CandidateAnalysis, error) {
	candidate, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Analyze this candidate profile and provide:
1. A professional summary (2-3 sentences)
2. A match score (0-100) for the role: %s
3. Key strengths (3-5 points)
4. Areas for improvement (2-3 points)

Candidate Info:
- Name: %s
- Current Role: %s
- Skills: %s
- Experience: %s
- Current Summary: %s

Respond in JSON format:
{
  "professionalSummary": "...",
  "matchScore": 85,
  "strengths": ["...", "..."],
  "improvements": ["...", "..."]
}`,
		candidate.Role, candidate.Name, candidate.Role,
		orNotSpecified(strings.Join(candidate.Skills, ", ")),
		orNotSpecified(candidate.Experience),
		orNotProvided(candidate.Summary))

	text, err := s.ai.Chat(ctx, BuildMessages("", nil, prompt))
	if err != nil {
		return nil, err
	}

	return ParseCandidateAnalysis(text), nil
}

// ParseCandidateAnalysis extracts the first JSON object from model text.
// When no valid object is found, a fallback record is synthesized from the
// raw text with a random score in [70, 100).
func ParseCandidateAnalysis(text string) *CandidateAnalysis {
	if match := jsonBlock.FindString(text); match != "" {
		var analysis CandidateAnalysis
		if err := json.Unmarshal([]byte(match), &analysis); err == nil {
			return &analysis
		}
		logger.Log.Debug("candidate analysis JSON unparsable, using fallback", zap.String("text", match))
	}

	summary := text
	if len(summary) > 200 {
		summary = summary[:200]
	}
	return &CandidateAnalysis{
		ProfessionalSummary: summary,
		MatchScore:          rand.Intn(30) + 70,
		Strengths:           []string{"Strong technical skills", "Relevant experience"},
		Improvements:        []string{"Consider adding more details"},
	}
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not provided"
	}
	return v
}
