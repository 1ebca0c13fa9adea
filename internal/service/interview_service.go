package service

import (
	"context"
	"fmt"
	"strings"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const marketReadyThreshold = 5

// InterviewService scores free-text answers against each question's keyword
// set and tracks per-user completion in Redis.
type InterviewService struct {
	questions *repository.InterviewRepository
	skills    *repository.SkillRepository
	rdb       *redis.Client
}

func NewInterviewService(questions *repository.InterviewRepository, skills *repository.SkillRepository, rdb *redis.Client) *InterviewService {
	return &InterviewService{questions: questions, skills: skills, rdb: rdb}
}

// AnswerResult is the outcome of one scored attempt.
type AnswerResult struct {
	Feedback       string `json:"feedback"`
	Score          int    `json:"score"`
	CompletedCount int    `json:"completedCount"`
	MarketReady    bool   `json:"marketReady"`
}

// InterviewProgress is the user's running completion state.
type InterviewProgress struct {
	CompletedIDs   []string `json:"completedIds"`
	CompletedCount int      `json:"completedCount"`
	MarketReady    bool     `json:"marketReady"`
}

func completedKey(userID uint) string {
	return fmt.Sprintf("interview:completed:%d", userID)
}

func marketReadyKey(userID uint) string {
	return fmt.Sprintf("interview:market_ready:%d", userID)
}

// ListQuestions returns the catalog for a role, falling back to the whole
// catalog when no question matches the role.
func (s *InterviewService) ListQuestions(role string) ([]model.InterviewQuestion, error) {
	if role != "" {
		questions, err := s.questions.FindByRole(role)
		if err != nil {
			return nil, err
		}
		if len(questions) > 0 {
			return questions, nil
		}
	}
	return s.questions.FindAll()
}

// ScoreAnswer computes feedback and a score for an answer.
//
// Matched keywords are found by case-insensitive substring containment, not
// word tokenization. The base score is min(100, matches*20+20). An Expert or
// Advanced skill overlapping the keywords adds a flat +10 that is not
// re-capped, so a perfect base score lands at 110.
func ScoreAnswer(answer string, keywords []string, skills []model.Skill) (string, int) {
	answerLower := strings.ToLower(answer)

	var relevantSkills []string
	for _, skill := range skills {
		name := strings.ToLower(skill.Name)
		for _, keyword := range keywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(name, kw) || strings.Contains(kw, name) {
				relevantSkills = append(relevantSkills, name)
				break
			}
		}
	}

	var matched []string
	for _, keyword := range keywords {
		if strings.Contains(answerLower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}

	score := len(matched)*20 + 20
	if score > 100 {
		score = 100
	}

	var feedback strings.Builder
	if len(relevantSkills) > 0 {
		feedback.WriteString("Great! I noticed you mentioned skills in " + strings.Join(relevantSkills, ", ") + ". ")

		for _, skill := range skills {
			if skill.Level != model.SkillExpert && skill.Level != model.SkillAdvanced {
				continue
			}
			name := strings.ToLower(skill.Name)
			overlaps := false
			for _, r := range relevantSkills {
				if strings.Contains(name, r) {
					overlaps = true
					break
				}
			}
			if overlaps {
				feedback.WriteString(fmt.Sprintf(
					"Since you have verified %q level in %s, make sure to highlight your %s projects to impress local HRs! ",
					skill.Level, skill.Name, skill.Name))
				score += 10
				break
			}
		}
	}

	if len(matched) < 3 {
		hint := keywords
		if len(hint) > 2 {
			hint = hint[:2]
		}
		feedback.WriteString("Consider mentioning more about " + strings.Join(hint, " and ") + " in your answer.")
	} else {
		feedback.WriteString("Your answer covers many important aspects! Keep practicing to refine your delivery.")
	}

	return feedback.String(), score
}

// SubmitAnswer scores an answer and records the question as completed. The
// completed set is idempotent and the market-ready flag fires exactly once,
// when the fifth distinct question lands.
func (s *InterviewService) SubmitAnswer(ctx context.Context, userID, questionID uint, answer string) (*AnswerResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, util.ErrEmptyAnswer
	}

	question, err := s.questions.FindByID(questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	skills, err := s.skills.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	feedback, score := ScoreAnswer(answer, util.SplitCSV(question.Keywords), skills)

	if err := s.rdb.SAdd(ctx, completedKey(userID), questionID).Err(); err != nil {
		return nil, err
	}
	count, err := s.rdb.SCard(ctx, completedKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	marketReady := false
	if count >= marketReadyThreshold {
		// SETNX makes the milestone fire once per session, idempotent
		// across repeated submissions.
		fired, err := s.rdb.SetNX(ctx, marketReadyKey(userID), 1, 0).Result()
		if err != nil {
			logger.Log.Warn("market ready flag write failed", zap.Error(err))
		}
		marketReady = fired
	}

	return &AnswerResult{
		Feedback:       feedback,
		Score:          score,
		CompletedCount: int(count),
		MarketReady:    marketReady,
	}, nil
}

// Progress reports the completed question ids and the milestone state.
func (s *InterviewService) Progress(ctx context.Context, userID uint) (*InterviewProgress, error) {
	ids, err := s.rdb.SMembers(ctx, completedKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	fired, err := s.rdb.Exists(ctx, marketReadyKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	return &InterviewProgress{
		CompletedIDs:   ids,
		CompletedCount: len(ids),
		MarketReady:    fired > 0,
	}, nil
}

// Reset clears all completion state for a user.
func (s *InterviewService) Reset(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, completedKey(userID), marketReadyKey(userID)).Err()
}
