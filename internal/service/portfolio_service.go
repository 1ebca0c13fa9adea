package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PortfolioService builds a career portfolio from a student's agent
// transcripts and keeps one saved portfolio per user.
type PortfolioService struct {
	portfolios *repository.PortfolioRepository
	chats      *repository.ChatRepository
	ai         *AIService
}

func NewPortfolioService(portfolios *repository.PortfolioRepository, chats *repository.ChatRepository, ai *AIService) *PortfolioService {
	return &PortfolioService{portfolios: portfolios, chats: chats, ai: ai}
}

// PortfolioAnalysis is the AI career read of a student's learning logs.
type PortfolioAnalysis struct {
	CareerRole string `json:"career_role"`
	Skills     string `json:"skills"`
	Summary    string `json:"summary"`
}

// Analyze feeds the user's chat history to the model and persists the
// resulting portfolio. Requires at least one transcript entry.
func (s *PortfolioService) Analyze(ctx context.Context, userID uint, theme model.PortfolioTheme) (*model.Portfolio, error) {
	logs, err := s.chats.History(userID, "", 100)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, util.ErrNoChatHistory
	}

	var formatted strings.Builder
	for i := len(logs) - 1; i >= 0; i-- {
		formatted.WriteString(fmt.Sprintf("[%s] %s: %s\n", logs[i].AgentType, logs[i].Role, logs[i].Message))
	}

	systemPrompt := "You are a career analyst AI. Based on the user's learning logs, analyze their career trajectory. " +
		"Provide a JSON response with:\n" +
		"1. career_role: The most suitable career role for this student (e.g., Full Stack Developer, Data Scientist, Product Manager)\n" +
		"2. skills: A comma-separated list of their top 5 skills (e.g., Python, React, Machine Learning, Communication, Leadership)\n" +
		"3. summary: A 3-line professional summary for a CV (line1: expertise, line2: achievements, line3: career goal)\n\n" +
		"Learning Logs:\n" + formatted.String() + "\n\n" +
		`Respond ONLY in JSON format like: {"career_role": "...", "skills": "..., ..., ...", "summary": "... ... ..."}`

	text, err := s.ai.Chat(ctx, BuildMessages(systemPrompt, nil, "Analyze my learning logs and provide career insights."))
	if err != nil {
		return nil, err
	}

	analysis := parsePortfolioAnalysis(text)

	if theme == "" {
		theme = model.ThemeClassic
	}
	portfolio := &model.Portfolio{
		UserID:     userID,
		CareerRole: analysis.CareerRole,
		Skills:     analysis.Skills,
		Summary:    analysis.Summary,
		Theme:      theme,
	}
	if err := s.portfolios.Upsert(portfolio); err != nil {
		logger.Log.Error("failed to save portfolio", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return portfolio, nil
}

// parsePortfolioAnalysis extracts the JSON object from model text, falling
// back to a generic profile built from the raw reply.
func parsePortfolioAnalysis(text string) PortfolioAnalysis {
	if match := jsonBlock.FindString(text); match != "" {
		var analysis PortfolioAnalysis
		if err := json.Unmarshal([]byte(match), &analysis); err == nil {
			if analysis.CareerRole == "" {
				analysis.CareerRole = "Professional Learner"
			}
			if analysis.Skills == "" {
				analysis.Skills = "Learning, Communication"
			}
			if analysis.Summary == "" {
				analysis.Summary = "Unable to generate summary."
			}
			return analysis
		}
	}

	summary := text
	if len(summary) > 200 {
		summary = summary[:200]
	}
	return PortfolioAnalysis{
		CareerRole: "Professional Learner",
		Skills:     "Learning, Communication, Problem Solving, Adaptability, Growth",
		Summary:    summary,
	}
}

// Get returns the user's saved portfolio.
func (s *PortfolioService) Get(userID uint) (*model.Portfolio, error) {
	p, err := s.portfolios.FindByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPortfolioNotFound
		}
		return nil, err
	}
	return p, nil
}

// SetTheme updates only the portfolio presentation theme.
func (s *PortfolioService) SetTheme(userID uint, theme model.PortfolioTheme) (*model.Portfolio, error) {
	p, err := s.portfolios.FindByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPortfolioNotFound
		}
		return nil, err
	}
	p.Theme = theme
	if err := s.portfolios.Upsert(p); err != nil {
		return nil, err
	}
	return p, nil
}
