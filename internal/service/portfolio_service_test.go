package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePortfolioAnalysisFullJSON(t *testing.T) {
	analysis := parsePortfolioAnalysis(
		`{"career_role":"Data Scientist","skills":"Python, SQL","summary":"Line1 Line2 Line3"}`)

	assert.Equal(t, "Data Scientist", analysis.CareerRole)
	assert.Equal(t, "Python, SQL", analysis.Skills)
	assert.Equal(t, "Line1 Line2 Line3", analysis.Summary)
}

func TestParsePortfolioAnalysisPartialJSONFieldFallbacks(t *testing.T) {
	analysis := parsePortfolioAnalysis(`{"summary":"only a summary"}`)

	assert.Equal(t, "Professional Learner", analysis.CareerRole)
	assert.Equal(t, "Learning, Communication", analysis.Skills)
	assert.Equal(t, "only a summary", analysis.Summary)
}

func TestParsePortfolioAnalysisProseFallback(t *testing.T) {
	text := "You seem to enjoy building things. " + strings.Repeat("x", 300)

	analysis := parsePortfolioAnalysis(text)

	assert.Equal(t, "Professional Learner", analysis.CareerRole)
	assert.Equal(t, "Learning, Communication, Problem Solving, Adaptability, Growth", analysis.Skills)
	assert.Len(t, analysis.Summary, 200)
}
