package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidateAnalysisExtractsJSONBlock(t *testing.T) {
	text := "Here is my assessment:\n" +
		`{"professionalSummary":"Solid engineer.","matchScore":85,"strengths":["Go","SQL"],"improvements":["More testing"]}` +
		"\nHope this helps!"

	analysis := ParseCandidateAnalysis(text)

	assert.Equal(t, "Solid engineer.", analysis.ProfessionalSummary)
	assert.Equal(t, 85, analysis.MatchScore)
	assert.Equal(t, []string{"Go", "SQL"}, analysis.Strengths)
	assert.Equal(t, []string{"More testing"}, analysis.Improvements)
}

func TestParseCandidateAnalysisFallbackOnProse(t *testing.T) {
	text := "This candidate shows great promise in backend development."

	analysis := ParseCandidateAnalysis(text)

	assert.Equal(t, text, analysis.ProfessionalSummary)
	assert.GreaterOrEqual(t, analysis.MatchScore, 70)
	assert.Less(t, analysis.MatchScore, 100)
	assert.Equal(t, []string{"Strong technical skills", "Relevant experience"}, analysis.Strengths)
	assert.Equal(t, []string{"Consider adding more details"}, analysis.Improvements)
}

func TestParseCandidateAnalysisFallbackTruncatesSummary(t *testing.T) {
	text := strings.Repeat("a", 500)

	analysis := ParseCandidateAnalysis(text)

	require.Len(t, analysis.ProfessionalSummary, 200)
}

func TestOrNotSpecifiedAndOrNotProvided(t *testing.T) {
	assert.Equal(t, "Not specified", orNotSpecified("  "))
	assert.Equal(t, "Go, SQL", orNotSpecified("Go, SQL"))
	assert.Equal(t, "Not provided", orNotProvided(""))
	assert.Equal(t, "bio", orNotProvided("bio"))
}
