package service

import (
	"testing"

	"edubridge_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCareerPythonExpert(t *testing.T) {
	profile := ClassifyCareer(
		[]model.Skill{{Name: "Python", Level: model.SkillExpert}},
		nil,
	)

	assert.Equal(t, "Data Scientist", profile.SuggestedRole)
	assert.Equal(t, "#8b5cf6", profile.CareerColor)
	require.Len(t, profile.RecommendedJobs, 3)
	assert.Equal(t, "KBZ Bank", profile.RecommendedJobs[0].Company)
}

func TestClassifyCareerGradedBusinessAssignment(t *testing.T) {
	profile := ClassifyCareer(
		nil,
		[]GradedAssignment{{Title: "Business Case", Status: model.SubmissionGraded}},
	)

	assert.Equal(t, "Data Scientist", profile.SuggestedRole)
}

func TestClassifyCareerDefaultsToWebDeveloper(t *testing.T) {
	profile := ClassifyCareer(
		[]model.Skill{{Name: "Java", Level: model.SkillIntermediate}},
		[]GradedAssignment{{Title: "Business Case", Status: model.SubmissionPending}},
	)

	assert.Equal(t, "Web Developer", profile.SuggestedRole)
	assert.Equal(t, "#0070f3", profile.CareerColor)
	require.Len(t, profile.RecommendedJobs, 3)
	assert.Equal(t, "NexLabs", profile.RecommendedJobs[0].Company)
}

func TestClassifyCareerEmptyProfile(t *testing.T) {
	profile := ClassifyCareer(nil, nil)
	assert.Equal(t, "Web Developer", profile.SuggestedRole)
}

func TestClassifyCareerNeedsExactExpertLevel(t *testing.T) {
	profile := ClassifyCareer(
		[]model.Skill{{Name: "Python", Level: model.SkillAdvanced}},
		nil,
	)
	assert.Equal(t, "Web Developer", profile.SuggestedRole)
}

func TestClassifyCareerSkillNameSubstring(t *testing.T) {
	profile := ClassifyCareer(
		[]model.Skill{{Name: "Python for Data Science", Level: model.SkillExpert}},
		nil,
	)
	assert.Equal(t, "Data Scientist", profile.SuggestedRole)
}

func TestClassifyCareerInsightIsConstant(t *testing.T) {
	ds := ClassifyCareer([]model.Skill{{Name: "python", Level: model.SkillExpert}}, nil)
	wd := ClassifyCareer(nil, nil)
	assert.Equal(t, ds.Insight, wd.Insight)
}
