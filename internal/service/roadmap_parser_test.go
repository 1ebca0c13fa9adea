package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoadmapTextNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"just some prose with no structure",
		"### heading\n\n* bullet\n* bullet",
		"\n\n\n",
	}
	for _, input := range inputs {
		result := ParseRoadmapText(input, nil)
		assert.NotEmpty(t, result.Steps, "input %q", input)
	}
}

func TestParseRoadmapTextDefaultFallback(t *testing.T) {
	result := ParseRoadmapText("nothing recognizable here", nil)

	require.Len(t, result.Steps, 3)
	assert.Equal(t, ParsedStep{Step: "Phase 1", Description: "Research & Planning", Duration: "2 weeks"}, result.Steps[0])
	assert.Equal(t, ParsedStep{Step: "Phase 2", Description: "Development & Testing", Duration: "4 weeks"}, result.Steps[1])
	assert.Equal(t, ParsedStep{Step: "Phase 3", Description: "Launch & Iterate", Duration: "2 weeks"}, result.Steps[2])
}

func TestParseRoadmapTextPhaseDetection(t *testing.T) {
	result := ParseRoadmapText("Step 1: Learn basics\nmore detail\nStep 2: Build things", nil)

	require.Len(t, result.Steps, 2)
	assert.Equal(t, "Phase 1", result.Steps[0].Step)
	assert.Equal(t, "Learn basics more detail", result.Steps[0].Description)
	assert.Equal(t, "2-4 weeks", result.Steps[0].Duration)
	assert.Equal(t, "Phase 2", result.Steps[1].Step)
	assert.Equal(t, "Build things", result.Steps[1].Description)
	assert.Equal(t, "4-6 weeks", result.Steps[1].Duration)
}

func TestParseRoadmapTextStripsEnumeration(t *testing.T) {
	result := ParseRoadmapText("1. Phase 1: Foundations", nil)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, "Foundations", result.Steps[0].Description)
}

func TestParseRoadmapTextExtraPhasesFoldIntoDescription(t *testing.T) {
	// Only markers "1" and "2" open steps; a third phase becomes trailing
	// description text on the second step.
	result := ParseRoadmapText("Phase 1: A\nPhase 2: B\nPhase 3: C", nil)

	require.Len(t, result.Steps, 2)
	assert.Contains(t, result.Steps[1].Description, "Phase 3: C")
}

func TestParseRoadmapTextKeepsVideos(t *testing.T) {
	videos := []VideoResource{{Title: "Intro", Link: "https://youtu.be/dQw4w9WgXcQ"}}
	result := ParseRoadmapText("Phase 1: A", videos)

	assert.Equal(t, videos, result.Videos)
}

func TestSynthesizeObjectives(t *testing.T) {
	objectives := SynthesizeObjectives("Go")

	require.Len(t, objectives, 4)
	assert.Equal(t, "Understand the fundamentals of Go", objectives[0])
	assert.Equal(t, "Learn key concepts and best practices", objectives[1])
}

func TestSynthesizeResourcesSlugsTopic(t *testing.T) {
	resources := SynthesizeResources("Basics", "Machine  Learning")

	require.Len(t, resources, 3)
	assert.Equal(t, "https://docs.example.com/machine-learning", resources[0].URL)
	assert.Equal(t, "docs", resources[0].Type)
	assert.Equal(t, "https://tutorials.example.com/machine-learning", resources[1].URL)
	assert.Equal(t, "video", resources[1].Type)
	assert.Equal(t, "https://guides.example.com/machine-learning", resources[2].URL)
	assert.Equal(t, "article", resources[2].Type)
	assert.Equal(t, "Basics - Official Documentation", resources[0].Title)
}

func TestSynthesizeQuizAnswerIndexValid(t *testing.T) {
	quiz := SynthesizeQuiz("Rust")

	assert.Equal(t, "What is the first step in learning Rust?", quiz.Question)
	require.Len(t, quiz.Options, 4)
	assert.GreaterOrEqual(t, quiz.Answer, 0)
	assert.Less(t, quiz.Answer, len(quiz.Options))
	assert.Equal(t, "Understand the fundamentals", quiz.Options[quiz.Answer])
}

func TestFillStepDefaultsNonDestructive(t *testing.T) {
	step := VisualStep{
		Title:              "Basics",
		LearningObjectives: []string{"custom objective"},
	}

	FillStepDefaults(&step, "Go")

	assert.Equal(t, []string{"custom objective"}, step.LearningObjectives)
	require.NotNil(t, step.Quiz)
	assert.Equal(t, 0, step.Quiz.Answer)
	assert.Len(t, step.Resources, 3)
	assert.NotNil(t, step.Tasks)
}
