package service

import (
	"regexp"
	"strings"

	"edubridge_backend/internal/util"
)

// ParsedStep is one stage of a plain-text learning path.
type ParsedStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// ParsedRoadmap is the envelope returned by the text parser; videos ride
// alongside the steps rather than being distributed per step.
type ParsedRoadmap struct {
	Steps  []ParsedStep    `json:"steps"`
	Videos []VideoResource `json:"videos"`
}

// LearningResource is a templated external link attached to a visual step.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// QuizQuestion is a single multiple-choice check with the correct option
// index. Answer is always a valid index into Options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// VisualStep is one milestone of the structured roadmap. Optional fields
// left empty by the model are filled in by the synthesizer.
type VisualStep struct {
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Tasks              []string           `json:"tasks"`
	LearningObjectives []string           `json:"learningObjectives"`
	Resources          []LearningResource `json:"resources"`
	Quiz               *QuizQuestion      `json:"quiz,omitempty"`
}

var (
	leadingEnumeration = regexp.MustCompile(`^[\d.)\-]*`)
	leadingMarker      = regexp.MustCompile(`(?i)^(?:phase|step|stage)\s*\d+\s*[:.\-]?\s*`)
)

func phaseMarker(lowerLine string, n string) bool {
	return strings.Contains(lowerLine, "phase "+n) ||
		strings.Contains(lowerLine, "step "+n) ||
		strings.Contains(lowerLine, "stage "+n)
}

// cleanTriggerLine drops leading enumeration characters and the phase
// marker itself, leaving the actual content of the trigger line.
func cleanTriggerLine(line string) string {
	cleaned := leadingEnumeration.ReplaceAllString(strings.TrimSpace(line), "")
	cleaned = leadingMarker.ReplaceAllString(strings.TrimSpace(cleaned), "")
	return strings.TrimSpace(cleaned)
}

// ParseRoadmapText turns free model text into an ordered step sequence. It
// is a best-effort heuristic, not a grammar: only "phase 1"/"step 1"/
// "stage 1" and the "2" forms open a new step; further numbered phases get
// folded into the running description. The result is never empty: when no
// marker is found at all, a fixed 3-phase default is returned.
func ParseRoadmapText(text string, videos []VideoResource) ParsedRoadmap {
	steps := []ParsedStep{}
	var current *ParsedStep

	for _, line := range strings.Split(text, "\n") {
		lowerLine := strings.ToLower(line)
		switch {
		case phaseMarker(lowerLine, "1"):
			if current != nil {
				steps = append(steps, *current)
			}
			current = &ParsedStep{Step: "Phase 1", Description: cleanTriggerLine(line), Duration: "2-4 weeks"}
		case phaseMarker(lowerLine, "2"):
			if current != nil {
				steps = append(steps, *current)
			}
			current = &ParsedStep{Step: "Phase 2", Description: cleanTriggerLine(line), Duration: "4-6 weeks"}
		case current != nil && strings.TrimSpace(line) != "":
			current.Description += " " + strings.TrimSpace(line)
		}
	}
	if current != nil {
		steps = append(steps, *current)
	}

	if len(steps) == 0 {
		steps = []ParsedStep{
			{Step: "Phase 1", Description: "Research & Planning", Duration: "2 weeks"},
			{Step: "Phase 2", Description: "Development & Testing", Duration: "4 weeks"},
			{Step: "Phase 3", Description: "Launch & Iterate", Duration: "2 weeks"},
		}
	}

	return ParsedRoadmap{Steps: steps, Videos: append([]VideoResource{}, videos...)}
}

// SynthesizeObjectives returns the fixed four-objective template for a step.
func SynthesizeObjectives(title string) []string {
	return []string{
		"Understand the fundamentals of " + title,
		"Learn key concepts and best practices",
		"Build practical skills through exercises",
		"Apply knowledge to real-world scenarios",
	}
}

// SynthesizeResources builds three placeholder links from the topic slug.
// The URLs are rendered as-is, never fetched or validated.
func SynthesizeResources(title, topic string) []LearningResource {
	slug := util.Slugify(topic)
	return []LearningResource{
		{Title: title + " - Official Documentation", URL: "https://docs.example.com/" + slug, Type: "docs"},
		{Title: "Interactive " + title + " Tutorial", URL: "https://tutorials.example.com/" + slug, Type: "video"},
		{Title: title + " Best Practices Guide", URL: "https://guides.example.com/" + slug, Type: "article"},
	}
}

// SynthesizeQuiz returns the fixed single-question template; the correct
// option is always index 0.
func SynthesizeQuiz(title string) *QuizQuestion {
	return &QuizQuestion{
		Question: "What is the first step in learning " + title + "?",
		Options: []string{
			"Understand the fundamentals",
			"Skip to advanced topics",
			"Start with a complex project",
			"Skip practice exercises",
		},
		Answer: 0,
	}
}

// FillStepDefaults populates only the optional fields the model omitted.
// Present values are never overwritten, so partial model output survives.
func FillStepDefaults(step *VisualStep, topic string) {
	if step.Tasks == nil {
		step.Tasks = []string{}
	}
	if len(step.LearningObjectives) == 0 {
		step.LearningObjectives = SynthesizeObjectives(step.Title)
	}
	if len(step.Resources) == 0 {
		step.Resources = SynthesizeResources(step.Title, topic)
	}
	if step.Quiz == nil {
		step.Quiz = SynthesizeQuiz(step.Title)
	}
}
