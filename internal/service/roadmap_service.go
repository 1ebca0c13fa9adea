package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const roadmapSystemPrompt = "You are an expert career and business roadmap generator. " +
	"Create a detailed, step-by-step roadmap for the user's goal. " +
	"Include: 1. A clear title, 2. Brief overview, 3. 3-4 phases with titles and descriptions, " +
	"4. Duration for each phase, 5. Key tasks, 6. Helpful tips. " +
	"Be specific, actionable, and encouraging. Use current best practices for 2025."

const visualRoadmapPrompt = "You are a learning path designer. Respond ONLY with a JSON array of " +
	"3-6 steps for learning the given topic. Each step is an object with \"title\", \"description\", " +
	"and optionally \"tasks\", \"learningObjectives\", \"resources\", \"quiz\"."

// RoadmapService generates learning roadmaps: a plain-text variant parsed
// into phases, and a structured visual variant decoded from model JSON.
type RoadmapService struct {
	ai      *AIService
	youtube *YouTubeService
	chats   *repository.ChatRepository
	rdb     *redis.Client
}

func NewRoadmapService(ai *AIService, yt *YouTubeService, chats *repository.ChatRepository, rdb *redis.Client) *RoadmapService {
	return &RoadmapService{ai: ai, youtube: yt, chats: chats, rdb: rdb}
}

// RoadmapResult is the text-roadmap envelope: raw model text, the parsed
// phase sequence, and related videos.
type RoadmapResult struct {
	Roadmap string          `json:"roadmap"`
	Steps   []ParsedStep    `json:"steps"`
	Videos  []VideoResource `json:"videos"`
}

// VisualRoadmapResult carries the structured steps plus a generated cover
// illustration link.
type VisualRoadmapResult struct {
	Topic        string       `json:"topic"`
	Steps        []VisualStep `json:"steps"`
	Illustration string       `json:"illustration"`
}

func roadmapSeqKey(userID uint) string {
	return fmt.Sprintf("roadmap:seq:%d", userID)
}

func roadmapLatestKey(userID uint) string {
	return fmt.Sprintf("roadmap:latest:%d", userID)
}

// latestTTL keeps the cached roadmap around for a week.
const latestTTL = 7 * 24 * time.Hour

// beginGeneration bumps the user's generation counter. The value identifies
// this request; a later request bumps past it, marking this one stale.
func (s *RoadmapService) beginGeneration(ctx context.Context, userID uint) int64 {
	seq, err := s.rdb.Incr(ctx, roadmapSeqKey(userID)).Result()
	if err != nil {
		logger.Log.Warn("roadmap sequence incr failed", zap.Error(err))
		return 0
	}
	return seq
}

// checkCurrent rejects responses that were overtaken by a newer request, so
// a slow generation cannot overwrite a faster, newer one.
func (s *RoadmapService) checkCurrent(ctx context.Context, userID uint, seq int64) error {
	if seq == 0 {
		return nil
	}
	current, err := s.rdb.Get(ctx, roadmapSeqKey(userID)).Int64()
	if err != nil {
		return nil
	}
	if current != seq {
		return util.ErrStaleGeneration
	}
	return nil
}

// Generate produces a text roadmap for a goal, attaches tutorial videos and
// records both sides of the exchange in the chat transcript.
func (s *RoadmapService) Generate(ctx context.Context, userID uint, message string) (*RoadmapResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, util.ErrEmptyTopic
	}

	seq := s.beginGeneration(ctx, userID)

	s.saveTranscript(userID, "user", message, model.AgentRoadmap)

	messages := BuildMessages(roadmapSystemPrompt, nil, "Create a roadmap for: "+message)
	content, err := s.ai.Chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	videos := s.youtube.SearchTutorials(ctx, message)

	if err := s.checkCurrent(ctx, userID, seq); err != nil {
		return nil, err
	}

	parsed := ParseRoadmapText(content, videos)
	s.saveTranscript(userID, "assistant", content, model.AgentRoadmap)

	result := &RoadmapResult{
		Roadmap: content,
		Steps:   parsed.Steps,
		Videos:  parsed.Videos,
	}
	s.cacheLatest(ctx, userID, result)
	return result, nil
}

// cacheLatest stores the newest roadmap so clients can re-fetch it without
// another generation. Failures are logged and ignored.
func (s *RoadmapService) cacheLatest(ctx context.Context, userID uint, result *RoadmapResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, roadmapLatestKey(userID), payload, latestTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache latest roadmap", zap.Error(err))
	}
}

// Latest returns the cached most recent roadmap, or ErrNoRoadmap when the
// user has not generated one (or the cache expired).
func (s *RoadmapService) Latest(ctx context.Context, userID uint) (*RoadmapResult, error) {
	payload, err := s.rdb.Get(ctx, roadmapLatestKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, util.ErrNoRoadmap
	}
	if err != nil {
		return nil, err
	}
	var result RoadmapResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateVisual asks the model for JSON steps and tolerates the usual
// deviations: fenced code blocks, a wrapping object, or plain prose. When
// nothing structured can be recovered the text parser's defaults apply.
func (s *RoadmapService) GenerateVisual(ctx context.Context, userID uint, topic string) (*VisualRoadmapResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, util.ErrEmptyTopic
	}

	seq := s.beginGeneration(ctx, userID)

	messages := BuildMessages(visualRoadmapPrompt, nil, "Create a learning roadmap for: "+topic)
	content, err := s.ai.Chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	if err := s.checkCurrent(ctx, userID, seq); err != nil {
		return nil, err
	}

	steps := decodeVisualSteps(content)
	if len(steps) == 0 {
		for _, p := range ParseRoadmapText(content, nil).Steps {
			steps = append(steps, VisualStep{Title: p.Step, Description: p.Description})
		}
	}
	for i := range steps {
		FillStepDefaults(&steps[i], topic)
	}

	return &VisualRoadmapResult{
		Topic:        topic,
		Steps:        steps,
		Illustration: IllustrationURL(topic),
	}, nil
}

// IllustrationURL builds a prompt-driven image link for a roadmap cover.
func IllustrationURL(topic string) string {
	prompt := url.QueryEscape("learning roadmap illustration for " + topic)
	return "https://image.pollinations.ai/prompt/" + prompt + "?width=1024&height=1024&nologo=true"
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// decodeVisualSteps recovers a step array from model output. Accepted
// shapes: a bare array, an object with a "steps" or "roadmap" key, or an
// object whose first array-valued key holds the steps.
func decodeVisualSteps(content string) []VisualStep {
	text := strings.TrimSpace(content)
	if m := codeFence.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	var steps []VisualStep
	if err := json.Unmarshal([]byte(text), &steps); err == nil {
		return steps
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
		return nil
	}

	for _, key := range []string{"steps", "roadmap"} {
		if raw, ok := wrapper[key]; ok {
			if err := json.Unmarshal(raw, &steps); err == nil {
				return steps
			}
		}
	}
	for _, raw := range wrapper {
		if err := json.Unmarshal(raw, &steps); err == nil && len(steps) > 0 {
			return steps
		}
	}
	return nil
}

func (s *RoadmapService) saveTranscript(userID uint, role, message string, agent model.AgentType) {
	msg := &model.ChatMessage{UserID: userID, Role: role, Message: message, AgentType: agent}
	if err := s.chats.Save(msg); err != nil {
		logger.Log.Warn("failed to save chat transcript", zap.Error(err))
	}
}
