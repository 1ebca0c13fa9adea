package service

import (
	"context"
	"strings"

	"edubridge_backend/internal/model"
	"edubridge_backend/internal/repository"
	"edubridge_backend/internal/util"
	"edubridge_backend/pkg/logger"
	"edubridge_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const cofounderSystemPrompt = "You are an expert strategic co-founder. " +
	"If the user greets without a specific idea, respond warmly and ask what startup " +
	"or project they are thinking about. " +
	"If they provide a goal, give a clear step-by-step roadmap to launch it."

const mentorSystemPrompt = "You are a wise and supportive Interview Mentor. " +
	"Help the user practice for job interviews. " +
	"Ask about their background, skills, and target job. " +
	"Give structured feedback. " +
	"Keep responses clear, practical, and concise."

const supportSystemPrompt = "You are a helpful and professional Customer Support Assistant. " +
	"Provide clear, concise, and accurate information."

// supportFallbackReply is returned when the support model is unreachable.
const supportFallbackReply = "AI Support is taking a nap. Please try again later!"

// ChatService runs the conversational agents and keeps their transcripts.
type ChatService struct {
	ai      *AIService
	youtube *YouTubeService
	chats   *repository.ChatRepository
}

func NewChatService(ai *AIService, yt *YouTubeService, chats *repository.ChatRepository) *ChatService {
	return &ChatService{ai: ai, youtube: yt, chats: chats}
}

// isGreeting mirrors the cofounder short-circuit: bare greetings and very
// short messages skip the video lookup entirely.
func isGreeting(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "hi" || msg == "hello" || msg == "hey" {
		return true
	}
	return len(strings.Fields(msg)) <= 2
}

func looksLikeRoadmap(response string) bool {
	lower := strings.ToLower(response)
	for _, marker := range []string{"roadmap", "step 1", "strategy", "launch"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Cofounder streams strategic advice chunks. Meaningful requests also get
// tutorial videos appended as a markdown list when the reply reads like a
// roadmap.
func (s *ChatService) Cofounder(ctx context.Context, userID uint, message string) (<-chan string, <-chan error) {
	s.save(userID, "user", message, model.AgentCofounder)

	out := make(chan string)
	errChan := make(chan error, 1)

	var videos []VideoResource
	videoDone := make(chan struct{})
	if !isGreeting(message) {
		go func() {
			defer close(videoDone)
			videos = s.youtube.Search(ctx, message+" business roadmap 2025")
		}()
	} else {
		close(videoDone)
	}

	chunks, aiErr := s.ai.ChatStream(ctx, BuildMessages(cofounderSystemPrompt, nil, message))

	go func() {
		defer close(out)
		defer close(errChan)

		var full strings.Builder
		for chunk := range chunks {
			full.WriteString(chunk)
			out <- chunk
		}
		if err := <-aiErr; err != nil {
			monitoring.AIRequestCounter.WithLabelValues("cofounder", "error").Inc()
			errChan <- err
			return
		}
		monitoring.AIRequestCounter.WithLabelValues("cofounder", "ok").Inc()

		<-videoDone
		if len(videos) > 0 && looksLikeRoadmap(full.String()) {
			var list strings.Builder
			list.WriteString("\n\n### Recommended Tutorials:\n")
			for _, v := range videos {
				list.WriteString("- [" + v.Title + "](" + v.Link + ")\n")
			}
			full.WriteString(list.String())
			out <- list.String()
		}

		s.save(userID, "assistant", full.String(), model.AgentCofounder)
	}()

	return out, errChan
}

// Mentor streams interview coaching chunks with prior turns as context.
func (s *ChatService) Mentor(ctx context.Context, userID uint, message string) (<-chan string, <-chan error) {
	s.save(userID, "user", message, model.AgentMentor)

	history := s.recentHistory(userID, model.AgentMentor, 10)
	chunks, aiErr := s.ai.ChatStream(ctx, BuildMessages(mentorSystemPrompt, history, message))

	out := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errChan)

		var full strings.Builder
		for chunk := range chunks {
			full.WriteString(chunk)
			out <- chunk
		}
		if err := <-aiErr; err != nil {
			monitoring.AIRequestCounter.WithLabelValues("mentor", "error").Inc()
			errChan <- err
			return
		}
		monitoring.AIRequestCounter.WithLabelValues("mentor", "ok").Inc()
		s.save(userID, "assistant", full.String(), model.AgentMentor)
	}()

	return out, errChan
}

// Support answers a question in one shot. Upstream failures degrade to the
// fixed fallback reply instead of an error.
func (s *ChatService) Support(ctx context.Context, userID uint, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", util.ErrEmptyTopic
	}
	s.save(userID, "user", message, model.AgentSupport)

	reply, err := s.ai.Chat(ctx, BuildMessages(supportSystemPrompt, nil, message))
	if err != nil {
		monitoring.AIRequestCounter.WithLabelValues("support", "error").Inc()
		logger.Log.Warn("support agent unavailable", zap.Error(err))
		return supportFallbackReply, nil
	}
	monitoring.AIRequestCounter.WithLabelValues("support", "ok").Inc()

	s.save(userID, "assistant", reply, model.AgentSupport)
	return reply, nil
}

// History returns the newest transcript entries for an agent.
func (s *ChatService) History(userID uint, agent model.AgentType, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.chats.History(userID, agent, limit)
}

// Clear deletes a user's transcript for one agent.
func (s *ChatService) Clear(userID uint, agent model.AgentType) error {
	return s.chats.DeleteByAgent(userID, agent)
}

// recentHistory converts stored transcript rows into chronological chat
// messages for the model.
func (s *ChatService) recentHistory(userID uint, agent model.AgentType, limit int) []AIChatMessage {
	rows, err := s.chats.History(userID, agent, limit)
	if err != nil {
		logger.Log.Warn("failed to load chat history", zap.Error(err))
		return nil
	}
	// rows arrive newest first
	history := make([]AIChatMessage, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		history = append(history, AIChatMessage{Role: rows[i].Role, Content: rows[i].Message})
	}
	return history
}

func (s *ChatService) save(userID uint, role, message string, agent model.AgentType) {
	msg := &model.ChatMessage{UserID: userID, Role: role, Message: message, AgentType: agent}
	if err := s.chats.Save(msg); err != nil {
		logger.Log.Warn("failed to save chat transcript", zap.Error(err))
	}
}
