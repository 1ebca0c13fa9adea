package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/util"

	"github.com/cenkalti/backoff/v4"
)

// AIService talks to an OpenAI-compatible chat/completions endpoint. Quota
// errors (429 / RESOURCE_EXHAUSTED) are retried with capped exponential
// backoff instead of looping forever.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
	Stream   bool            `json:"stream,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // streaming chunks
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type quotaError struct {
	status int
	body   string
}

func (e *quotaError) Error() string {
	return fmt.Sprintf("AI quota exceeded (status %d): %s", e.status, e.body)
}

func isQuotaError(status int, body string) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "quota") || strings.Contains(body, "RESOURCE_EXHAUSTED")
}

// BuildMessages assembles the role-tagged list: system prompt, prior turns,
// then the current user message.
func BuildMessages(system string, history []AIChatMessage, prompt string) []AIChatMessage {
	messages := make([]AIChatMessage, 0, len(history)+2)
	if system != "" {
		messages = append(messages, AIChatMessage{Role: "system", Content: system})
	}
	messages = append(messages, history...)
	messages = append(messages, AIChatMessage{Role: "user", Content: prompt})
	return messages
}

func (s *AIService) doRequest(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	return s.client.Do(req)
}

// Chat sends a blocking completion request and returns the answer text.
func (s *AIService) Chat(ctx context.Context, messages []AIChatMessage) (string, error) {
	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var answer string
	operation := func() error {
		resp, err := s.doRequest(ctx, jsonData)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			if isQuotaError(resp.StatusCode, string(body)) {
				return &quotaError{status: resp.StatusCode, body: string(body)}
			}
			return backoff.Permanent(fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body)))
		}

		var result ChatCompletionResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return backoff.Permanent(err)
		}
		if result.Error != nil {
			if isQuotaError(resp.StatusCode, result.Error.Message) {
				return &quotaError{status: resp.StatusCode, body: result.Error.Message}
			}
			return backoff.Permanent(fmt.Errorf("AI API error: %s", result.Error.Message))
		}
		if len(result.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("AI returned no choices"))
		}

		answer = result.Choices[0].Message.Content
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.config.MaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if _, ok := err.(*quotaError); ok {
			return "", util.ErrQuotaExceeded
		}
		return "", err
	}
	return answer, nil
}

// ChatStream sends a streaming request and emits content chunks on the
// returned channel. The error channel carries at most one error.
func (s *AIService) ChatStream(ctx context.Context, messages []AIChatMessage) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
		Stream:   true,
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		resp, err := s.doRequest(ctx, jsonData)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			if isQuotaError(resp.StatusCode, string(body)) {
				errChan <- util.ErrQuotaExceeded
				return
			}
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}
