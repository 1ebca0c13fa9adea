package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIStub(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAIService(config.AIConfig{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Model:      "test-model",
		MaxRetries: 2,
	})
}

func chatReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
}

func TestBuildMessages(t *testing.T) {
	history := []AIChatMessage{
		{Role: "user", Content: "earlier"},
		{Role: "assistant", Content: "reply"},
	}

	messages := BuildMessages("be helpful", history, "now")

	require.Len(t, messages, 4)
	assert.Equal(t, AIChatMessage{Role: "system", Content: "be helpful"}, messages[0])
	assert.Equal(t, AIChatMessage{Role: "user", Content: "now"}, messages[3])
}

func TestBuildMessagesNoSystem(t *testing.T) {
	messages := BuildMessages("", nil, "hi")

	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
}

func TestChatSuccess(t *testing.T) {
	var attempts int32
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(chatReply("hello there"))
	})

	answer, err := svc.Chat(context.Background(), BuildMessages("", nil, "hi"))
	require.NoError(t, err)
	assert.Equal(t, "hello there", answer)
	assert.Equal(t, int32(1), attempts)
}

func TestChatRetriesQuotaErrorThenSucceeds(t *testing.T) {
	var attempts int32
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
			return
		}
		json.NewEncoder(w).Encode(chatReply("recovered"))
	})

	answer, err := svc.Chat(context.Background(), BuildMessages("", nil, "hi"))
	require.NoError(t, err)
	assert.Equal(t, "recovered", answer)
	assert.Equal(t, int32(2), attempts)
}

func TestChatQuotaExhaustionIsBounded(t *testing.T) {
	var attempts int32
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := svc.Chat(context.Background(), BuildMessages("", nil, "hi"))
	assert.ErrorIs(t, err, util.ErrQuotaExceeded)
	// Initial attempt plus MaxRetries, never more.
	assert.Equal(t, int32(3), attempts)
}

func TestChatServerErrorIsNotRetried(t *testing.T) {
	var attempts int32
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream broken")
	})

	_, err := svc.Chat(context.Background(), BuildMessages("", nil, "hi"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, util.ErrQuotaExceeded)
	assert.Equal(t, int32(1), attempts)
}

func TestChatStreamDeliversChunks(t *testing.T) {
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hel\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	out, errChan := svc.ChatStream(context.Background(), BuildMessages("", nil, "hi"))

	var got string
	for chunk := range out {
		got += chunk
	}
	assert.Equal(t, "Hello", got)
	assert.NoError(t, <-errChan)
}

func TestChatStreamQuotaError(t *testing.T) {
	svc := newAIStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "quota exceeded")
	})

	out, errChan := svc.ChatStream(context.Background(), BuildMessages("", nil, "hi"))

	for range out {
	}
	assert.ErrorIs(t, <-errChan, util.ErrQuotaExceeded)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(429, ""))
	assert.True(t, isQuotaError(403, "You exceeded your current quota"))
	assert.True(t, isQuotaError(500, "RESOURCE_EXHAUSTED"))
	assert.False(t, isQuotaError(500, "internal error"))
}
