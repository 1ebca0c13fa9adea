package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPistonStub(t *testing.T, handler http.HandlerFunc) *ExecuteService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewExecuteService(config.PistonConfig{BaseURL: srv.URL})
}

func TestExecuteRunSuccess(t *testing.T) {
	var captured pistonRequest
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/execute", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]string{"stdout": "hello\n", "stderr": ""},
		})
	})

	result, err := svc.Run(context.Background(), "python", "print('hello')")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "hello\n", result.Output)
	assert.Empty(t, result.Error)

	assert.Equal(t, "python", captured.Language)
	assert.Equal(t, "3.10.0", captured.Version)
	require.Len(t, captured.Files, 1)
	assert.Equal(t, "main.py", captured.Files[0].Name)
}

func TestExecuteRunCppLanguageMapping(t *testing.T) {
	var captured pistonRequest
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{"run": map[string]string{"stdout": "ok"}})
	})

	_, err := svc.Run(context.Background(), "cpp", "int main(){}")
	require.NoError(t, err)

	assert.Equal(t, "c++", captured.Language)
	assert.Equal(t, "main.cpp", captured.Files[0].Name)
}

func TestExecuteRunStderrBecomesError(t *testing.T) {
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]string{"stdout": "partial", "stderr": "Traceback: boom"},
		})
	})

	result, err := svc.Run(context.Background(), "python", "boom()")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "partial", result.Output)
	assert.Equal(t, "Traceback: boom", result.Error)
}

func TestExecuteRunCompileOutputBecomesError(t *testing.T) {
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"run":     map[string]string{"stdout": ""},
			"compile": map[string]string{"output": "error: expected ';'"},
		})
	})

	result, err := svc.Run(context.Background(), "cpp", "int main(){")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "error: expected ';'", result.Error)
}

func TestExecuteRunEmptyStdoutPlaceholder(t *testing.T) {
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"run": map[string]string{}})
	})

	result, err := svc.Run(context.Background(), "python", "x = 1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "(No output)", result.Output)
}

func TestExecuteRunMissingRunBlock(t *testing.T) {
	svc := newPistonStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := svc.Run(context.Background(), "python", "x = 1")
	assert.ErrorContains(t, err, "no output received")
}

func TestExecuteRunUnsupportedLanguage(t *testing.T) {
	svc := NewExecuteService(config.PistonConfig{BaseURL: "http://localhost:0"})

	_, err := svc.Run(context.Background(), "cobol", "DISPLAY 'HI'.")
	assert.ErrorIs(t, err, util.ErrUnsupportedLanguage)
}

func TestSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"python", "javascript", "cpp", "java"}, SupportedLanguages())
}
