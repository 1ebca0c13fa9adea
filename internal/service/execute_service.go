package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"edubridge_backend/internal/config"
	"edubridge_backend/internal/util"
)

// ExecuteService runs practice-lab code through a Piston sandbox.
type ExecuteService struct {
	config config.PistonConfig
	client *http.Client
}

// executeTimeout is the watchdog around one sandbox run.
const executeTimeout = 5 * time.Second

type pistonLanguage struct {
	Language string
	Version  string
	FileName string
}

var supportedLanguages = map[string]pistonLanguage{
	"python":     {Language: "python", Version: "3.10.0", FileName: "main.py"},
	"javascript": {Language: "javascript", Version: "18.15.0", FileName: "main.js"},
	"cpp":        {Language: "c++", Version: "10.2.0", FileName: "main.cpp"},
	"java":       {Language: "java", Version: "15.0.2", FileName: "Main.java"},
}

func NewExecuteService(cfg config.PistonConfig) *ExecuteService {
	return &ExecuteService{
		config: cfg,
		client: &http.Client{Timeout: executeTimeout},
	}
}

type pistonRequest struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Files    []pistonFile `json:"files"`
}

type pistonFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type pistonResponse struct {
	Run *struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
	} `json:"run"`
	Compile *struct {
		Output string `json:"output"`
	} `json:"compile"`
}

// ExecutionResult is the outcome of one sandbox run. Error carries stderr
// or compiler output; a clean run with no stdout reports "(No output)".
type ExecutionResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}

// SupportedLanguages lists the accepted language identifiers.
func SupportedLanguages() []string {
	return []string{"python", "javascript", "cpp", "java"}
}

// Run executes code in the sandbox under a 5 second watchdog.
func (s *ExecuteService) Run(ctx context.Context, language, code string) (*ExecutionResult, error) {
	lang, ok := supportedLanguages[language]
	if !ok {
		return nil, util.ErrUnsupportedLanguage
	}

	ctx, cancel := context.WithTimeout(ctx, executeTimeout)
	defer cancel()

	body, err := json.Marshal(pistonRequest{
		Language: lang.Language,
		Version:  lang.Version,
		Files:    []pistonFile{{Name: lang.FileName, Content: code}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/execute", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &ExecutionResult{Success: false, Error: "Execution timed out after 5 seconds"}, nil
		}
		if strings.Contains(err.Error(), "connection refused") {
			return nil, util.ErrUpstreamUnavailable
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sandbox returned HTTP %d", resp.StatusCode)
	}

	var result pistonResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Run == nil {
		return nil, fmt.Errorf("execution failed - no output received")
	}

	stdout := result.Run.Stdout
	stderr := result.Run.Stderr
	compileOutput := ""
	if result.Compile != nil {
		compileOutput = result.Compile.Output
	}

	if stderr != "" || compileOutput != "" {
		errText := stderr
		if errText == "" {
			errText = compileOutput
		}
		return &ExecutionResult{Success: false, Output: stdout, Error: errText}, nil
	}

	if stdout == "" {
		stdout = "(No output)"
	}
	return &ExecutionResult{Success: true, Output: stdout}, nil
}
