package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LLMConfig configures an LLMClient.
type LLMConfig struct {
	URL         string // OpenAI-compatible base URL, e.g. "https://generativelanguage.googleapis.com/v1beta/openai"
	Model       string // e.g. "gemini-2.0-flash"
	APIKey      string
	Temperature float64
}

// LLMClient judges answers by calling an OpenAI-compatible chat completions
// endpoint (Gemini, OpenAI, Ollama, LM Studio, ...).
type LLMClient struct {
	cfg    LLMConfig
	client *http.Client // reused across calls
}

// Compile-time check: *LLMClient satisfies the Client interface.
var _ Client = (*LLMClient)(nil)

// NewLLMClient creates a client for the given endpoint. The HTTP timeout is a
// backstop; the Analyzer applies the per-call deadline.
func NewLLMClient(cfg LLMConfig) *LLMClient {
	return &LLMClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Client interface
// ============================================================================

// Evaluate sends one judging request. The reply must contain a JSON object
// that passes the verdict schema; anything else is a failed Result.
func (c *LLMClient) Evaluate(ctx context.Context, questionText, studentAnswer, correctAnswer string) Result {
	if c.cfg.APIKey == "" {
		return Result{Err: &AnalysisError{Kind: ErrMissingCredential, Reason: "no API key"}}
	}

	content, err := c.callLLM(ctx, buildAnalysisPrompt(questionText, studentAnswer, correctAnswer))
	if err != nil {
		return Result{Err: err}
	}

	verdict, err := parseVerdict(content)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Verdict: verdict}
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model          string          `json:"model"`
	Messages       []llmMessage    `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

type jsonSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (c *LLMClient) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: c.cfg.Model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		ResponseFormat: &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchema{
				Name:   "answer_analysis",
				Strict: true,
				Schema: json.RawMessage(verdictSchema),
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &AnalysisError{Kind: ErrServiceUnavailable, Reason: "failed to marshal request", Wrapped: err}
	}

	endpoint := strings.TrimRight(c.cfg.URL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &AnalysisError{Kind: ErrServiceUnavailable, Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &AnalysisError{Kind: ErrServiceUnavailable, Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AnalysisError{Kind: ErrServiceUnavailable, Reason: "failed to read response", Wrapped: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &AnalysisError{
			Kind:   ErrServiceUnavailable,
			Reason: fmt.Sprintf("LLM returned status %d", resp.StatusCode),
		}
	}

	var llmResp llmResponse
	if err := json.Unmarshal(body, &llmResp); err != nil {
		return "", &AnalysisError{Kind: ErrMalformedResponse, Reason: "failed to decode LLM response", Wrapped: err}
	}

	if llmResp.Error != nil {
		return "", &AnalysisError{Kind: ErrServiceUnavailable, Reason: "LLM API error: " + llmResp.Error.Message}
	}

	if len(llmResp.Choices) == 0 {
		return "", &AnalysisError{Kind: ErrMalformedResponse, Reason: "LLM returned no choices"}
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", &AnalysisError{Kind: ErrMalformedResponse, Reason: "LLM returned empty content"}
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string. Markdown fences
// and surrounding prose are skipped; braces inside quoted strings are ignored.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompt
// ============================================================================

func buildAnalysisPrompt(questionText, studentAnswer, correctAnswer string) string {
	return fmt.Sprintf(`Analyze this SAT Math question and the student's answer.

QUESTION:
%s

STUDENT'S ANSWER:
%s

CORRECT ANSWER:
%s

Decide whether the student's answer is correct, explain the reasoning step by step,
and give specific tips for improvement if the answer is wrong.

Respond with ONLY this JSON, no markdown:
{"is_correct": true or false, "explanation": "detailed explanation", "improvement_tips": "specific tips for improvement if wrong"}`,
		questionText, studentAnswer, correctAnswer)
}
