package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"remedyai/internal/config"
	"remedyai/internal/model"
)

const systemInstruction = "당신은 응급의학 전문 의료 상담 AI입니다."

// AdvisoryService requests a triage recommendation from the chat-completion
// API. Every failure mode - transport error, non-success status, malformed
// envelope, malformed content - resolves to a plain error so the caller can
// substitute the fallback. One call, one outcome, no retries.
type AdvisoryService struct {
	config *config.AIConfig
	client *http.Client
}

// NewAdvisoryService creates a new advisory service
func NewAdvisoryService(cfg *config.AIConfig) *AdvisoryService {
	return &AdvisoryService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Chat-completion wire shapes
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// RequestAdvisory issues a single chat-completion call for the answer triple
func (s *AdvisoryService) RequestAdvisory(ctx context.Context, symptom, duration, severity string) (*model.AdvisoryResult, error) {
	reqBody := chatRequest{
		Model: s.config.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildPrompt(symptom, duration, severity)},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisory API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	content, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}
	return parseAdvisory(content)
}

// buildPrompt embeds the answer triple into the fixed advisory template.
// The template instructs the model to answer with the triage JSON object
// and nothing else.
func buildPrompt(symptom, duration, severity string) string {
	return fmt.Sprintf(`사용자는 '%s' 증상을 '%s' 동안 겪고 있으며,
통증의 정도는 '%s'입니다.

아래 JSON 형식으로만 응답하세요.
응급 상황에서 즉시 판단 가능해야 하며 문장은 짧아야 합니다.

{
  "level": "응급 | 주의 | 안정",
  "summary": "한 문장 요약",
  "action": [
    "지금 즉시 해야 할 행동 1",
    "지금 즉시 해야 할 행동 2"
  ],
  "warning": "절대 하면 안 되는 행동",
  "call": true | false
}`, symptom, duration, severity)
}

// parseEnvelope extracts the first choice's message content from the
// chat-completion envelope
func parseEnvelope(body []byte) (string, error) {
	var envelope chatResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("malformed response envelope: %w", err)
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from advisory API")
	}
	return envelope.Choices[0].Message.Content, nil
}

// parseAdvisory parses the nested content string into the triage result.
// A result missing its level or action list counts as malformed - the
// result is all-or-nothing.
func parseAdvisory(content string) (*model.AdvisoryResult, error) {
	var result model.AdvisoryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("malformed advisory content: %w", err)
	}
	if result.Level == "" || len(result.Action) == 0 {
		return nil, fmt.Errorf("incomplete advisory content")
	}
	return &result, nil
}
