package config

import "os"

// AIConfig holds all advisory-model configuration
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	ChatModel string `json:"chatModel"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default advisory configuration. The chat
// model needs to answer fast and follow a strict JSON shape; the timeout
// bounds the whole call so the caller can always fall back.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		BaseURL:   getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ChatModel: getEnvOrDefault("OPENAI_CHAT_MODEL", "gpt-4.1-mini"),
		TimeoutMS: 30000, // 30 second connect/read/write bound
	}
}

// IsEnabled returns true if the advisory API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the full chat-completions endpoint
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}
