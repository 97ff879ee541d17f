package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// OpenAIClient implements TextGenerator against an OpenAI-compatible
// chat-completions endpoint. Generation can take a while, so its timeout
// is far longer than the routing adapters'.
type OpenAIClient struct {
	session *http.Client
	apiKey  string
	baseURL string
	model   string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai client: api key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		session: &http.Client{Timeout: 120 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openai.com",
		model:   model,
	}, nil
}

// WithBaseURL points the client at a different endpoint. For tests.
func (c *OpenAIClient) WithBaseURL(baseURL string) *OpenAIClient {
	c.baseURL = baseURL
	return c
}

func (c *OpenAIClient) Complete(
	ctx context.Context,
	prompt string,
	params ports.SamplingParams,
) (_ string, err error) {
	defer obs.Time(ctx, "textgen.Complete")(&err)

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("complete: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("complete: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("complete: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("complete: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("complete: response holds no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
