package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://openrouter.ai/api/v1/chat/completions"

type OpenRouterClient struct {
	apiKey string
	model  string
	apiURL string
}

func NewOpenRouterClient() *OpenRouterClient {
	apiURL := os.Getenv("OPENROUTER_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &OpenRouterClient{
		apiKey: os.Getenv("OPENROUTER_API_KEY"),
		model:  os.Getenv("OPENROUTER_MODEL"),
		apiURL: apiURL,
	}
}

// Complete sends a system + user prompt pair to the chat-completions
// endpoint and returns the raw text of the first choice.
func (o *OpenRouterClient) Complete(
	ctx context.Context,
	systemPrompt string,
	userPrompt string,
) (string, error) {

	if o.apiKey == "" {
		return "", errors.New("missing OPENROUTER_API_KEY")
	}
	if o.model == "" {
		return "", errors.New("missing OPENROUTER_MODEL")
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": 0.3,
		"max_tokens":  4000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("X-Title", "MenuDecoder")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter error %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", errors.New("empty openrouter response")
	}

	return result.Choices[0].Message.Content, nil
}
