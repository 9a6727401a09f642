package ai

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

// OllamaService implements ChatService using an Ollama local LLM
type OllamaService struct {
	baseURL string
	model   string
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{
		baseURL: baseURL,
		model:   model,
	}
}

func (o *OllamaService) GenerateReply(ctx context.Context, systemPrompt, message string) (string, error) {
	url := o.baseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.model,
		"system": systemPrompt,
		"prompt": message,
		"stream": false,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API error: %s", string(respBody))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	reply := strings.TrimSpace(result.Response)
	if reply == "" {
		return "", fmt.Errorf("no reply returned")
	}
	return reply, nil
}
