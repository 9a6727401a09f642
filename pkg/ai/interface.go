package ai

import "context"

// ChatService is the interface for LLM-backed chat replies.
// Implement this interface to add new AI providers (Gemini, Ollama, etc.)
type ChatService interface {
	GenerateReply(ctx context.Context, systemPrompt, message string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
