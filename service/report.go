package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SystemPrompt is the fixed role of the model
const SystemPrompt = "You are a job listing analyzer AI. You extract information from job listings, filter them down, and summarize your findings."

// Completer is the chat completion api
type Completer interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator turns a link collection into a report
type Generator struct {
	client Completer
	model  string
	prompt string
}

// NewGenerator creates a generator for model with the prompt prefix
func NewGenerator(client Completer, model, prompt string) *Generator {
	return &Generator{client: client, model: model, prompt: prompt}
}

// BuildPrompt return the user message content
func BuildPrompt(prefix string, links []string) string {
	return prefix + strings.Join(links, ",\n")
}

// Generate asks the model for a report on links and returns the text of the first choice
func (g *Generator) Generate(ctx context.Context, links []string) (string, error) {
	if g.model == "" {
		return "", errors.New("model is not set")
	}
	if g.prompt == "" {
		return "", errors.New("prompt is not set")
	}
	response, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(g.prompt, links)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get completion from '%s': %w", g.model, err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices from '%s'", g.model)
	}
	return response.Choices[0].Message.Content, nil
}
