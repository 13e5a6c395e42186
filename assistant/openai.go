package assistant

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

type openAITransport struct {
	client  *openai.Client
	model   string
	history []openai.ChatCompletionMessage
}

// NewOpenAIFactory returns a Factory for OpenAI-compatible endpoints. The chat
// completions API is stateless, so the transport keeps the turn history in
// memory and replays it on every call.
func NewOpenAIFactory(apiKey, baseURL, model string) Factory {
	return func(ctx context.Context) (Transport, error) {
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		return &openAITransport{
			client: openai.NewClientWithConfig(cfg),
			model:  model,
			history: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			},
		}, nil
	}
}

func (o *openAITransport) Generate(ctx context.Context, prompt string) (string, error) {
	o.history = append(o.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: o.history,
	})
	if err != nil {
		// Drop the unanswered turn so a retry does not replay it twice.
		o.history = o.history[:len(o.history)-1]
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	text := resp.Choices[0].Message.Content
	o.history = append(o.history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: text,
	})
	return text, nil
}
