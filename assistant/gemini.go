package assistant

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

type geminiTransport struct {
	chat *genai.Chat
}

// NewGeminiFactory returns a Factory backed by the Gemini chats API. The chat
// session carries the conversation history server-side.
func NewGeminiFactory(apiKey, model string) Factory {
	return func(ctx context.Context) (Transport, error) {
		if apiKey == "" {
			return nil, errors.New("GEMINI_API_KEY is not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, err
		}
		chat, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		}, nil)
		if err != nil {
			return nil, err
		}
		return &geminiTransport{chat: chat}, nil
	}
}

func (g *geminiTransport) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
