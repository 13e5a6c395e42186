package assistant

// Supported transport providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default model names per provider, used when no model is configured.
const (
	defaultGeminiModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

// NewFactory selects the transport factory for the configured provider.
// Unknown providers fall back to Gemini, the primary backend.
func NewFactory(provider, model, geminiKey, openaiKey, openaiBaseURL string) Factory {
	switch provider {
	case ProviderOpenAI:
		if model == "" {
			model = defaultOpenAIModel
		}
		return NewOpenAIFactory(openaiKey, openaiBaseURL, model)
	default:
		if model == "" {
			model = defaultGeminiModel
		}
		return NewGeminiFactory(geminiKey, model)
	}
}
