package translate

import (
	"context"
	"net/http"

	"github.com/anatolykoptev/go-kit/llm"
	"github.com/vlatan/video-fetch/internal/config"
)

// Chat completion against an OpenAI compatible endpoint with bearer auth
func newOpenAI(cfg *config.Config, client *http.Client) completeFunc {

	openai := llm.NewClient(
		cfg.OpenAIBaseURL,
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		llm.WithHTTPClient(client),
	)

	return func(ctx context.Context, system, user string) (string, error) {
		return openai.Complete(ctx, system, user,
			llm.WithChatTemperature(temperature),
			llm.WithChatMaxTokens(maxTokens),
		)
	}
}
