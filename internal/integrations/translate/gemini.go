package translate

import (
	"context"
	"net/http"

	"github.com/vlatan/video-fetch/internal/config"
	"google.golang.org/genai"
)

// The subset of genai.Models used for translation
type generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Create a Gemini backed completion
func newGemini(ctx context.Context, cfg *config.Config, client *http.Client) (completeFunc, error) {
	gemini, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: client,
	})

	if err != nil {
		return nil, err
	}

	return geminiComplete(gemini.Models, cfg.GeminiModel), nil
}

// geminiComplete generates content with the instruction as a system instruction
func geminiComplete(models generator, model string) completeFunc {
	return func(ctx context.Context, system, user string) (string, error) {

		result, err := models.GenerateContent(
			ctx,
			model,
			[]*genai.Content{genai.NewContentFromText(user, genai.RoleUser)},
			&genai.GenerateContentConfig{
				SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
				Temperature:       genai.Ptr[float32](temperature),
				MaxOutputTokens:   maxTokens,
			},
		)

		if err != nil {
			return "", err
		}

		text := result.Text()
		if text == "" {
			return "", &BlockedErr{Feedback: result.PromptFeedback}
		}

		return text, nil
	}
}
