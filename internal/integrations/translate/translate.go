package translate

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/vlatan/video-fetch/internal/config"
)

const (
	// Only the start of a long transcript is translated
	maxChars = 3000

	temperature = 0.7
	maxTokens   = 2000
)

// Translator translates text, failure yields an empty string
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// completeFunc sends a system instruction and a user message to a model
// and returns the model's text completion
type completeFunc func(ctx context.Context, system, user string) (string, error)

// Translation service
type Service struct {
	language string
	complete completeFunc // nil disables translation
}

// Create new translation service backed by the configured provider
func New(ctx context.Context, cfg *config.Config, client *http.Client) (*Service, error) {

	s := &Service{language: cfg.TranslationLanguage}

	if cfg.TranslationKey() == "" {
		log.Printf("No API key for %q, translation is disabled", cfg.TranslationProvider)
		return s, nil
	}

	switch cfg.TranslationProvider {
	case config.Gemini:
		complete, err := newGemini(ctx, cfg, client)
		if err != nil {
			return nil, err
		}
		s.complete = complete
	default:
		s.complete = newOpenAI(cfg, client)
	}

	return s, nil
}

// Translate translates the start of the text into the target language.
// Empty text is not sent to the model.
func (s *Service) Translate(ctx context.Context, text string) string {

	if text == "" || s.complete == nil {
		return ""
	}

	translated, err := s.complete(ctx, systemPrompt(s.language), truncate(text, maxChars))
	if err != nil {
		log.Printf("Failed to translate the transcript: %v", err)
		return ""
	}

	return translated
}

// The fixed instruction given to the model
func systemPrompt(language string) string {
	return fmt.Sprintf(
		"You are a translator. Translate the following text into %s, "+
			"preserving its format and meaning.",
		language,
	)
}

// Keep the first n characters of a string
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
