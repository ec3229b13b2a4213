package translate

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

// fakeGenerator returns a canned Gemini response
type fakeGenerator struct {
	response *genai.GenerateContentResponse
	err      error
	config   *genai.GenerateContentConfig
	model    string
}

func (f *fakeGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.model, f.config = model, config
	return f.response, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

func TestGeminiComplete(t *testing.T) {

	blocked := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason: genai.BlockedReasonSafety,
		},
	}

	tests := []struct {
		name     string
		fake     *fakeGenerator
		expected string
		wantErr  bool
	}{
		{"text", &fakeGenerator{response: textResponse("hola")}, "hola", false},
		{"blocked", &fakeGenerator{response: blocked}, "", true},
		{"api error", &fakeGenerator{err: errors.New("quota")}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complete := geminiComplete(tt.fake, "gemini-test")
			got, err := complete(context.Background(), "system", "hello")

			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("got error = %v, want error = %t", err, tt.wantErr)
			}

			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}

			if tt.fake.model != "gemini-test" {
				t.Errorf("got model %q, want %q", tt.fake.model, "gemini-test")
			}

			if tt.fake.config.MaxOutputTokens != maxTokens {
				t.Errorf("got max tokens %d, want %d", tt.fake.config.MaxOutputTokens, maxTokens)
			}

			if *tt.fake.config.Temperature != float32(temperature) {
				t.Errorf("got temperature %v, want %v", *tt.fake.config.Temperature, temperature)
			}
		})
	}
}

func TestBlockedErr(t *testing.T) {

	tests := []struct {
		name     string
		err      *BlockedErr
		expected string
	}{
		{"no feedback", &BlockedErr{}, "gemini returned no translation"},
		{
			"with reason",
			&BlockedErr{Feedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety}},
			"gemini returned no translation, reason=SAFETY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
