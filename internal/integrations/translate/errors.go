package translate

import (
	"fmt"

	"google.golang.org/genai"
)

// BlockedErr is returned when Gemini produced no text for a translation
type BlockedErr struct {
	Feedback *genai.GenerateContentResponsePromptFeedback
}

// Implement error interface
func (b *BlockedErr) Error() string {

	if b.Feedback == nil || b.Feedback.BlockReason == "" {
		return "gemini returned no translation"
	}

	return fmt.Sprintf("gemini returned no translation, reason=%s", b.Feedback.BlockReason)
}
