package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/vlatan/video-fetch/internal/config"
)

// Upper bound of a transcript response body
const maxBodySize = 10 << 20

// Transcript provider service
type Service struct {
	config   *config.Config
	client   *http.Client
	endpoint string
}

// Create new transcript service
func New(config *config.Config, client *http.Client) *Service {
	return &Service{
		config:   config,
		client:   client,
		endpoint: config.TranscriptURL,
	}
}

// GetTranscript fetches the transcript of a video.
// The transcript is optional, any failure yields an empty string.
func (s *Service) GetTranscript(ctx context.Context, videoID string) string {
	tr, err := s.fetch(ctx, videoID)
	if err != nil {
		log.Printf("Transcript not available for %q: %v", videoID, err)
		return ""
	}

	return tr
}

// Call the transcript endpoint and serialize the responseContext object
func (s *Service) fetch(ctx context.Context, videoID string) (string, error) {

	endpoint := fmt.Sprintf("%s?%s", s.endpoint, url.Values{"videoId": {videoID}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	// The transcript endpoint lives on the same provider
	req.Header.Set("x-rapidapi-key", s.config.RapidAPIKey)
	req.Header.Set("x-rapidapi-host", req.URL.Host)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("provider returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}

	var result struct {
		ResponseContext json.RawMessage `json:"responseContext"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse the response: %w", err)
	}

	if len(result.ResponseContext) == 0 || bytes.Equal(result.ResponseContext, []byte("null")) {
		return "", fmt.Errorf("no responseContext in the response")
	}

	// Compact the sub-object to a single line string
	var buf bytes.Buffer
	if err := json.Compact(&buf, result.ResponseContext); err != nil {
		return "", err
	}

	return buf.String(), nil
}
