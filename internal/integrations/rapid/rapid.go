package rapid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/vlatan/video-fetch/internal/config"
)

// The status the provider reports on success
const successStatus = "success"

// Upper bound of a provider response body
const maxBodySize = 10 << 20

// RapidAPI video provider service
type Service struct {
	config  *config.Config
	client  *http.Client
	baseURL string
}

// Create new RapidAPI service
func New(config *config.Config, client *http.Client) *Service {
	return &Service{
		config:  config,
		client:  client,
		baseURL: "https://" + config.RapidAPIHost,
	}
}

// GetVideoInfo gets the video metadata, provided a video ID.
// Returns client facing error if any.
func (s *Service) GetVideoInfo(ctx context.Context, videoID string) (json.RawMessage, error) {
	return s.fetch(ctx, s.config.RapidAPIInfoPath, videoID, ErrVideoInfo)
}

// GetDownloadInfo gets the downloadable streams, provided a video ID.
// Returns client facing error if any.
func (s *Service) GetDownloadInfo(ctx context.Context, videoID string) (json.RawMessage, error) {
	return s.fetch(ctx, s.config.RapidAPIDownloadPath, videoID, ErrDownloadInfo)
}

// Call the provider endpoint and check the status field of the response
func (s *Service) fetch(
	ctx context.Context,
	path, videoID string,
	clientErr error,
) (json.RawMessage, error) {

	endpoint := fmt.Sprintf("%s%s?%s", s.baseURL, path, url.Values{"id": {videoID}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("%s; failed to create request for %q: %v", clientErr, videoID, err)
		return nil, &UpstreamError{Err: clientErr}
	}

	req.Header.Set("x-rapidapi-key", s.config.RapidAPIKey)
	req.Header.Set("x-rapidapi-host", s.config.RapidAPIHost)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("%s; unable to get a response for %q: %v", clientErr, videoID, err)
		return nil, &UpstreamError{Err: clientErr}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Printf("%s; failed to read the response for %q: %v", clientErr, videoID, err)
		return nil, &UpstreamError{Err: clientErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("%s; provider returned %d for %q", clientErr, resp.StatusCode, videoID)
		upstreamErr := &UpstreamError{Err: clientErr}
		if json.Valid(body) {
			upstreamErr.Details = body
		}
		return nil, upstreamErr
	}

	if !json.Valid(body) {
		log.Printf("%s; failed to parse the response for %q", clientErr, videoID)
		return nil, &UpstreamError{Err: clientErr}
	}

	// Any JSON other than an object with "status":"success" is a failure.
	// Arrays and scalars don't decode into the struct.
	var result struct {
		Status any `json:"status"`
	}

	if err := json.Unmarshal(body, &result); err != nil || result.Status != successStatus {
		log.Printf("%s; provider status %v for %q", clientErr, result.Status, videoID)
		return nil, &UpstreamError{Err: clientErr, Details: body}
	}

	return body, nil
}
