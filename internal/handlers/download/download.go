package download

import (
	"context"
	"encoding/json"

	"github.com/vlatan/video-fetch/internal/config"
	"github.com/vlatan/video-fetch/internal/integrations/translate"
)

// Provider of video metadata and download streams
type VideoProvider interface {
	GetVideoInfo(ctx context.Context, videoID string) (json.RawMessage, error)
	GetDownloadInfo(ctx context.Context, videoID string) (json.RawMessage, error)
}

// Best effort transcript provider, empty means unavailable
type TranscriptProvider interface {
	GetTranscript(ctx context.Context, videoID string) string
}

type Service struct {
	pipeline *Pipeline
}

func New(
	config *config.Config,
	videos VideoProvider,
	transcripts TranscriptProvider,
	translator translate.Translator,
) *Service {
	return &Service{
		pipeline: &Pipeline{
			videos:      videos,
			transcripts: transcripts,
			translator:  translator,
			timeout:     config.RequestTimeout,
		},
	}
}
