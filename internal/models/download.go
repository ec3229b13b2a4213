package models

import (
	"encoding/json"
	"time"
)

// Body of the download request
type DownloadRequest struct {
	URL string `json:"url"`
}

// Envelope is the aggregated response for one download request
type Envelope struct {
	Success              bool            `json:"success"`
	VideoInfo            json.RawMessage `json:"videoInfo"`
	Download             json.RawMessage `json:"download"`
	Transcript           string          `json:"transcript"`
	TranslatedTranscript string          `json:"translatedTranscript"`
	VideoID              string          `json:"videoId"`
}

// JSON error served to the client
type JSONErrorData struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Health check response
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
