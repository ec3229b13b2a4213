package download

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/vlatan/video-fetch/internal/models"
	"github.com/vlatan/video-fetch/internal/utils"
)

// Upper bound of the request body
const maxRequestSize = 1 << 20

// DownloadHandler resolves the video from the URL in the body
// and serves the aggregated video info, download streams and transcript
func (s *Service) DownloadHandler(w http.ResponseWriter, r *http.Request) {

	var body models.DownloadRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize))

	// An empty body is treated as a missing URL
	if err := decoder.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("Failed to decode the request body on '%s': %v", r.RequestURI, err)
		utils.JSONError(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	envelope, failure := s.pipeline.Run(r.Context(), body.URL)
	if failure != nil {
		utils.JSONError(w, r, failure.Status, failure.Message, failure.Details)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, envelope)
}
