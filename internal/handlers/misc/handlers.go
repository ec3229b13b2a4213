package misc

import (
	"net/http"
	"time"

	"github.com/vlatan/video-fetch/internal/models"
	"github.com/vlatan/video-fetch/internal/utils"
)

// HealthHandler reports the server is up.
// It does not touch any upstream provider.
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	data := models.Health{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	}

	utils.WriteJSON(w, r, http.StatusOK, data)
}

// Handle static files from the public directory
func (s *Service) StaticHandler(w http.ResponseWriter, r *http.Request) {

	// Validate the path
	if err := utils.ValidateFilePath(r.URL.Path); err != nil {
		http.NotFound(w, r)
		return
	}

	s.static.ServeHTTP(w, r)
}
