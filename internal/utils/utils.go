package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path"

	"github.com/vlatan/video-fetch/internal/models"
)

// Validates a path
func ValidateFilePath(p string) error {
	if p == "" {
		return fmt.Errorf("no path supplied")
	}

	cleaned := path.Clean(p)
	if cleaned != p {
		return fmt.Errorf("invalid path '%s'", p)
	}

	return nil
}

// HttpError provides shorter handling of http error
func HttpError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// Write JSON to buffer first and then if succesfull to the response writer
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	// Encode data to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response on URI '%s': %v", r.RequestURI, err)
		HttpError(w, http.StatusInternalServerError)
		return
	}

	// Set content type before writing the status code
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write(jsonData); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON to response on URI '%s': %v", r.RequestURI, err)
	}
}

// Write JSON error to response
func JSONError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	WriteJSON(w, r, status, models.JSONErrorData{Error: msg, Details: details})
}
