package middlewares

import (
	"net/http"
)

// A custom http.ResponseWriter that captures the status code
// while passing everything through to the client.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// Creates a new statusRecorder
func NewStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{
		ResponseWriter: w,
		status:         http.StatusOK, // Default to 200 OK
	}
}

// Captures the response status code
func (r *statusRecorder) WriteHeader(statusCode int) {
	if !r.wroteHeader {
		r.status = statusCode
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

// Writes the body, implying a 200 if no status was written
func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
