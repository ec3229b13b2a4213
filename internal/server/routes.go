package server

import (
	"net/http"
)

// RegisterRoutes registers the API routes and
// chains the middlewares that apply to all requests
func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	// API
	mux.HandleFunc("POST /api/download", s.download.DownloadHandler)
	mux.HandleFunc("GET /api/health", s.misc.HealthHandler)

	// Frontend
	mux.HandleFunc("GET /", s.misc.StaticHandler)

	// The order is important.
	return s.mw.ApplyToAll(
		s.mw.RecoverPanic,
		s.mw.CloseBody,
		s.mw.Logging,
		s.mw.CORS,
		s.mw.AddHeaders,
		s.mw.Compress,
	)(mux)
}
