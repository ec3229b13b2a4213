package server

import (
	"errors"
	"log"
	"net/http"
)

// Run serves the API until a shutdown signal arrives
// and blocks until the in-flight requests are drained.
func (s *Server) Run() error {

	drained := make(chan struct{})
	go s.Shutdown(drained)

	log.Printf(
		"Serving the API on http://%s (write timeout %s)",
		s.HttpServer.Addr, s.HttpServer.WriteTimeout,
	)

	// ErrServerClosed only means Shutdown was called
	if err := s.HttpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-drained
	log.Println("Server stopped.")
	return nil
}
