package server

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

// Shutdown waits for SIGINT or SIGTERM, lets the in-flight
// download requests finish within the shutdown timeout,
// closes the upstream connections and informs the main goroutine when done.
func (s *Server) Shutdown(done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Println("Shutting down gracefully, press Ctrl+C again to force...")

	// A second signal now goes straight to the OS and kills the process
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.HttpServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Closing upstream connections...")
	if err := s.cleanup(); err != nil {
		log.Printf("Error during cleanup: %v", err)
	}

	log.Println("Server exiting...")
	done <- struct{}{}
}
