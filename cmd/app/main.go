package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/vlatan/video-fetch/internal/config"
	"github.com/vlatan/video-fetch/internal/server"
)

func main() {

	// Load a local .env file if there is one,
	// the environment has the final say.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded; %v", err)
	}

	// Init config
	cfg := config.New()

	// Create new server
	s, err := server.NewServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("couldn't create the server; %v", err)
	}

	if err := s.Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
