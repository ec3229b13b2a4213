package misc

import (
	"net/http"

	"github.com/vlatan/video-fetch/internal/config"
)

// Health and static files service
type Service struct {
	static http.Handler
}

func New(config *config.Config) *Service {
	return &Service{
		static: http.FileServer(http.Dir(config.PublicDir)),
	}
}
