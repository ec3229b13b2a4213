package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vlatan/video-fetch/internal/config"
	"github.com/vlatan/video-fetch/internal/handlers/download"
	"github.com/vlatan/video-fetch/internal/handlers/misc"
	"github.com/vlatan/video-fetch/internal/integrations/rapid"
	"github.com/vlatan/video-fetch/internal/integrations/transcript"
	"github.com/vlatan/video-fetch/internal/integrations/translate"
	"github.com/vlatan/video-fetch/internal/middlewares"
)

// Upstream calls made by one download request
const upstreamCalls = 4

// Time left to write the response once the handler is done
const writeMargin = 10 * time.Second

type Server struct {
	download *download.Service
	misc     *misc.Service
	mw       *middlewares.Service
	cleanup  func() error

	shutdownTimeout time.Duration
	HttpServer      *http.Server
}

// Create new HTTP server
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {

	// One client shared by all the upstream providers
	client := &http.Client{
		Timeout: cfg.UpstreamTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}

	// Create translation service
	translator, err := translate.New(ctx, cfg, client)
	if err != nil {
		return nil, fmt.Errorf("couldn't create translation service; %w", err)
	}

	s := &Server{
		download: download.New(
			cfg,
			rapid.New(cfg, client),
			transcript.New(cfg, client),
			translator,
		),
		misc: misc.New(cfg),
		mw:   middlewares.New(cfg),
		cleanup: func() error {
			client.CloseIdleConnections()
			return nil
		},

		shutdownTimeout: cfg.ShutdownTimeout,
		HttpServer: &http.Server{
			Addr:         cfg.Addr(),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: writeTimeout(cfg),
		},
	}

	s.HttpServer.Handler = s.RegisterRoutes()
	return s, nil
}

// writeTimeout outlasts the longest download request,
// bounded by the request timeout or by every upstream call timing out.
// Zero means no deadline, as neither timeout is set.
func writeTimeout(cfg *config.Config) time.Duration {
	switch {
	case cfg.RequestTimeout > 0:
		return cfg.RequestTimeout + writeMargin
	case cfg.UpstreamTimeout > 0:
		return upstreamCalls*cfg.UpstreamTimeout + writeMargin
	}
	return 0
}
