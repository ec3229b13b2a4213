package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Provider names the backend used for transcript translation
type Provider string

const (
	OpenAI Provider = "openai"
	Gemini Provider = "gemini"
)

type Config struct {
	// Running localy or not
	Debug bool `env:"DEBUG" envDefault:"false"`

	// RapidAPI video metadata and download streams provider
	RapidAPIKey          string `env:"RAPIDAPI_KEY"`
	RapidAPIHost         string `env:"RAPIDAPI_HOST" envDefault:"yt-api.p.rapidapi.com"`
	RapidAPIInfoPath     string `env:"RAPIDAPI_INFO_PATH" envDefault:"/video/info"`
	RapidAPIDownloadPath string `env:"RAPIDAPI_DOWNLOAD_PATH" envDefault:"/dl"`

	// Transcript provider
	TranscriptURL string `env:"TRANSCRIPT_URL" envDefault:"https://yt-api.p.rapidapi.com/get_transcript"`

	// Translation settings
	TranslationProvider Provider `env:"TRANSLATION_PROVIDER" envDefault:"openai"`
	TranslationLanguage string   `env:"TRANSLATION_LANGUAGE" envDefault:"Spanish"`
	OpenAIAPIKey        string   `env:"OPENAI_API_KEY"`
	OpenAIBaseURL       string   `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel         string   `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	GeminiAPIKey        string   `env:"GEMINI_API_KEY"`
	GeminiModel         string   `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Timeouts, zero disables the request timeout
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Frontend
	PublicDir  string `env:"PUBLIC_DIR" envDefault:"public"`
	CorsOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	// Local app host and port
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"3000"`
}

// New creates new config object
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}

	return cfg
}

// Parse reads the config from the environment and validates it
func Parse() (*Config, error) {

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.RapidAPIKey == "" {
		log.Println("RAPIDAPI_KEY is not set, upstream calls will be rejected")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return &cfg, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It's called by the env library to decode the Provider.
func (p *Provider) UnmarshalText(text []byte) error {

	provider := Provider(strings.ToLower(strings.TrimSpace(string(text))))
	switch provider {
	case OpenAI, Gemini:
		*p = provider
		return nil
	}

	return fmt.Errorf("unknown translation provider %q", text)
}

// Addr returns the address the HTTP server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TranslationKey returns the API key of the selected translation provider
func (c *Config) TranslationKey() string {
	if c.TranslationProvider == Gemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
