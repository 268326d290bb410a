package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the whole environment surface of the gateway. The two base URLs
// are fixed configuration, never user input.
type Config struct {
	Port string

	// ApplicantsBaseURL fronts the public submission endpoint,
	// APIBaseURL the authenticated admin API.
	ApplicantsBaseURL string
	APIBaseURL        string

	CORSAllowOrigins []string
	CookieSecure     bool

	// RecruitmentOpen gates the public form; when false the form answers
	// with the closed notice instead of accepting submissions.
	RecruitmentOpen bool

	LogLevel  string
	LogFormat string
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getenv("PORT", "8080"),
		ApplicantsBaseURL: os.Getenv("APPLICANTS_BASE_URL"),
		APIBaseURL:        os.Getenv("API_BASE_URL"),
		CookieSecure:      getenvBool("COOKIE_SECURE", false),
		RecruitmentOpen:   getenvBool("RECRUITMENT_OPEN", true),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "json"),
	}

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, o)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ApplicantsBaseURL == "" {
		return fmt.Errorf("config: APPLICANTS_BASE_URL is required")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
