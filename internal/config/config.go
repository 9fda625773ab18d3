package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string // empty selects the in-memory store
	RedisURL    string // empty disables the shared cache and events
	MaxConns    int
	LogVerbose  bool

	// TaxTablePath overrides the bundled reference tables.
	TaxTablePath string

	NarrativeWorkers  int
	NarrativeProvider string
	GeminiAPIKey      string
	GeminiModel       string
	LLMEndpoint       string
	LLMAPIKey         string
	LLMModel          string
	NarrativeTimeout  time.Duration
	NarrativeCacheTTL time.Duration
	NarrativeAttempts int
	// SweepSpec is the cron spec for requeueing stale narrative jobs.
	SweepSpec string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadDotenv reads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	var errs []error
	cfg := Config{
		Env:               getenv("APP_ENV", "development"),
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MaxConns:          getenvInt("MAX_CONNS", 256, &errs),
		LogVerbose:        getenvBool("LOG_VERBOSE", false, &errs),
		TaxTablePath:      os.Getenv("TAX_TABLE_PATH"),
		NarrativeWorkers:  getenvInt("NARRATIVE_WORKERS", 2, &errs),
		NarrativeProvider: strings.ToLower(getenv("NARRATIVE_PROVIDER", "")),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
		LLMEndpoint:       os.Getenv("LLM_ENDPOINT"),
		LLMAPIKey:         getenv("LLM_API_KEY", os.Getenv("GITHUB_TOKEN")),
		LLMModel:          os.Getenv("LLM_MODEL"),
		NarrativeTimeout:  time.Duration(getenvInt("NARRATIVE_TIMEOUT_SECONDS", 60, &errs)) * time.Second,
		NarrativeCacheTTL: time.Duration(getenvInt("NARRATIVE_CACHE_TTL_MINUTES", 24*60, &errs)) * time.Minute,
		NarrativeAttempts: getenvInt("NARRATIVE_ATTEMPTS", 2, &errs),
		SweepSpec:         getenv("SWEEP_SPEC", "@every 1m"),
	}

	if cfg.NarrativeProvider == "" {
		cfg.NarrativeProvider = inferProvider(cfg)
	}
	switch cfg.NarrativeProvider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	case ProviderOpenAI, ProviderNone:
	default:
		errs = append(errs, fmt.Errorf("NARRATIVE_PROVIDER: unknown provider %q", cfg.NarrativeProvider))
	}
	if cfg.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("MAX_CONNS must be positive, got %d", cfg.MaxConns))
	}
	if cfg.NarrativeWorkers < 0 {
		errs = append(errs, fmt.Errorf("NARRATIVE_WORKERS must not be negative, got %d", cfg.NarrativeWorkers))
	}
	if cfg.NarrativeTimeout <= 0 {
		errs = append(errs, errors.New("NARRATIVE_TIMEOUT_SECONDS must be positive"))
	}
	return cfg, errors.Join(errs...)
}

// inferProvider picks a provider from whichever credentials are present.
func inferProvider(cfg Config) string {
	switch {
	case cfg.GeminiAPIKey != "":
		return ProviderGemini
	case cfg.LLMAPIKey != "":
		return ProviderOpenAI
	default:
		return ProviderNone
	}
}

func getenvInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, v))
		return def
	}
	return out
}

func getenvBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a boolean", key, v))
		return def
	}
	return out
}
