package engine

import (
	"net/http"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	Translator         string // "google" (default) or "llm"
	GoogleTranslateURL string
	LLMAPIKey          string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	HTTPClient         *http.Client
	BrowserClient      *BrowserClient // nil = watch pages fetched with HTTPClient
	LLMClient          *llm.Client    // nil unless Translator == "llm"
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	cfg = c
	Cfg = &cfg
}
