// go_transcript: YouTube transcript extraction and translation.
//
// Serves a web form (paste a link, pick English, Hindi or Telugu, get text) and
// exposes the same pipeline as MCP tools: youtube_transcript, youtube_video_id.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/engine/sources"
	"github.com/anatolykoptev/go_transcript/internal/transcriptserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8891")
	webPort = env.Str("WEB_PORT", "8501")
)

func main() {
	setLogLevel(env.Str("LOG_LEVEL", "info"))
	initEngine()

	transcriber := engine.NewTranscriber(sources.NewYouTubeTranscripts(), newTranslator())

	go serveWeb(transcriber)

	slog.Info("starting go_transcript",
		slog.String("mcp_port", mcpPort),
		slog.String("web_port", webPort),
		slog.String("translator", engine.Cfg.Translator),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	transcriptserver.RegisterTools(server, transcriber)
	slog.Info("tools registered", slog.Int("count", 2))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 300 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		Translator:         strings.ToLower(env.Str("TRANSLATOR", "google")),
		GoogleTranslateURL: env.Str("GOOGLE_TRANSLATE_URL", sources.GoogleTranslateURL),
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 16384),
		HTTPClient: &http.Client{
			// 0 disables the timeout; provider calls then run until the request context ends.
			Timeout: env.Duration("HTTP_TIMEOUT", 60*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if env.Str("STEALTH_ENABLED", "true") == "true" {
		var opts []stealth.ClientOption
		opts = append(opts, stealth.WithTimeout(15))

		if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
			pool, err := proxypool.NewWebshare(apiKey)
			if err != nil {
				slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
			} else {
				opts = append(opts, stealth.WithProxyPool(pool))
				slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
			}
		}

		bc, err := stealth.NewClient(opts...)
		if err != nil {
			slog.Warn("stealth client init failed, using plain HTTP for watch pages", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Info("stealth browser client initialized")
		}
	}

	if c.Translator == "llm" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
		)
	}

	engine.Init(c)
}

func newTranslator() engine.Translator {
	switch engine.Cfg.Translator {
	case "llm":
		return engine.NewLLMTranslator(engine.Cfg.LLMClient, engine.Cfg.LLMTemperature)
	case "google", "":
		return sources.NewGoogleTranslate(engine.Cfg.GoogleTranslateURL)
	default:
		slog.Warn("unknown translator, using google", slog.String("translator", engine.Cfg.Translator))
		return sources.NewGoogleTranslate(engine.Cfg.GoogleTranslateURL)
	}
}

func serveWeb(t *engine.Transcriber) {
	srv := &http.Server{
		Addr:              ":" + webPort,
		Handler:           transcriptserver.NewWebHandler(t),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("web form listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("web server failed", slog.Any("error", err))
	}
}

func setLogLevel(s string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		slog.Warn("invalid LOG_LEVEL, using info", slog.String("value", s))
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
}
