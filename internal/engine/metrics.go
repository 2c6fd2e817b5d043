package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	TranscriptErrors   atomic.Int64
	TranslationCalls   atomic.Int64
	TranslationErrors  atomic.Int64
	PipelineRuns       atomic.Int64
	FormSubmissions    atomic.Int64
	ToolCalls          atomic.Int64
	WatchPageFetches   atomic.Int64
	PlayerFallbacks    atomic.Int64
}

var metricKeys = []string{
	"transcript_requests", "transcript_errors",
	"translation_calls", "translation_errors",
	"pipeline_runs", "form_submissions", "tool_calls",
	"youtube_watch_page_fetches", "youtube_player_fallbacks",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests":        metrics.TranscriptRequests.Load(),
		"transcript_errors":          metrics.TranscriptErrors.Load(),
		"translation_calls":          metrics.TranslationCalls.Load(),
		"translation_errors":         metrics.TranslationErrors.Load(),
		"pipeline_runs":              metrics.PipelineRuns.Load(),
		"form_submissions":           metrics.FormSubmissions.Load(),
		"tool_calls":                 metrics.ToolCalls.Load(),
		"youtube_watch_page_fetches": metrics.WatchPageFetches.Load(),
		"youtube_player_fallbacks":   metrics.PlayerFallbacks.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources and transcriptserver packages.
func IncrFormSubmissions()  { metrics.FormSubmissions.Add(1) }
func IncrToolCalls()        { metrics.ToolCalls.Add(1) }
func IncrWatchPageFetches() { metrics.WatchPageFetches.Add(1) }
func IncrPlayerFallbacks()  { metrics.PlayerFallbacks.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 10*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
