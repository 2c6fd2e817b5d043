package engine

import (
	"context"
	"log/slog"
	"strings"
)

// Fragment is one timed caption unit as returned by a provider.
type Fragment struct {
	Text     string
	Start    float64 // seconds
	Duration float64 // seconds
}

// Transcript is the full caption text of a video in one language.
type Transcript string

// TranscriptProvider returns the caption fragments of a video in one language,
// in playback order.
type TranscriptProvider interface {
	Fragments(ctx context.Context, id VideoID, lang Language) ([]Fragment, error)
}

// FetchTranscript asks p for the captions of id in lang and joins the fragment
// texts with single spaces, preserving provider order.
//
// Every provider failure collapses into ok == false, as does an empty result.
// The cause is only visible in debug logs.
func FetchTranscript(ctx context.Context, p TranscriptProvider, id VideoID, lang Language) (Transcript, bool) {
	metrics.TranscriptRequests.Add(1)

	frags, err := p.Fragments(ctx, id, lang)
	if err != nil {
		metrics.TranscriptErrors.Add(1)
		slog.Debug("transcript unavailable",
			slog.String("id", string(id)), slog.String("lang", lang.Code()), slog.Any("error", err))
		return "", false
	}

	texts := make([]string, len(frags))
	for i, f := range frags {
		texts[i] = f.Text
	}
	text := strings.Join(texts, " ")
	if text == "" {
		metrics.TranscriptErrors.Add(1)
		slog.Debug("transcript empty", slog.String("id", string(id)), slog.Int("fragments", len(frags)))
		return "", false
	}
	return Transcript(text), true
}
