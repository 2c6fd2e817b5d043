package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// YouTube caption retrieval.
// Primary:  scrape watch page ytInitialPlayerResponse → caption track list
// Fallback: ANDROID Innertube /player → caption track list
// Either way the chosen track's timedtext XML is parsed into fragments.

var (
	ErrNoCaptions          = errors.New("no captions")
	ErrLanguageUnavailable = errors.New("no caption track in requested language")
	ErrPoTokenRequired     = errors.New("all caption tracks require PoToken")
)

// YouTubeTranscripts fetches captions straight from YouTube.
type YouTubeTranscripts struct {
	BaseURL string // overridable in tests
}

// NewYouTubeTranscripts returns a provider pointed at www.youtube.com.
func NewYouTubeTranscripts() *YouTubeTranscripts {
	return &YouTubeTranscripts{BaseURL: ytBaseURL}
}

var _ engine.TranscriptProvider = (*YouTubeTranscripts)(nil)

// Fragments returns the caption fragments of id in lang, in playback order.
// Each track source is tried once; there is no retry.
func (y *YouTubeTranscripts) Fragments(ctx context.Context, id engine.VideoID, lang engine.Language) ([]engine.Fragment, error) {
	steps := []struct {
		name   string
		tracks func(context.Context, string) ([]captionTrack, error)
	}{
		{"watch page", y.watchPageTracks},
		{"player", y.playerTracks},
	}

	var lastErr error
	for i, step := range steps {
		if i > 0 {
			engine.IncrPlayerFallbacks()
		}
		tracks, err := step.tracks(ctx, string(id))
		var track captionTrack
		if err == nil {
			track, err = pickTrack(tracks, lang.Code())
		}
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", step.name, err)
			slog.Debug("youtube: caption tracks unavailable",
				slog.String("id", string(id)), slog.String("step", step.name), slog.Any("error", err))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		return y.fetchTimedText(ctx, track.BaseURL)
	}
	return nil, lastErr
}

// watchPageTracks scrapes the watch page HTML and reads caption tracks from
// ytInitialPlayerResponse. Uses the stealth browser client when configured.
func (y *YouTubeTranscripts) watchPageTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	engine.IncrWatchPageFetches()
	watchURL := y.BaseURL + "/watch?v=" + url.QueryEscape(videoID)

	var body []byte
	if bc := engine.Cfg.BrowserClient; bc != nil {
		headers := engine.ChromeHeaders()
		headers["accept-language"] = "en-US,en;q=0.9"
		data, _, status, err := bc.Do("GET", watchURL, headers, nil)
		if err != nil {
			return nil, fmt.Errorf("watch page browser fetch: %w", err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("watch page status %d", status)
		}
		body = data
	} else {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.RandomUserAgent())
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		body, err = doHTTP(req, watchPageLimit)
		if err != nil {
			return nil, fmt.Errorf("watch page: %w", err)
		}
	}

	resp, err := parseWatchPage(body)
	if err != nil {
		return nil, err
	}
	return resp.tracks()
}

// parseWatchPage decodes the ytInitialPlayerResponse object embedded in watch page HTML.
func parseWatchPage(body []byte) (*playerResp, error) {
	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	// The decoder stops after the first complete JSON value, ignoring the trailing script.
	dec := json.NewDecoder(bytes.NewReader(body[idx+len(ytInitialPlayerResponseMarker):]))
	var resp playerResp
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &resp, nil
}

// playerTracks asks the ANDROID Innertube /player endpoint for caption tracks.
func (y *YouTubeTranscripts) playerTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	data, err := postPlayerANDROID(ctx, y.BaseURL, videoID)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	var resp playerResp
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return resp.tracks()
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack selects the caption track for exactly lang.
// A manually created track beats an auto-generated one; other languages never qualify.
func pickTrack(tracks []captionTrack, lang string) (captionTrack, error) {
	var manual, generated *captionTrack
	sawLang := false
	for i := range tracks {
		t := &tracks[i]
		if t.LanguageCode != lang {
			continue
		}
		sawLang = true
		if needsPoToken(t.BaseURL) {
			continue
		}
		if t.Kind == "asr" {
			if generated == nil {
				generated = t
			}
		} else if manual == nil {
			manual = t
		}
	}
	switch {
	case manual != nil:
		return *manual, nil
	case generated != nil:
		return *generated, nil
	case sawLang:
		return captionTrack{}, ErrPoTokenRequired
	}
	return captionTrack{}, fmt.Errorf("%w: %s", ErrLanguageUnavailable, lang)
}

// fetchTimedText downloads a timedtext XML caption track and parses it into fragments.
func (y *YouTubeTranscripts) fetchTimedText(ctx context.Context, baseURL string) ([]engine.Fragment, error) {
	// srv3 is a richer format; the default is the plain <transcript><text> XML.
	baseURL = strings.Replace(baseURL, "&fmt=srv3", "", 1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	body, err := doHTTP(req, timedTextLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	return parseTimedText(body)
}

// parseTimedText parses timedtext XML. Fragment order follows the document;
// fragments whose text cleans down to nothing are kept as empty strings.
func parseTimedText(body []byte) ([]engine.Fragment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	if len(tt.Lines) == 0 {
		return nil, ErrNoCaptions
	}
	frags := make([]engine.Fragment, len(tt.Lines))
	for i, line := range tt.Lines {
		frags[i] = engine.Fragment{
			Text:     engine.CaptionText(line.Text),
			Start:    line.Start,
			Duration: line.Dur,
		}
	}
	return frags, nil
}
