package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Google Translate via the public "gtx" web client endpoint, the same one
// browser extensions and the googletrans family of libraries use.

const (
	GoogleTranslateURL = "https://translate.googleapis.com/translate_a/single"
	translateLimit     = 8 * 1024 * 1024
)

// GoogleTranslate implements engine.Translator.
type GoogleTranslate struct {
	Endpoint string
}

// NewGoogleTranslate returns a translator for endpoint, or the public endpoint if empty.
func NewGoogleTranslate(endpoint string) *GoogleTranslate {
	if endpoint == "" {
		endpoint = GoogleTranslateURL
	}
	return &GoogleTranslate{Endpoint: endpoint}
}

var _ engine.Translator = (*GoogleTranslate)(nil)

// Translate sends the whole text in one request; the source language is auto-detected.
func (g *GoogleTranslate) Translate(ctx context.Context, text string, target engine.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", engine.ErrEmptyText
	}
	if !target.Valid() {
		return "", fmt.Errorf("google translate: unsupported language %v", target)
	}

	u, err := url.Parse(g.Endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", target.Code())
	q.Set("dt", "t")
	u.RawQuery = q.Encode()

	// Text goes in the body so long transcripts don't hit URL length limits.
	form := url.Values{"q": {text}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")
	req.Header.Set("User-Agent", engine.RandomUserAgent())

	body, err := doHTTP(req, translateLimit)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	out, err := parseGoogleTranslate(body)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	return out, nil
}

// parseGoogleTranslate concatenates the translated segments of a gtx response:
//
//	[[["Namaste","Hello",null,null,10],[null,null,"namaste"]],null,"en",...]
//
// Segments whose first element is null (transliterations) are skipped.
func parseGoogleTranslate(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(top) == 0 {
		return "", errors.New("empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part *string
		if err := json.Unmarshal(seg[0], &part); err != nil || part == nil {
			continue
		}
		sb.WriteString(*part)
	}
	if sb.Len() == 0 {
		return "", errors.New("no translated segments")
	}
	return sb.String(), nil
}
