package engine

import (
	"context"
	"log/slog"
)

// Request is one form submission or tool call.
type Request struct {
	URL      string
	Language Language // display language
}

// Result is what gets rendered on success.
type Result struct {
	VideoID    VideoID
	Language   Language
	Text       string
	Translated bool
}

// Heading is the title shown above the text.
func (r Result) Heading() string {
	if r.Translated {
		return "Translated Text in " + r.Language.Name()
	}
	return "Extracted Text"
}

// Transcriber runs the URL → transcript → translation pipeline.
// It holds no per-request state and is safe for concurrent use.
type Transcriber struct {
	provider   TranscriptProvider
	translator Translator
}

// NewTranscriber wires a caption provider and a translator.
func NewTranscriber(provider TranscriptProvider, translator Translator) *Transcriber {
	return &Transcriber{provider: provider, translator: translator}
}

// Process runs the pipeline for req. A non-nil error is always a *UserError.
func (t *Transcriber) Process(ctx context.Context, req Request) (res Result, err error) {
	metrics.PipelineRuns.Add(1)
	_ = TrackOperation(ctx, "pipeline", func(ctx context.Context) error {
		var uerr *UserError
		res, uerr = t.process(ctx, req)
		if uerr != nil {
			err = uerr
		}
		return err
	})
	return res, err
}

func (t *Transcriber) process(ctx context.Context, req Request) (Result, *UserError) {
	if req.URL == "" {
		return Result{}, newUserError(ErrMissingInput, MsgMissingInput, nil)
	}

	id, ok := ExtractVideoID(req.URL)
	if !ok {
		return Result{}, newUserError(ErrInvalidURL, MsgInvalidURL, nil)
	}

	transcript, ok := FetchTranscript(ctx, t.provider, id, SourceLanguage)
	if !ok {
		return Result{}, newUserError(ErrTranscriptUnavailable, MsgTranscriptUnavailable, nil)
	}

	lang := req.Language
	if !lang.Valid() {
		lang = SourceLanguage
	}
	if lang == SourceLanguage {
		return Result{VideoID: id, Language: lang, Text: string(transcript)}, nil
	}

	metrics.TranslationCalls.Add(1)
	translated, err := t.translator.Translate(ctx, string(transcript), lang)
	if err != nil {
		metrics.TranslationErrors.Add(1)
		slog.Warn("translation failed",
			slog.String("id", string(id)), slog.String("lang", lang.Code()), slog.Any("error", err))
		return Result{}, newUserError(ErrTranslationFailed, MsgTranslationFailed, err)
	}

	slog.Debug("transcript translated",
		slog.String("id", string(id)), slog.String("lang", lang.Code()),
		slog.String("preview", TruncateRunes(translated, 80, "…")))
	return Result{VideoID: id, Language: lang, Text: translated, Translated: true}, nil
}
