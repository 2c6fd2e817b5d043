package transcriptserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TranscriptInput is the input for youtube_transcript.
type TranscriptInput struct {
	URL      string `json:"url" jsonschema:"YouTube video URL (watch?v=... or youtu.be/... link)"`
	Language string `json:"language,omitempty" jsonschema:"Display language: en, hi or te (or English, Hindi, Telugu). Default: en"`
}

// TranscriptOutput is the structured output of youtube_transcript.
type TranscriptOutput struct {
	VideoID    string `json:"video_id"`
	Language   string `json:"language"`
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	Translated bool   `json:"translated"`
}

// VideoIDInput is the input for youtube_video_id.
type VideoIDInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL"`
}

// VideoIDOutput is the structured output of youtube_video_id.
type VideoIDOutput struct {
	VideoID string `json:"video_id,omitempty"`
	Found   bool   `json:"found"`
}

// RegisterTools registers the transcript tools on the given MCP server:
// youtube_transcript, youtube_video_id.
func RegisterTools(server *mcp.Server, t *engine.Transcriber) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the English caption transcript of a YouTube video and optionally translate it to Hindi or Telugu. Returns the full text as one string.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, transcriptTool(t))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_video_id",
		Description: "Extract the video ID from a YouTube URL (watch?v= or youtu.be/ link) without contacting YouTube.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, videoIDTool)
}

func transcriptTool(t *engine.Transcriber) func(context.Context, *mcp.CallToolRequest, TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
		engine.IncrToolCalls()

		lang := engine.English
		if input.Language != "" {
			l, ok := engine.ParseLanguage(input.Language)
			if !ok {
				return nil, TranscriptOutput{}, fmt.Errorf("unsupported language %q (use en, hi or te)", input.Language)
			}
			lang = l
		}

		res, err := t.Process(ctx, engine.Request{URL: input.URL, Language: lang})
		if err != nil {
			var uerr *engine.UserError
			if errors.As(err, &uerr) {
				slog.Debug("youtube_transcript: rejected", slog.String("url", input.URL), slog.String("reason", uerr.Kind.Error()))
				return nil, TranscriptOutput{}, errors.New(uerr.Message)
			}
			return nil, TranscriptOutput{}, err
		}

		return nil, TranscriptOutput{
			VideoID:    string(res.VideoID),
			Language:   res.Language.Code(),
			Heading:    res.Heading(),
			Text:       res.Text,
			Translated: res.Translated,
		}, nil
	}
}

func videoIDTool(ctx context.Context, req *mcp.CallToolRequest, input VideoIDInput) (*mcp.CallToolResult, VideoIDOutput, error) {
	engine.IncrToolCalls()
	id, ok := engine.ExtractVideoID(input.URL)
	return nil, VideoIDOutput{VideoID: string(id), Found: ok}, nil
}
