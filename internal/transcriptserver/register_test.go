package transcriptserver

import (
	"context"
	"errors"
	"testing"

	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestTranscriptTool(t *testing.T) {
	tests := []struct {
		name      string
		input     TranscriptInput
		provider  stubProvider
		want      TranscriptOutput
		wantErr   string
		wantCalls int
	}{
		{
			name:     "default english",
			input:    TranscriptInput{URL: "https://youtu.be/abc123"},
			provider: stubProvider{text: "hello world"},
			want:     TranscriptOutput{VideoID: "abc123", Language: "en", Heading: "Extracted Text", Text: "hello world"},
		},
		{
			name:      "hindi by name",
			input:     TranscriptInput{URL: "https://www.youtube.com/watch?v=xyz789&t=30", Language: "Hindi"},
			provider:  stubProvider{text: "hello"},
			want:      TranscriptOutput{VideoID: "xyz789", Language: "hi", Heading: "Translated Text in Hindi", Text: "[hi] hello", Translated: true},
			wantCalls: 1,
		},
		{
			name:     "unsupported language",
			input:    TranscriptInput{URL: "https://youtu.be/abc123", Language: "fr"},
			provider: stubProvider{text: "hello"},
			wantErr:  `unsupported language "fr" (use en, hi or te)`,
		},
		{
			name:     "missing url",
			input:    TranscriptInput{},
			provider: stubProvider{text: "hello"},
			wantErr:  engine.MsgMissingInput,
		},
		{
			name:     "invalid url",
			input:    TranscriptInput{URL: "not a url"},
			provider: stubProvider{text: "hello"},
			wantErr:  engine.MsgInvalidURL,
		},
		{
			name:     "no captions",
			input:    TranscriptInput{URL: "https://youtu.be/abc123", Language: "te"},
			provider: stubProvider{err: errors.New("no captions")},
			wantErr:  engine.MsgTranscriptUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &stubTranslator{}
			handler := transcriptTool(engine.NewTranscriber(tt.provider, tr))

			_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %+v, want %+v", out, tt.want)
			}
			if tr.calls != tt.wantCalls {
				t.Errorf("translator calls = %d, want %d", tr.calls, tt.wantCalls)
			}
		})
	}
}

func TestVideoIDTool(t *testing.T) {
	tests := []struct {
		url  string
		want VideoIDOutput
	}{
		{"https://youtu.be/abc123", VideoIDOutput{VideoID: "abc123", Found: true}},
		{"https://www.youtube.com/watch?v=xyz789&t=30", VideoIDOutput{VideoID: "xyz789", Found: true}},
		{"not a url", VideoIDOutput{}},
		{"", VideoIDOutput{}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			_, out, err := videoIDTool(context.Background(), &mcp.CallToolRequest{}, VideoIDInput{URL: tt.url})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("videoIDTool(%q) = %+v, want %+v", tt.url, out, tt.want)
			}
		})
	}
}

func TestRegisterTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	RegisterTools(server, engine.NewTranscriber(stubProvider{}, &stubTranslator{}))
}
