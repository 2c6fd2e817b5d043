package engine

import "testing"

func TestCaptionText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain words", "plain words"},
		{"don&amp;#39;t stop", "don't stop"},
		{"&lt;i&gt;whispering&lt;/i&gt;", "whispering"},
		{"<font color=\"#E5E5E5\">hi</font> there", "hi there"},
		{"  [Music]  ", "[Music]"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CaptionText(tt.in); got != tt.want {
				t.Errorf("CaptionText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("नमस्ते", 100, "…"); got != "नमस्ते" {
		t.Errorf("short string changed: %q", got)
	}
	got := TruncateRunes("abcdefghij", 4, "…")
	if len([]rune(got)) > 5 {
		t.Errorf("TruncateRunes too long: %q", got)
	}
}
