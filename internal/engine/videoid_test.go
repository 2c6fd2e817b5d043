package engine

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   VideoID
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with params", "https://www.youtube.com/watch?v=xyz789&t=30", "xyz789", true},
		{"v not first param", "https://www.youtube.com/watch?feature=share&v=abc&list=PL1", "abc", true},
		{"short link", "https://youtu.be/abc123", "abc123", true},
		{"short link keeps query", "https://youtu.be/abc123?si=XYZ&t=4", "abc123?si=XYZ&t=4", true},
		{"v= wins over youtu.be", "https://youtu.be/short?v=long&x=1", "long", true},
		{"first v= wins", "https://example.com/?v=one&v=two", "one", true},
		{"v= anywhere counts", "dev=abc", "abc", true},
		{"no format validation", "https://www.youtube.com/watch?v=!!", "!!", true},
		{"empty v token", "https://www.youtube.com/watch?v=", "", false},
		{"empty v token before amp", "https://www.youtube.com/watch?v=&t=3", "", false},
		{"empty short token", "https://youtu.be/", "", false},
		{"plain text", "not a url", "", false},
		{"other site", "https://vimeo.com/12345", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractVideoIDRoundTrip(t *testing.T) {
	ids := []string{"a", "abc123", "dQw4w9WgXcQ", "with-dash_and_underscore"}
	for _, id := range ids {
		if got, ok := ExtractVideoID("https://www.youtube.com/watch?v=" + id + "&list=x"); !ok || string(got) != id {
			t.Errorf("watch form: got %q, %v; want %q", got, ok, id)
		}
		if got, ok := ExtractVideoID("https://youtu.be/" + id); !ok || string(got) != id {
			t.Errorf("short form: got %q, %v; want %q", got, ok, id)
		}
	}
}
