package engine

import (
	"strconv"
	"strings"
)

// Language is one of the display languages offered to users.
type Language int

const (
	English Language = iota
	Hindi
	Telugu
)

// SourceLanguage is the caption language always requested from the provider.
// Other display languages are reached by translation, never by re-fetching.
const SourceLanguage = English

var languageInfo = [...]struct {
	name string
	code string
}{
	English: {"English", "en"},
	Hindi:   {"Hindi", "hi"},
	Telugu:  {"Telugu", "te"},
}

// Languages returns every supported language in display order.
func Languages() []Language {
	return []Language{English, Hindi, Telugu}
}

// Valid reports whether l is one of the declared constants.
func (l Language) Valid() bool {
	return l >= English && int(l) < len(languageInfo)
}

// Code returns the ISO 639-1 code sent to providers.
func (l Language) Code() string {
	if !l.Valid() {
		return ""
	}
	return languageInfo[l].code
}

// Name returns the human-readable label.
func (l Language) Name() string {
	if !l.Valid() {
		return ""
	}
	return languageInfo[l].name
}

func (l Language) String() string {
	if !l.Valid() {
		return "Language(" + strconv.Itoa(int(l)) + ")"
	}
	return languageInfo[l].name
}

// ParseLanguage accepts a code ("hi") or a name ("Hindi"), case-insensitive.
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Languages() {
		if s == l.Code() || s == strings.ToLower(l.Name()) {
			return l, true
		}
	}
	return English, false
}
