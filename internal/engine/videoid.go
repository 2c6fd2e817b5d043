package engine

import "strings"

// VideoID is the token YouTube uses to address a single video.
type VideoID string

// URL markers, checked in this order.
const (
	watchParamMarker = "v="
	shortLinkMarker  = "youtu.be/"
)

// ExtractVideoID pulls the video identifier out of a raw, untrusted URL string.
//
// The first "v=" wins and the token ends at the next "&". Without "v=", the
// text after the first "youtu.be/" is taken as-is. Anything else, including an
// empty token, reports ok == false. The identifier format is not validated.
func ExtractVideoID(raw string) (id VideoID, ok bool) {
	var token string
	if _, after, found := strings.Cut(raw, watchParamMarker); found {
		token, _, _ = strings.Cut(after, "&")
	} else if _, after, found := strings.Cut(raw, shortLinkMarker); found {
		token = after
	}
	if token == "" {
		return "", false
	}
	return VideoID(token), true
}
