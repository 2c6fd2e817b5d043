package sources

// YouTube captions are split across two files:
//   youtube_innertube.go:  Innertube /player types, constants, and the HTTP primitive
//   youtube_transcript.go: track discovery (watch page, then ANDROID player), track
//                           selection, and timedtext parsing
