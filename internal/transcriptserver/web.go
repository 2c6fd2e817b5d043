package transcriptserver

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// WebHandler serves the single-page form: paste a link, pick a language, get text.
type WebHandler struct {
	transcriber *engine.Transcriber
	tmpl        *template.Template
	mux         *http.ServeMux
}

type languageOption struct {
	Code     string
	Name     string
	Selected bool
}

type pageData struct {
	URL       string
	Languages []languageOption
	Error     string
	Heading   string
	Text      string
}

// NewWebHandler builds the form handler around t.
func NewWebHandler(t *engine.Transcriber) *WebHandler {
	h := &WebHandler{
		transcriber: t,
		tmpl:        template.Must(template.New("page").Parse(pageHTML)),
		mux:         http.NewServeMux(),
	}
	h.mux.HandleFunc("/healthz", h.handleHealth)
	h.mux.HandleFunc("/", h.handleIndex)
	return h
}

func (h *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *WebHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *WebHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.render(w, pageData{Languages: languageOptions(engine.English)})
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSubmit runs the whole pipeline before answering; there is no progress state.
func (h *WebHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("web: bad form", slog.Any("error", err))
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	engine.IncrFormSubmissions()

	rawURL := r.PostFormValue("url")
	lang, ok := engine.ParseLanguage(r.PostFormValue("language"))
	if !ok {
		lang = engine.English
	}

	data := pageData{URL: rawURL, Languages: languageOptions(lang)}
	res, err := h.transcriber.Process(r.Context(), engine.Request{URL: rawURL, Language: lang})
	if err != nil {
		var uerr *engine.UserError
		if errors.As(err, &uerr) {
			data.Error = uerr.Message
		} else {
			data.Error = err.Error()
		}
		h.render(w, data)
		return
	}

	data.Heading = res.Heading()
	data.Text = res.Text
	h.render(w, data)
}

func (h *WebHandler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		slog.Error("web: template rendering failed", slog.Any("error", err))
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func languageOptions(selected engine.Language) []languageOption {
	langs := engine.Languages()
	opts := make([]languageOption, len(langs))
	for i, l := range langs {
		opts[i] = languageOption{Code: l.Code(), Name: l.Name(), Selected: l == selected}
	}
	return opts
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>YouTube Video to Text</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
    h1 { text-align: center; color: #FF6347; }
    h3.sub { text-align: center; color: #4682B4; }
    input[type=text], select, textarea { width: 100%; box-sizing: border-box; padding: .5rem; margin-bottom: 1rem; }
    .error { background: #fdecea; color: #b71c1c; padding: .75rem; border-radius: 4px; }
    footer { text-align: center; color: #808080; font-size: .8rem; margin-top: 3rem; }
  </style>
</head>
<body>
  <h1>YouTube Video to Text</h1>
  <h3 class="sub">Extract text from YouTube videos in English, Hindi, or Telugu</h3>

  <form method="post" action="/">
    <h3>Enter the YouTube Video Link</h3>
    <label for="url">Paste your YouTube video link here:</label>
    <input type="text" id="url" name="url" value="{{.URL}}">

    <h3>Select Language for the Text</h3>
    <label for="language">Choose language:</label>
    <select id="language" name="language">
      {{- range .Languages}}
      <option value="{{.Code}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
      {{- end}}
    </select>

    <button type="submit">Get Text</button>
  </form>

  {{with .Error}}<p class="error">{{.}}</p>{{end}}
  {{if .Heading}}
  <h3>{{.Heading}}</h3>
  <textarea readonly rows="15">{{.Text}}</textarea>
  {{end}}

  <footer>Captions courtesy of YouTube</footer>
</body>
</html>
`
