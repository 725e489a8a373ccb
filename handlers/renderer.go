package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	"campaigns",
	"campaign_tasks",
	"quests",
	"quest_detail",
	"leaderboard",
	"not_found",
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages        map[string]*template.Template
	assetBaseURL string
	logger       *zap.Logger
}

// Shell is the data every page receives; Content is page specific.
type Shell struct {
	Title   string
	Nav     string
	Content any
}

func NewRenderer(assetBaseURL string, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Renderer{
		pages:        make(map[string]*template.Template, len(pages)),
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
		logger:       logger.Named("render"),
	}
	for _, name := range pages {
		tpl, err := template.New("layout.html").
			Funcs(template.FuncMap{"asset": r.asset}).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// asset prefixes static paths with the configured asset host.
func (r *Renderer) asset(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.assetBaseURL + "/" + strings.TrimLeft(path, "/")
}

func (r *Renderer) Render(w http.ResponseWriter, code int, page string, shell Shell) {
	tpl, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, shell); err != nil {
		r.logger.Error("render page", zap.String("page", page), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
}

func (r *Renderer) NotFound(w http.ResponseWriter, message string) {
	r.Render(w, http.StatusNotFound, "not_found", Shell{Title: "Not found", Content: message})
}
