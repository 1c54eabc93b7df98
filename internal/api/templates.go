package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplate = "templates/base.html"

// pages maps a page file name to its template, each parsed together with
// the shared layout.
type pages map[string]*template.Template

func loadPages() (pages, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	p := pages{}
	for _, file := range files {
		if file == baseTemplate {
			continue
		}
		t, err := template.ParseFS(templateFS, baseTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", file, err)
		}
		p[path.Base(file)] = t
	}
	return p, nil
}

func (p pages) execute(w io.Writer, name string, data any) error {
	t, ok := p[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}

// site is the layout data shared by every page.
type site struct {
	Title  string
	Footer template.HTML
}

type errorPage struct {
	Site       site
	Title      string
	Status     int
	StatusText string
	Message    string
}

// render executes a page into a buffer first so a failing template never
// leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.execute(&buf, name, data); err != nil {
		s.log.Error("template render failed", "template", name, "error", err)
		s.renderError(w, http.StatusInternalServerError, "Failed to render page.")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	data := errorPage{
		Site:       s.site(s.store.Graph()),
		Title:      http.StatusText(status),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}
	var buf bytes.Buffer
	if err := s.pages.execute(&buf, "error.html", data); err != nil {
		s.log.Error("error page render failed", "error", err)
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
