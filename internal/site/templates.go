package site

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	apperrors "github.com/witoldexec80th12/discovertrailraces/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pages maps a page name to its template file; each is parsed together
// with the shared layout.
var pages = map[string]string{
	"cost":     "templates/cost.html",
	"race":     "templates/race.html",
	"notfound": "templates/notfound.html",
}

func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, err
		}
		out[name] = t
	}
	return out, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// meta is the head data shared by every page.
type meta struct {
	Title       string
	Description string
}

// render executes a page into a buffer first so a template error never
// leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := s.tmpl[page]
	if !ok {
		return apperrors.New(apperrors.RenderFailed, "unknown page "+page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return apperrors.Wrap(apperrors.RenderFailed, page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
