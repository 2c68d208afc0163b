package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/logging"
)

//go:embed templates
var templateFS embed.FS

// Views known to the renderer.
const (
	ViewIndex         = "index"
	ViewRegister      = "users/register"
	ViewLogin         = "users/login"
	ViewError         = "errors/404"
	ViewVacancyList   = "vacancies/list"
	ViewVacancyCreate = "vacancies/create"
	ViewVacancyOne    = "vacancies/one"
)

var views = []string{
	ViewIndex, ViewRegister, ViewLogin, ViewError,
	ViewVacancyList, ViewVacancyCreate, ViewVacancyOne,
}

// Renderer writes a named view with its model attributes.
type Renderer interface {
	Render(w io.Writer, view string, data map[string]any) error
}

// TemplateRenderer renders the embedded html/template views, each wrapped
// in the shared layout.
type TemplateRenderer struct {
	views map[string]*template.Template
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("02.01.2006 15:04") },
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{views: make(map[string]*template.Template, len(views))}

	for _, v := range views {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+v+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v, err)
		}
		r.views[v] = t
	}
	return r, nil
}

func (r *TemplateRenderer) Render(w io.Writer, view string, data map[string]any) error {
	t, ok := r.views[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// page holds what a handler needs to answer with HTML.
type page struct {
	renderer Renderer
	logger   logging.Logger
}

// render writes view with status. The current user is always added under
// "user". Output is buffered so template errors still produce a 500.
func (p page) render(w http.ResponseWriter, r *http.Request, status int, view string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["user"] = currentUser(r)

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, view, data); err != nil {
		p.logger.Error(r.Context(), "Failed to render view", "view", view, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail renders the error page with a user-facing message.
func (p page) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	p.render(w, r, status, ViewError, map[string]any{"message": message})
}
