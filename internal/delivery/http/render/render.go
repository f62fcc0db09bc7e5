// Package render provides the server-side HTML renderer backed by embedded
// templates.
package render

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
// Templates are addressed by base filename, partials by their defined name.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}

// RenderToString executes a template into a string, used for HTML fragments
// embedded in JSON responses.
func (r *Renderer) RenderToString(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", errors.Wrap(err, "failed to render fragment")
	}

	return sb.String(), nil
}
