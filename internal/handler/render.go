package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"adizon-admin/internal/domain"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer отрисовывает страницы консоли из встроенных шаблонов.
type Renderer struct {
	templates *template.Template
}

// NewRenderer разбирает все шаблоны один раз при старте.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		"platforms": func() []domain.Platform { return domain.Platforms },
		"roles":     func() []domain.Role { return []domain.Role{domain.RoleUser, domain.RoleAdmin} },
		"title":     platformTitle,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func platformTitle(p domain.Platform) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pageData — общие данные всех страниц.
type pageData struct {
	Nav   string
	Alert string
	View  any
}

func newPageData(c echo.Context, nav string, view any) pageData {
	return pageData{
		Nav:   nav,
		Alert: c.QueryParam("alert"),
		View:  view,
	}
}
