// Package view renders the server side pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/labstack/echo/v4"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

const (
	DriverPage      = "driver.html"
	LoyaltyCardPage = "loyalty_card.html"
)

// Renderer plugs the embedded templates into echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(loc *time.Location) (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(Funcs(loc)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Static holds the page assets, rooted so that "driver.js" is at the top.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to every page.
func Funcs(loc *time.Location) template.FuncMap {
	if loc == nil {
		loc = time.Local
	}

	return template.FuncMap{
		"clock": func(t time.Time) string {
			return formatTime(t, loc, "15:04")
		},
		"kindClass": kindClass,
		"dec":       func(f float64) string { return fmt.Sprintf("%.2f", f) },
	}
}

func formatTime(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(layout)
}

func kindClass(kind string) string {
	switch kind {
	case "REWARD":
		return "reward"
	case "RESTAURANT":
		return "restaurant"
	default:
		return "stamp"
	}
}
