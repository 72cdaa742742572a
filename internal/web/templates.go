package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/emberlore/codex/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticRoot embed.FS

var staticFS = mustSub(staticRoot, "static")

// PlaceholderImage is served when an entity has no image of its own.
const PlaceholderImage = "/static/placeholder.svg"

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"imageURL": imageURL,
	"imageAlt": imageAlt,
}).ParseFS(templateFS, "templates/*.html"))

func mustSub(root embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(root, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// imageURL resolves an entity image to a URL, preferring the larger
// rendition and falling back to the bundled placeholder.
func imageURL(img *model.Image) string {
	if url := img.DisplayURL(); url != "" {
		return url
	}
	return PlaceholderImage
}

func imageAlt(img *model.Image, fallback string) string {
	if alt := img.Alt(); alt != "" {
		return alt
	}
	return fallback
}

// page is the envelope every template renders inside.
type page struct {
	Title string
	User  string
	Data  any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	p := page{Title: title, User: s.currentUser(r), Data: data}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, p); err != nil {
		s.log.Error("rendering template", slog.String("template", name), slog.String("error", err.Error()))
	}
}

