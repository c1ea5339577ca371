// Package reference serves a compact p5.js quick reference rendered from
// embedded markdown pages.
package reference

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Page is one rendered reference page.
type Page struct {
	Slug    string
	Title   string
	Content template.HTML
}

// Handler serves the rendered pages. All markdown renders once in New; the
// handlers only execute the page template.
type Handler struct {
	pages  []Page
	bySlug map[string]Page
	tmpl   *template.Template
}

// New renders every embedded markdown page to HTML.
func New() (*Handler, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	entries, err := pagesFS.ReadDir("pages")
	if err != nil {
		return nil, fmt.Errorf("read embedded pages: %w", err)
	}

	h := &Handler{bySlug: make(map[string]Page), tmpl: tmpl}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		src, err := pagesFS.ReadFile("pages/" + name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render page %s: %w", name, err)
		}

		slug := strings.TrimSuffix(name, ".md")
		h.bySlug[slug] = Page{
			Slug:    slug,
			Title:   extractTitle(string(src), slug),
			Content: template.HTML(buf.String()),
		}
	}
	if len(h.bySlug) == 0 {
		return nil, fmt.Errorf("no reference pages embedded")
	}

	// getting-started leads the navigation, the rest sorts by slug.
	slugs := make([]string, 0, len(h.bySlug))
	for slug := range h.bySlug {
		slugs = append(slugs, slug)
	}
	sort.Slice(slugs, func(i, j int) bool {
		if slugs[i] == "getting-started" {
			return true
		}
		if slugs[j] == "getting-started" {
			return false
		}
		return slugs[i] < slugs[j]
	})
	for _, slug := range slugs {
		h.pages = append(h.pages, h.bySlug[slug])
	}

	return h, nil
}

// Pages returns the rendered pages in navigation order.
func (h *Handler) Pages() []Page {
	return h.pages
}

// RegisterRoutes mounts the reference routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reference", h.handleIndex)
	r.Get("/reference/{page}", h.handlePage)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/reference/"+h.pages[0].Slug, http.StatusFound)
}

// pageData is the template payload for one page view.
type pageData struct {
	Title   string
	Active  string
	Pages   []Page
	Content template.HTML
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "page")
	page, ok := h.bySlug[slug]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.tmpl.Execute(w, pageData{
		Title:   page.Title,
		Active:  page.Slug,
		Pages:   h.pages,
		Content: page.Content,
	})
	if err != nil {
		log.Printf("reference: render %s: %v", slug, err)
	}
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the slug.
func extractTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}
