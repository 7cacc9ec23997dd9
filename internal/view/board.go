// Package view renders a computed board page as HTML.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"job-routing/internal/config"
	"job-routing/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

type Card struct {
	ID          string
	Title       string
	Description string
	Skills      []string
}

type PageLink struct {
	Number  int
	Href    string
	Current bool
}

type Board struct {
	Title            string
	Query            string
	Page             int
	PageCount        int
	Total            int
	Cards            []Card
	Placeholders     []struct{}
	Pages            []PageLink
	PrevHref         string
	NextHref         string
	GridColumns      int
	DescriptionLines int
	Theme            config.ThemeConfig
}

// Placeholders is the number of hidden cells that complete the last grid row.
func Placeholders(cards, columns int) int {
	if columns <= 1 || cards%columns == 0 {
		return 0
	}
	return columns - cards%columns
}

func PageHref(query string, page int) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/#top"
	}
	return "/?" + v.Encode() + "#top"
}

func Build(p usecase.JobListPage, board config.BoardConfig, theme config.ThemeConfig) Board {
	b := Board{
		Title:            board.Title,
		Query:            p.Query,
		Page:             p.Page,
		PageCount:        p.PageCount,
		Total:            p.Total,
		Cards:            make([]Card, 0, len(p.Items)),
		GridColumns:      board.GridColumns,
		DescriptionLines: board.DescriptionLines,
		Theme:            theme,
	}
	if b.GridColumns <= 0 {
		b.GridColumns = 1
	}
	if b.DescriptionLines <= 0 {
		b.DescriptionLines = 2
	}

	for _, it := range p.Items {
		skills := it.Skills
		if board.MaxSkills > 0 && len(skills) > board.MaxSkills {
			skills = skills[:board.MaxSkills]
		}
		b.Cards = append(b.Cards, Card{
			ID:          it.JobID,
			Title:       it.Title,
			Description: it.Description,
			Skills:      skills,
		})
	}
	b.Placeholders = make([]struct{}, Placeholders(len(b.Cards), b.GridColumns))

	for n := 1; n <= p.PageCount; n++ {
		b.Pages = append(b.Pages, PageLink{
			Number:  n,
			Href:    PageHref(p.Query, n),
			Current: n == p.Page,
		})
	}
	if p.Page > 1 && p.PageCount > 0 {
		prev := p.Page - 1
		if prev > p.PageCount {
			prev = p.PageCount
		}
		b.PrevHref = PageHref(p.Query, prev)
	}
	if p.Page < p.PageCount {
		b.NextHref = PageHref(p.Query, p.Page+1)
	}
	return b
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("board.html").Funcs(template.FuncMap{
		"px": func(v int) template.CSS { return template.CSS(fmt.Sprintf("%dpx", v)) },
		"css": func(s string) template.CSS { return template.CSS(s) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse board template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, b Board) error {
	return r.tmpl.ExecuteTemplate(w, "board.html", b)
}
