package game

import (
	"fmt"
	"strings"
)

const (
	PageSize            = 10
	EmptyCatalogMessage = "No questions found..."
	CatalogCaption      = "List of Questions"
)

// Control is a navigation button attached to a page.
type Control struct {
	Label    string
	CustomID string
	Cursor   Cursor
}

// PageView is the data handed to a renderer for one catalog page. An empty
// view carries only Message and no controls.
type PageView struct {
	Title      string
	Caption    string
	Lines      []string
	Controls   []Control
	Page       int
	TotalPages int
	Scope      Scope
	Empty      bool
	Message    string
}

func TotalPages(items int) int {
	if items <= 0 {
		return 0
	}
	return (items + PageSize - 1) / PageSize
}

// NormalizePage wraps an out-of-range page once: past the end goes to the
// first page, before the start goes to the last.
func NormalizePage(page, totalPages int) int {
	if page > totalPages {
		return 1
	}
	if page < 1 {
		return totalPages
	}
	return page
}

func FormatLine(question Question, scope Scope) string {
	line := fmt.Sprintf("%s (%s - %s)", question.Prompt, question.Type, question.Rating)
	if scope == ScopeCustom {
		line += " UID: " + question.UID
	}
	return line
}

// RenderPage lays out one page of catalog. Catalog order is preserved.
func RenderPage(page int, catalog []Question, scope Scope) PageView {
	if len(catalog) == 0 {
		return PageView{Scope: scope, Empty: true, Message: EmptyCatalogMessage}
	}

	totalPages := TotalPages(len(catalog))
	page = NormalizePage(page, totalPages)

	start := (page - 1) * PageSize
	end := min(start+PageSize, len(catalog))
	lines := make([]string, 0, end-start)
	for _, question := range catalog[start:end] {
		lines = append(lines, FormatLine(question, scope))
	}

	previous := Cursor{Direction: DirectionPrevious, Page: page - 1, Scope: scope}
	next := Cursor{Direction: DirectionNext, Page: page, Scope: scope}
	return PageView{
		Title:   fmt.Sprintf("Page %d/%d", page, totalPages),
		Caption: CatalogCaption,
		Lines:   lines,
		Controls: []Control{
			{Label: "Previous Page", CustomID: previous.String(), Cursor: previous},
			{Label: "Next Page", CustomID: next.String(), Cursor: next},
		},
		Page:       page,
		TotalPages: totalPages,
		Scope:      scope,
	}
}

// Body joins the page lines the way they are shown in a single message.
func (v PageView) Body() string {
	if v.Empty {
		return v.Message
	}
	return strings.Join(v.Lines, "\n")
}
