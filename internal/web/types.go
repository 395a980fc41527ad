package web

import (
	"truth-or-dare/internal/game"
)

type PaginationData struct {
	BasePath   string
	Scope      string
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
}

type CatalogData struct {
	GuildID    int64
	Title      string
	Caption    string
	Lines      []string
	Empty      bool
	Message    string
	Pagination PaginationData
}

// NewCatalogData adapts a rendered page for the HTML view. The links follow
// the page's own controls, so they wrap exactly like the chat buttons do.
func NewCatalogData(guildID int64, basePath string, view game.PageView) CatalogData {
	data := CatalogData{
		GuildID: guildID,
		Title:   view.Title,
		Caption: view.Caption,
		Lines:   view.Lines,
		Empty:   view.Empty,
		Message: view.Message,
		Pagination: PaginationData{
			BasePath:   basePath,
			Scope:      string(view.Scope),
			Page:       view.Page,
			TotalPages: view.TotalPages,
		},
	}
	for _, control := range view.Controls {
		target := game.NormalizePage(control.Cursor.TargetPage(), view.TotalPages)
		switch control.Cursor.Direction {
		case game.DirectionPrevious:
			data.Pagination.PrevPage = target
		case game.DirectionNext:
			data.Pagination.NextPage = target
		}
	}
	return data
}
