package game

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 10: 1, 11: 2, 23: 3, 30: 3}
	for items, want := range cases {
		assert.Equal(t, want, TotalPages(items), "items=%d", items)
	}
}

func TestRenderPageWrapsAround(t *testing.T) {
	catalog := makeCatalog(23)
	if diff := cmp.Diff(RenderPage(1, catalog, ScopeDefault), RenderPage(4, catalog, ScopeDefault)); diff != "" {
		t.Fatalf("page 4 should wrap to page 1 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RenderPage(3, catalog, ScopeDefault), RenderPage(0, catalog, ScopeDefault)); diff != "" {
		t.Fatalf("page 0 should wrap to page 3 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RenderPage(3, catalog, ScopeCustom), RenderPage(-50, catalog, ScopeCustom)); diff != "" {
		t.Fatalf("negative page should wrap to last page (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RenderPage(1, catalog, ScopeCustom), RenderPage(1000, catalog, ScopeCustom)); diff != "" {
		t.Fatalf("large page should wrap to first page (-want +got):\n%s", diff)
	}
}

func TestRenderPageSlicing(t *testing.T) {
	catalog := makeCatalog(23)

	first := RenderPage(1, catalog, ScopeDefault)
	second := RenderPage(2, catalog, ScopeDefault)
	third := RenderPage(3, catalog, ScopeDefault)

	require.Len(t, first.Lines, 10)
	require.Len(t, second.Lines, 10)
	require.Len(t, third.Lines, 3)
	for i, line := range third.Lines {
		assert.Equal(t, FormatLine(catalog[20+i], ScopeDefault), line)
	}
	assert.Equal(t, FormatLine(catalog[10], ScopeDefault), second.Lines[0])
	assert.Equal(t, "Page 3/3", third.Title)
	assert.Equal(t, CatalogCaption, third.Caption)
}

func TestRenderPageControls(t *testing.T) {
	view := RenderPage(2, makeCatalog(23), ScopeCustom)

	require.Len(t, view.Controls, 2)
	assert.Equal(t, "previous_page-1:CUSTOM", view.Controls[0].CustomID)
	assert.Equal(t, "next_page-2:CUSTOM", view.Controls[1].CustomID)
	assert.Equal(t, 1, view.Controls[0].Cursor.TargetPage())
	assert.Equal(t, 3, view.Controls[1].Cursor.TargetPage())
}

func TestRenderPageEmptyCatalog(t *testing.T) {
	for _, page := range []int{-3, 0, 1, 7} {
		for _, scope := range []Scope{ScopeDefault, ScopeCustom} {
			view := RenderPage(page, nil, scope)
			assert.True(t, view.Empty)
			assert.Empty(t, view.Controls)
			assert.Empty(t, view.Lines)
			assert.Equal(t, EmptyCatalogMessage, view.Body())
		}
	}
}

func TestRenderPageHidesUIDOutsideCustomScope(t *testing.T) {
	catalog := makeCatalog(23)
	for page := 1; page <= 3; page++ {
		for _, line := range RenderPage(page, catalog, ScopeDefault).Lines {
			assert.NotContains(t, line, "UID:")
		}
		for _, line := range RenderPage(page, catalog, ScopeCustom).Lines {
			assert.Contains(t, line, "UID:")
		}
	}
}

func TestFormatLine(t *testing.T) {
	q := Question{UID: "abc", Prompt: "Tell a secret", Type: TypeTruth, Rating: RatingPG13}
	assert.Equal(t, "Tell a secret (TRUTH - PG-13)", FormatLine(q, ScopeDefault))
	assert.Equal(t, "Tell a secret (TRUTH - PG-13) UID: abc", FormatLine(q, ScopeCustom))
}

func TestRenderCursorRefetchesScope(t *testing.T) {
	store := &memStore{questions: []Question{
		{UID: "g", Prompt: "Global", Type: TypeTruth, Rating: RatingPG},
		{UID: "c", GuildID: guild(1), Prompt: "Custom", Type: TypeDare, Rating: RatingPG},
	}}
	ctx := context.Background()

	view, err := RenderCursor(ctx, store, Cursor{Direction: DirectionPrevious, Page: 1, Scope: ScopeCustom}, guild(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom (DARE - PG) UID: c"}, view.Lines)

	view, err = RenderCursor(ctx, store, Cursor{Direction: DirectionNext, Page: 0, Scope: ScopeDefault}, guild(1))
	require.NoError(t, err)
	assert.Equal(t, "Global (TRUTH - PG)\nCustom (DARE - PG)", view.Body())
	assert.False(t, strings.Contains(view.Body(), "UID:"))
}
