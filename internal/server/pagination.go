package server

import "truth-or-dare/internal/game"

const defaultEventLimit = 20

// requestedPage defaults a missing page to the first one. Out-of-range
// pages are left for the catalog renderer to wrap.
func requestedPage(page *int) int {
	if page == nil {
		return 1
	}
	return *page
}

func requestedScope(raw string) game.Scope {
	if scope, ok := game.ParseScope(raw); ok {
		return scope
	}
	return game.ScopeDefault
}

func requestedLimit(limit int) int {
	if limit <= 0 {
		return defaultEventLimit
	}
	return limit
}
