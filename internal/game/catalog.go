package game

import "context"

// Catalog fetches the flat question list a scope pages over. It is read
// fresh on every call.
func Catalog(ctx context.Context, store QuestionStore, scope Scope, guildID *int64) ([]Question, error) {
	if scope == ScopeCustom {
		return store.ListCustom(ctx, guildID)
	}
	return store.ListVisible(ctx, guildID)
}

// RenderCursor re-fetches the catalog for the cursor's scope and renders the
// page it points at.
func RenderCursor(ctx context.Context, store QuestionStore, cursor Cursor, guildID *int64) (PageView, error) {
	catalog, err := Catalog(ctx, store, cursor.Scope, guildID)
	if err != nil {
		return PageView{}, err
	}
	return RenderPage(cursor.TargetPage(), catalog, cursor.Scope), nil
}
