package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCursor = errors.New("malformed cursor")

// Scope selects which catalog a page is drawn from.
type Scope string

const (
	ScopeDefault Scope = "DEFAULT"
	ScopeCustom  Scope = "CUSTOM"
)

func ParseScope(raw string) (Scope, bool) {
	switch Scope(raw) {
	case ScopeDefault, ScopeCustom:
		return Scope(raw), true
	default:
		return "", false
	}
}

type Direction string

const (
	DirectionNext     Direction = "next_page"
	DirectionPrevious Direction = "previous_page"
)

// Cursor is the navigation state carried in a button's custom id:
// "<direction>-<page>:<scope>".
type Cursor struct {
	Direction Direction
	Page      int
	Scope     Scope
}

func EncodeCursor(direction Direction, page int, scope Scope) string {
	return fmt.Sprintf("%s-%d:%s", direction, page, scope)
}

func (c Cursor) String() string {
	return EncodeCursor(c.Direction, c.Page, c.Scope)
}

// TargetPage is the page the cursor navigates to. The previous control
// already stores the page below the current one, so only next adds one.
func (c Cursor) TargetPage() int {
	if c.Direction == DirectionNext {
		return c.Page + 1
	}
	return c.Page
}

// IsCursor reports whether id carries a navigation cursor.
func IsCursor(id string) bool {
	return strings.HasPrefix(id, string(DirectionNext)+"-") ||
		strings.HasPrefix(id, string(DirectionPrevious)+"-")
}

func DecodeCursor(id string) (Cursor, error) {
	var cursor Cursor
	switch {
	case strings.HasPrefix(id, string(DirectionNext)+"-"):
		cursor.Direction = DirectionNext
	case strings.HasPrefix(id, string(DirectionPrevious)+"-"):
		cursor.Direction = DirectionPrevious
	default:
		return Cursor{}, fmt.Errorf("%w: unknown direction in %q", ErrMalformedCursor, id)
	}

	rest := id[strings.IndexByte(id, '-')+1:]
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return Cursor{}, fmt.Errorf("%w: missing page in %q", ErrMalformedCursor, id)
	}
	page, err := strconv.Atoi(rest[:digits])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: page in %q: %v", ErrMalformedCursor, id, err)
	}
	cursor.Page = page

	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return Cursor{}, fmt.Errorf("%w: missing scope in %q", ErrMalformedCursor, id)
	}
	scope, ok := ParseScope(rest[colon+1:])
	if !ok {
		return Cursor{}, fmt.Errorf("%w: unknown scope in %q", ErrMalformedCursor, id)
	}
	cursor.Scope = scope
	return cursor, nil
}
