package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CatalogPage renders one page of a guild's question catalog.
func CatalogPage(data CatalogData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Truth or Dare</title>
  </head>
  <body>
    <main class="shell">
      <header>
        <span class="tag">`)
		b.WriteString(templ.EscapeString(data.Caption))
		b.WriteString(`</span>
        <h1>`)
		if data.Empty {
			b.WriteString(templ.EscapeString(data.Message))
		} else {
			b.WriteString(templ.EscapeString(data.Title))
		}
		b.WriteString("</h1>\n      </header>\n")

		if !data.Empty {
			b.WriteString("      <ol class=\"questions\">\n")
			for _, line := range data.Lines {
				b.WriteString("        <li>")
				b.WriteString(templ.EscapeString(line))
				b.WriteString("</li>\n")
			}
			b.WriteString("      </ol>\n")

			p := data.Pagination
			b.WriteString("      <nav class=\"pagination\">\n")
			b.WriteString(`        <a rel="prev" href="`)
			b.WriteString(templ.EscapeString(pageURL(p.BasePath, p.PrevPage, p.Scope)))
			b.WriteString("\">Previous Page</a>\n")
			b.WriteString(`        <a rel="next" href="`)
			b.WriteString(templ.EscapeString(pageURL(p.BasePath, p.NextPage, p.Scope)))
			b.WriteString("\">Next Page</a>\n")
			b.WriteString("      </nav>\n")
		}

		b.WriteString("    </main>\n  </body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
