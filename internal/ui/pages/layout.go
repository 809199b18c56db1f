package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hourlog/timesheet/internal/ctxkeys"
)

// esc is shorthand for templ's HTML escaping in hand-built components.
func esc(s string) string {
	return templ.EscapeString(s)
}

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/", "Dashboard"},
	{"/report", "Report"},
	{"/export/csv", "Export CSV"},
}

// layout wraps a page body in the HTML shell and navigation. App name
// and active nav state come from the request context.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := "Timesheet"
		if cfg := ctxkeys.Config(ctx); cfg != nil {
			appName = cfg.AppName
		}
		path := ctxkeys.URLPath(ctx)

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s · %s</title>`, esc(title), esc(appName))
		b.WriteString(`<link rel="stylesheet" href="/assets/css/app.css">`)
		b.WriteString(`</head><body><header class="topbar">`)
		fmt.Fprintf(&b, `<span class="brand">%s</span><nav>`, esc(appName))
		for _, link := range navLinks {
			class := "nav-link"
			if link.href == path {
				class = "nav-link active"
			}
			fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`, class, link.href, esc(link.label))
		}
		b.WriteString(`</nav></header><main class="content">`)

		_, err := io.WriteString(w, b.String())
		if err != nil {
			return err
		}

		err = body.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}
