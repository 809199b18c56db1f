package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func NotFound() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="card"><h2>Page not found</h2><p><a href="/">Back to the dashboard</a></p></section>`)
		return err
	})

	return layout("Not found", body)
}
