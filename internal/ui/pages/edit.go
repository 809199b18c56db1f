package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/hourlog/timesheet/internal/model"
)

// EditLog renders the correction form for a single record. The end
// time field may be left empty to revert the record to running.
func EditLog(log *model.LogRecord) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="card"><h2>Edit entry</h2>`)
		fmt.Fprintf(&b, `<form method="post" action="/logs/%s/edit">`, esc(log.ID))
		fmt.Fprintf(&b, `<label>Date<input type="date" name="log_date" value="%s" required></label>`, esc(log.LogDate))
		fmt.Fprintf(&b, `<label>Client<input type="text" name="client" value="%s" required></label>`, esc(log.Client))
		fmt.Fprintf(&b, `<label>Task<input type="text" name="task" value="%s" required></label>`, esc(log.Task))
		fmt.Fprintf(&b, `<label>Details<textarea name="details">%s</textarea></label>`, esc(log.Details))
		fmt.Fprintf(&b, `<label>Start time<input type="time" name="start_time" value="%s" required></label>`, esc(log.StartClock()))
		fmt.Fprintf(&b, `<label>End time<input type="time" name="end_time" value="%s"></label>`, esc(log.EndClock()))
		b.WriteString(`<p class="muted">Leave end time empty to mark the entry as still running.</p>`)
		b.WriteString(`<button type="submit">Save</button> <a class="button" href="/">Cancel</a>`)
		b.WriteString(`</form></section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout("Edit entry", body)
}
