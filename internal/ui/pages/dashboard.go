package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/hourlog/timesheet/internal/model"
)

func fmtHours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', 2, 64)
}

// Dashboard shows the timer panel and the current month's completed
// entries. active is nil when no timer is running.
func Dashboard(active *model.LogRecord, logs []*model.LogRecord, today string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		if active != nil {
			b.WriteString(`<section class="card timer running"><h2>Timer running</h2>`)
			fmt.Fprintf(&b, `<p class="timer-meta">%s — %s, since %s</p>`,
				esc(active.Client), esc(active.Task), esc(active.StartTime.Format("15:04:05")))
			b.WriteString(`<form method="post" action="/stop">`)
			fmt.Fprintf(&b, `<input type="hidden" name="log_id" value="%s">`, esc(active.ID))
			b.WriteString(`<label>Details<textarea name="details" required></textarea></label>`)
			b.WriteString(`<button type="submit" class="danger">Stop Timer</button>`)
			b.WriteString(`</form></section>`)
		} else {
			b.WriteString(`<section class="card timer"><h2>Start a timer</h2>`)
			b.WriteString(`<form method="post" action="/start">`)
			b.WriteString(`<label>Client<input type="text" name="client" required></label>`)
			b.WriteString(`<label>Task<input type="text" name="task" required></label>`)
			b.WriteString(`<button type="submit">Start Timer</button>`)
			b.WriteString(`</form></section>`)
		}

		fmt.Fprintf(&b, `<section class="card"><h2>This month</h2><p class="muted">Today: %s</p>`, esc(today))
		if len(logs) == 0 {
			b.WriteString(`<p class="muted">No completed entries yet this month.</p>`)
		} else {
			b.WriteString(`<table><thead><tr>`)
			b.WriteString(`<th>Date</th><th>Client</th><th>Task</th><th>Details</th><th>Start</th><th>End</th><th>Hours</th><th></th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, log := range logs {
				b.WriteString(`<tr>`)
				fmt.Fprintf(&b, `<td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
					esc(log.LogDate), esc(log.Client), esc(log.Task), esc(log.Details))
				fmt.Fprintf(&b, `<td>%s</td><td>%s</td><td class="num">%s</td>`,
					esc(log.StartClock()), esc(log.EndClock()), fmtHours(log.Hours))
				b.WriteString(`<td class="actions">`)
				fmt.Fprintf(&b, `<a class="button small" href="/logs/%s/edit">Edit</a>`, esc(log.ID))
				fmt.Fprintf(&b, `<form method="post" action="/logs/%s/delete"><button type="submit" class="small danger">Delete</button></form>`, esc(log.ID))
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout("Dashboard", body)
}
