package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/hourlog/timesheet/internal/service"
)

func fmtTotal(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// Report renders the client/task summary for a date range plus the
// rows behind it.
func Report(report *service.Report) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="card"><h2>Report range</h2>`)
		b.WriteString(`<form method="get" action="/report" class="range-form">`)
		fmt.Fprintf(&b, `<label>From<input type="date" name="start_date" value="%s"></label>`, esc(report.StartDate))
		fmt.Fprintf(&b, `<label>To<input type="date" name="end_date" value="%s"></label>`, esc(report.EndDate))
		b.WriteString(`<button type="submit">Run</button>`)
		b.WriteString(`</form></section>`)

		b.WriteString(`<section class="card"><h2>Summary</h2>`)
		if len(report.Clients) == 0 {
			b.WriteString(`<p class="muted">No completed entries in this range.</p>`)
		} else {
			for _, client := range report.Clients {
				fmt.Fprintf(&b, `<h3>%s <span class="num">%s h</span></h3><ul class="tasks">`,
					esc(client.Name), fmtTotal(client.Total))
				for _, task := range client.Tasks {
					fmt.Fprintf(&b, `<li>%s <span class="num">%s h</span></li>`,
						esc(task.Name), fmtTotal(task.Hours))
				}
				b.WriteString(`</ul>`)
			}
			fmt.Fprintf(&b, `<p class="grand-total">Grand total: <span class="num">%s h</span></p>`,
				fmtTotal(report.GrandTotal))
		}
		b.WriteString(`</section>`)

		if len(report.Logs) > 0 {
			b.WriteString(`<section class="card"><h2>Entries</h2><table><thead><tr>`)
			b.WriteString(`<th>Date</th><th>Client</th><th>Task</th><th>Details</th><th>Hours</th>`)
			b.WriteString(`</tr></thead><tbody>`)
			for _, log := range report.Logs {
				fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td></tr>`,
					esc(log.LogDate), esc(log.Client), esc(log.Task), esc(log.Details), fmtHours(log.Hours))
			}
			b.WriteString(`</tbody></table></section>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})

	return layout("Report", body)
}
