package service

import (
	"time"

	"github.com/hourlog/timesheet/internal/model"
	"github.com/hourlog/timesheet/internal/repository"
)

// Report is the aggregated client/task summary over an inclusive date
// range, plus the raw rows that produced it.
type Report struct {
	StartDate  string
	EndDate    string
	Clients    []ClientSummary
	GrandTotal float64
	Logs       []*model.LogRecord
}

type ClientSummary struct {
	Name  string
	Tasks []TaskSummary
	Total float64
}

type TaskSummary struct {
	Name  string
	Hours float64
}

type ReportService struct {
	repo repository.LogRepository
	now  func() time.Time
}

func NewReportService(repo repository.LogRepository) *ReportService {
	return &ReportService{
		repo: repo,
		now:  time.Now,
	}
}

// Report aggregates completed records between startDate and endDate
// inclusive. If either bound is missing the range defaults to the
// current calendar month, first day through last day.
func (s *ReportService) Report(startDate, endDate string) (*Report, error) {
	if startDate == "" || endDate == "" {
		startDate, endDate = MonthBounds(s.now())
	}

	logs, err := s.repo.CompletedInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := aggregate(logs)
	report.StartDate = startDate
	report.EndDate = endDate
	return report, nil
}

// clientAcc accumulates in full float precision; rounding happens once
// after all rows are summed so per-row rounding error cannot compound.
type clientAcc struct {
	total     float64
	taskOrder []string
	tasks     map[string]float64
}

func aggregate(logs []*model.LogRecord) *Report {
	var clientOrder []string
	clients := map[string]*clientAcc{}
	grand := 0.0

	for _, log := range logs {
		if log.Hours == nil {
			continue
		}
		hours := *log.Hours

		acc, ok := clients[log.Client]
		if !ok {
			acc = &clientAcc{tasks: map[string]float64{}}
			clients[log.Client] = acc
			clientOrder = append(clientOrder, log.Client)
		}

		if _, ok := acc.tasks[log.Task]; !ok {
			acc.taskOrder = append(acc.taskOrder, log.Task)
		}

		acc.tasks[log.Task] += hours
		acc.total += hours
		grand += hours
	}

	report := &Report{Logs: logs, GrandTotal: model.RoundHours(grand)}
	for _, name := range clientOrder {
		acc := clients[name]
		summary := ClientSummary{Name: name, Total: model.RoundHours(acc.total)}
		for _, task := range acc.taskOrder {
			summary.Tasks = append(summary.Tasks, TaskSummary{
				Name:  task,
				Hours: model.RoundHours(acc.tasks[task]),
			})
		}
		report.Clients = append(report.Clients, summary)
	}

	return report
}

// MonthBounds returns the first and last day of t's calendar month as
// YYYY-MM-DD strings. Day 0 of the next month normalizes to the last
// day of this one, so month lengths and leap years come out right.
func MonthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return first.Format(model.DateFormat), last.Format(model.DateFormat)
}
