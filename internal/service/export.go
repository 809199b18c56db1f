package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/hourlog/timesheet/internal/model"
	"github.com/hourlog/timesheet/internal/repository"
)

// csvTimestampFormat matches how timestamps read in a spreadsheet.
const csvTimestampFormat = "2006-01-02 15:04:05"

type ExportService struct {
	repo repository.LogRepository
	now  func() time.Time
}

func NewExportService(repo repository.LogRepository) *ExportService {
	return &ExportService{
		repo: repo,
		now:  time.Now,
	}
}

// MonthCSV renders the completed records of a YYYY-MM month as CSV and
// returns the bytes plus the download filename. An empty month defaults
// to the current one. A month with no completed records still yields a
// valid file with just the header row.
func (s *ExportService) MonthCSV(month string) ([]byte, string, error) {
	if month == "" {
		month = s.now().Format(model.MonthFormat)
	}

	logs, err := s.repo.CompletedInMonth(month)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	err = w.Write([]string{"Date", "Client", "Task", "Details", "Start Time", "End Time", "Hours"})
	if err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, log := range logs {
		end := ""
		if log.EndTime != nil {
			end = log.EndTime.Format(csvTimestampFormat)
		}
		hours := ""
		if log.Hours != nil {
			hours = strconv.FormatFloat(*log.Hours, 'f', -1, 64)
		}

		err = w.Write([]string{
			log.LogDate,
			log.Client,
			log.Task,
			log.Details,
			log.StartTime.Format(csvTimestampFormat),
			end,
			hours,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), "timesheet_" + month + ".csv", nil
}
