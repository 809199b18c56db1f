package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hourlog/timesheet/internal/model"
)

var (
	ErrLogNotFound = errors.New("log not found")

	// ErrTimerRunning is returned when a start is attempted while
	// another record still has no end time.
	ErrTimerRunning = errors.New("a timer is already running")
)

type LogRepository interface {
	Start(log *model.LogRecord) error
	Active() (*model.LogRecord, error)
	ByID(id string) (*model.LogRecord, error)
	Complete(id string, endTime time.Time, details string, hours float64) error
	Update(log *model.LogRecord) error
	Delete(id string) error
	CompletedInRange(startDate, endDate string) ([]*model.LogRecord, error)
	CompletedInMonth(month string) ([]*model.LogRecord, error)
}

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

// Start inserts a running record, guarded against a second active timer
// in the same statement. The conditional insert makes the
// single-active-timer check atomic instead of read-then-write.
func (r *logRepository) Start(log *model.LogRecord) error {
	query := `INSERT INTO logs (id, log_date, client, task, details, start_time, created_at)
	          SELECT $1, $2, $3, $4, $5, $6, $7
	          WHERE NOT EXISTS (SELECT 1 FROM logs WHERE end_time IS NULL)`

	result, err := r.db.Exec(query,
		log.ID,
		log.LogDate,
		log.Client,
		log.Task,
		log.Details,
		log.StartTime,
		log.CreatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTimerRunning
	}

	return nil
}

func (r *logRepository) Active() (*model.LogRecord, error) {
	log := &model.LogRecord{}
	query := `SELECT * FROM logs WHERE end_time IS NULL ORDER BY start_time DESC LIMIT 1`

	err := r.db.Get(log, query)
	if err == sql.ErrNoRows {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return log, nil
}

func (r *logRepository) ByID(id string) (*model.LogRecord, error) {
	log := &model.LogRecord{}
	query := `SELECT * FROM logs WHERE id = $1`

	err := r.db.Get(log, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	return log, nil
}

// Complete stops a running record: end time, details and computed hours
// land together.
func (r *logRepository) Complete(id string, endTime time.Time, details string, hours float64) error {
	query := `UPDATE logs
	          SET end_time = $1, details = $2, hours = $3
	          WHERE id = $4`

	result, err := r.db.Exec(query, endTime, details, hours, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

// Update persists a full edit, including nullable end_time/hours so an
// edit without an end time reverts the record to running.
func (r *logRepository) Update(log *model.LogRecord) error {
	query := `UPDATE logs
	          SET log_date = $1, client = $2, task = $3, details = $4,
	              start_time = $5, end_time = $6, hours = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		log.LogDate,
		log.Client,
		log.Task,
		log.Details,
		log.StartTime,
		log.EndTime,
		log.Hours,
		log.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

func (r *logRepository) Delete(id string) error {
	query := `DELETE FROM logs WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

// CompletedInRange returns completed records with log_date in the
// inclusive range, ordered client, task, date for the report grouping.
func (r *logRepository) CompletedInRange(startDate, endDate string) ([]*model.LogRecord, error) {
	var logs []*model.LogRecord
	query := `SELECT * FROM logs
	          WHERE log_date BETWEEN $1 AND $2 AND hours IS NOT NULL
	          ORDER BY client, task, log_date`

	err := r.db.Select(&logs, query, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// CompletedInMonth returns completed records whose log_date falls in
// the given YYYY-MM month, newest first.
func (r *logRepository) CompletedInMonth(month string) ([]*model.LogRecord, error) {
	var logs []*model.LogRecord
	query := `SELECT * FROM logs
	          WHERE substr(log_date, 1, 7) = $1 AND hours IS NOT NULL
	          ORDER BY log_date DESC, start_time DESC`

	err := r.db.Select(&logs, query, month)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
