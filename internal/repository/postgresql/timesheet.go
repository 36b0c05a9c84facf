package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/timesheet"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func scanTimesheets(rows pgx.Rows) ([]timesheet.Timesheet, error) {
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		var t timesheet.Timesheet
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.WeekStart, &t.Hours, &t.Status); err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}

	return timesheets, rows.Err()
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, week_start, hours, status
		FROM timesheets
		ORDER BY week_start DESC, id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return scanTimesheets(rows)
}

// ListLatestPerEmployee implements timesheet.TimesheetRepository.
// DISTINCT ON keeps the first row per employee under the given ordering:
// greatest week_start, ties broken by greatest id, so the result is
// deterministic.
func (r *timesheetRepositoryImpl) ListLatestPerEmployee(ctx context.Context) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (t.employee_id)
		       t.id, t.employee_id, t.week_start, t.hours, t.status
		FROM timesheets t
		ORDER BY t.employee_id, t.week_start DESC, t.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return scanTimesheets(rows)
}

// ListByUserID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByUserID(ctx context.Context, userID int64) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.week_start, t.hours, t.status
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		JOIN users u ON u.id = e.user_id
		WHERE u.id = $1
		ORDER BY t.week_start DESC, t.id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	return scanTimesheets(rows)
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id int64) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, week_start, hours, status
		FROM timesheets
		WHERE id = $1
	`

	var found timesheet.Timesheet
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.EmployeeID,
		&found.WeekStart,
		&found.Hours,
		&found.Status,
	)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return found, nil
}

// Approve implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Approve(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE timesheets SET status = $1 WHERE id = $2`, timesheet.StatusApproved, id)
	return err
}

// CreateIfMissing implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) CreateIfMissing(ctx context.Context, t timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (employee_id, week_start, hours, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, week_start) DO NOTHING
	`

	_, err := q.Exec(ctx, query, t.EmployeeID, t.WeekStart, t.Hours, t.Status)
	return err
}
