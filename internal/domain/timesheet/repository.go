package timesheet

import "context"

type TimesheetRepository interface {
	// List returns every row, week_start descending, id descending.
	List(ctx context.Context) ([]Timesheet, error)
	// ListLatestPerEmployee returns exactly one row per employee: the
	// greatest week_start, ties broken by greatest id.
	ListLatestPerEmployee(ctx context.Context) ([]Timesheet, error)
	// ListByUserID returns the rows of the employee linked to the user,
	// same ordering as List.
	ListByUserID(ctx context.Context, userID int64) ([]Timesheet, error)
	GetByID(ctx context.Context, id int64) (Timesheet, error)
	// Approve sets the canonical approved status on the row.
	Approve(ctx context.Context, id int64) error
	// CreateIfMissing inserts a row unless one already exists for the
	// employee/week pair. Used by the seeder.
	CreateIfMissing(ctx context.Context, t Timesheet) error
}
