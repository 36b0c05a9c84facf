package timesheet

import "context"

type TimesheetService interface {
	// List returns all timesheets, or one latest row per employee when
	// latestOnly is set.
	List(ctx context.Context, latestOnly bool) ([]TimesheetResponse, error)
	// ListMine returns the authenticated user's own timesheets.
	ListMine(ctx context.Context) ([]TimesheetResponse, error)
	// Approve moves a pending timesheet to approved. Approving an
	// already-approved row is a no-op that reports Already.
	Approve(ctx context.Context, id int64) (ApproveResponse, error)
}
