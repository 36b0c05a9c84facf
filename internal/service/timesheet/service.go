package timesheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/timesheet"
	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
)

type TimesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
}

func NewTimesheetService(timesheetRepo timesheet.TimesheetRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{timesheetRepo: timesheetRepo}
}

// List implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) List(ctx context.Context, latestOnly bool) ([]timesheet.TimesheetResponse, error) {
	var (
		rows []timesheet.Timesheet
		err  error
	)
	if latestOnly {
		rows, err = s.timesheetRepo.ListLatestPerEmployee(ctx)
	} else {
		rows, err = s.timesheetRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	return toResponses(rows), nil
}

// ListMine implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListMine(ctx context.Context) ([]timesheet.TimesheetResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	rows, err := s.timesheetRepo.ListByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets for user %d: %w", identity.UserID, err)
	}

	return toResponses(rows), nil
}

// Approve implements timesheet.TimesheetService. Approving a row that is
// already approved reports success without writing, so retries and double
// clicks cannot flip state.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, id int64) (timesheet.ApproveResponse, error) {
	row, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ApproveResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.ApproveResponse{}, fmt.Errorf("failed to get timesheet %d: %w", id, err)
	}

	if row.Status.IsApproved() {
		return timesheet.ApproveResponse{OK: true, Already: true}, nil
	}

	if err := s.timesheetRepo.Approve(ctx, id); err != nil {
		return timesheet.ApproveResponse{}, fmt.Errorf("failed to approve timesheet %d: %w", id, err)
	}

	return timesheet.ApproveResponse{OK: true}, nil
}

func toResponses(rows []timesheet.Timesheet) []timesheet.TimesheetResponse {
	out := make([]timesheet.TimesheetResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, timesheet.ToResponse(t))
	}
	return out
}
