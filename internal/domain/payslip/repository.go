package payslip

import (
	"context"
)

type PayslipRepository interface {
	// ListByEmployeeID returns payslips ordered by period_end ascending,
	// id ascending.
	ListByEmployeeID(ctx context.Context, employeeID int64) ([]Payslip, error)
	GetDetail(ctx context.Context, id int64) (Detail, error)
	// UpdateDocumentPath records where the latest rendered copy was archived.
	UpdateDocumentPath(ctx context.Context, id int64, path string) error
	// Upsert creates or updates a payslip for an employee/period pair and
	// returns its id. Used by the seeder; safe to run repeatedly.
	Upsert(ctx context.Context, p Payslip) (int64, error)
}
