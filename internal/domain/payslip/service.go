package payslip

import (
	"context"

	"github.com/wageflow/payroll-backend-go/internal/pkg/document"
)

type PayslipService interface {
	// ListMine returns the authenticated user's own payslips. A user with
	// no employee profile has none; that is an empty list, not an error.
	ListMine(ctx context.Context) ([]PayslipResponse, error)
	// RenderDocument re-renders the payslip document from current database
	// values. Employees may only fetch their own; managers may fetch any.
	RenderDocument(ctx context.Context, id int64) (document.Document, error)
}
