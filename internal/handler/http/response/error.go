package response

import (
	"errors"
	"net/http"

	"github.com/wageflow/payroll-backend-go/internal/domain/auth"
	"github.com/wageflow/payroll-backend-go/internal/domain/employee"
	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/domain/timesheet"
	"github.com/wageflow/payroll-backend-go/internal/domain/user"
)

// HandleError maps domain errors to HTTP responses. Auth error messages are
// surfaced verbatim; clients branch on them.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingBearer),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	case errors.Is(err, payslip.ErrForbidden):
		Forbidden(w, "forbidden")

	case errors.Is(err, timesheet.ErrTimesheetNotFound),
		errors.Is(err, payslip.ErrPayslipNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "not_found")

	// Default
	default:
		InternalServerError(w, "server_error")
	}
}
