package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrForbidden       = errors.New("forbidden")
)
