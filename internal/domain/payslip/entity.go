package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payslip struct {
	ID          int64
	EmployeeID  int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	Gross       decimal.Decimal
	Net         decimal.Decimal
	PDFPath     *string
}

// Detail is the render projection: the payslip joined with its owning
// employee and, through it, the login that may view it.
type Detail struct {
	Payslip
	EmployeeName string
	OwnerUserID  *int64
}
