package timesheet

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// IsApproved compares case-insensitively: historic rows may carry the
// status in any casing, only transitions write the canonical uppercase.
func (s Status) IsApproved() bool {
	return strings.EqualFold(string(s), string(StatusApproved))
}

type Timesheet struct {
	ID         int64
	EmployeeID int64
	WeekStart  time.Time
	Hours      decimal.Decimal
	Status     Status
}
