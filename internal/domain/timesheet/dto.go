package timesheet

import "strings"

type TimesheetResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	WeekStart  string  `json:"weekStart"`
	WeekEnd    *string `json:"weekEnd"` // not tracked in the schema, always null
	Hours      float64 `json:"hours"`
	Status     string  `json:"status"`
}

type ApproveResponse struct {
	OK      bool `json:"ok"`
	Already bool `json:"already,omitempty"`
}

func ToResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		WeekStart:  t.WeekStart.Format("2006-01-02"),
		WeekEnd:    nil,
		Hours:      t.Hours.InexactFloat64(),
		Status:     strings.ToLower(string(t.Status)),
	}
}
