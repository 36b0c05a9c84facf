package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Can approve timesheets and view any payslip
	RoleEmployee Role = "employee" // Regular employee, sees only their own data
)

type User struct {
	ID           int64
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
}

// IsManager checks if user can act on other employees' records
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
