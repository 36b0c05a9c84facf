package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	// Upsert creates or updates an employee by email and returns its id.
	// Used by the seeder; safe to run repeatedly.
	Upsert(ctx context.Context, fullName, email string, rate decimal.Decimal, userID int64) (int64, error)
}
