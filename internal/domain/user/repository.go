package user

import (
	"context"

	"github.com/shopspring/decimal"
)

// Profile is the /auth/me projection: the user joined with the employee
// record linked to it, if any.
type Profile struct {
	UserID     int64
	Email      string
	Role       Role
	EmployeeID *int64
	FullName   string
	Rate       decimal.Decimal
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetProfileByID(ctx context.Context, id int64) (Profile, error)
	// Upsert creates or updates a user by email and returns its id.
	// Used by the seeder; safe to run repeatedly.
	Upsert(ctx context.Context, email string, role Role, passwordHash string) (int64, error)
}
