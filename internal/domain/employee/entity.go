package employee

import "github.com/shopspring/decimal"

type Employee struct {
	ID       int64
	UserID   *int64 // nullable: a profile may exist before a login is provisioned
	FullName string
	Email    *string
	Rate     decimal.Decimal // money per hour
}
