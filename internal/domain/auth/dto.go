package auth

import "github.com/wageflow/payroll-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate only checks presence: login must not reveal whether an email
// is registered, so format problems fall through to the credential check.
func (r *LoginRequest) Validate() error {
	if validator.IsEmpty(r.Email) || validator.IsEmpty(r.Password) {
		return ErrMissingCredentials
	}
	return nil
}

type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ProfileResponse struct {
	UserID     int64   `json:"user_id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	EmployeeID *int64  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Rate       float64 `json:"rate"`
}
