package postgresql

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wageflow/payroll-backend-go/internal/domain/employee"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, email, rate
		FROM employees
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.FullName, &e.Email, &e.Rate); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, full_name, email, rate
		FROM employees
		WHERE user_id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID,
		&found.UserID,
		&found.FullName,
		&found.Email,
		&found.Rate,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return found, nil
}

// Upsert implements employee.EmployeeRepository. The pre-existing user link
// wins: a profile that was provisioned ahead of its login keeps the link it
// gets first.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, fullName, email string, rate decimal.Decimal, userID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, full_name, email, rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    rate = EXCLUDED.rate,
		    user_id = COALESCE(employees.user_id, EXCLUDED.user_id)
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, userID, fullName, email, rate).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}
