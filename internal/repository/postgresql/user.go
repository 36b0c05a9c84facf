package postgresql

import (
	"context"

	"github.com/wageflow/payroll-backend-go/internal/domain/user"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository. Email comparison is
// case-insensitive: the address is an identifier, not a string.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE lower(email) = lower($1)
		LIMIT 1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.CreatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.CreatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetProfileByID implements user.UserRepository.
func (r *userRepositoryImpl) GetProfileByID(ctx context.Context, id int64) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.id                               AS user_id,
			u.email                            AS email,
			u.role                             AS role,
			e.id                               AS employee_id,
			COALESCE(e.full_name, u.email)     AS full_name,
			COALESCE(e.rate, 0)                AS rate
		FROM users u
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1
	`

	var profile user.Profile
	err := q.QueryRow(ctx, query, id).Scan(
		&profile.UserID,
		&profile.Email,
		&profile.Role,
		&profile.EmployeeID,
		&profile.FullName,
		&profile.Rate,
	)
	if err != nil {
		return user.Profile{}, err
	}

	return profile, nil
}

// Upsert implements user.UserRepository.
func (r *userRepositoryImpl) Upsert(ctx context.Context, email string, role user.Role, passwordHash string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, role, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET role = EXCLUDED.role, password_hash = EXCLUDED.password_hash
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, email, role, passwordHash).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}
