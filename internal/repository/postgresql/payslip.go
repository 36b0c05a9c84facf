package postgresql

import (
	"context"

	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

// ListByEmployeeID implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID int64) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_start, period_end, gross, net, pdf_path
		FROM payslips
		WHERE employee_id = $1
		ORDER BY period_end ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var p payslip.Payslip
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd, &p.Gross, &p.Net, &p.PDFPath); err != nil {
			return nil, err
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

// GetDetail implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) GetDetail(ctx context.Context, id int64) (payslip.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_start, p.period_end, p.gross, p.net, p.pdf_path,
		       e.full_name, e.user_id
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var detail payslip.Detail
	err := q.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.EmployeeID,
		&detail.PeriodStart,
		&detail.PeriodEnd,
		&detail.Gross,
		&detail.Net,
		&detail.PDFPath,
		&detail.EmployeeName,
		&detail.OwnerUserID,
	)
	if err != nil {
		return payslip.Detail{}, err
	}

	return detail, nil
}

// UpdateDocumentPath implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) UpdateDocumentPath(ctx context.Context, id int64, path string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE payslips SET pdf_path = $1 WHERE id = $2`, path, id)
	return err
}

// Upsert implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) Upsert(ctx context.Context, p payslip.Payslip) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (employee_id, period_start, period_end, gross, net)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE
		SET gross = EXCLUDED.gross, net = EXCLUDED.net
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query, p.EmployeeID, p.PeriodStart, p.PeriodEnd, p.Gross, p.Net).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
