package payslip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/employee"
	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/pkg/document"
	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
	"github.com/wageflow/payroll-backend-go/internal/pkg/storage"
)

type PayslipServiceImpl struct {
	payslipRepo  payslip.PayslipRepository
	employeeRepo employee.EmployeeRepository
	archive      storage.FileStorage
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	archive storage.FileStorage,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		archive:      archive,
	}
}

// ListMine implements payslip.PayslipService.
func (s *PayslipServiceImpl) ListMine(ctx context.Context) ([]payslip.PayslipResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		// No employee profile means no payslips, not a failure.
		if errors.Is(err, pgx.ErrNoRows) {
			return []payslip.PayslipResponse{}, nil
		}
		return nil, fmt.Errorf("failed to resolve employee for user %d: %w", identity.UserID, err)
	}

	rows, err := s.payslipRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for employee %d: %w", emp.ID, err)
	}

	out := make([]payslip.PayslipResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, payslip.ToResponse(p))
	}
	return out, nil
}

// RenderDocument implements payslip.PayslipService. The document is always
// rebuilt from current database values; nothing is served from cache, so an
// edit made after a previous download shows up on the next one.
func (s *PayslipServiceImpl) RenderDocument(ctx context.Context, id int64) (document.Document, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	detail, err := s.payslipRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, payslip.ErrPayslipNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get payslip %d: %w", id, err)
	}

	// Employees may only fetch their own payslip; managers may fetch any.
	if !identity.IsManager() {
		if detail.OwnerUserID == nil || *detail.OwnerUserID != identity.UserID {
			return document.Document{}, payslip.ErrForbidden
		}
	}

	data := document.PayslipData{
		ID:           detail.ID,
		EmployeeName: detail.EmployeeName,
		PeriodStart:  detail.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    detail.PeriodEnd.Format("2006-01-02"),
		Gross:        detail.Gross,
		Net:          detail.Net,
	}

	doc, err := document.RenderPDF(data)
	if err != nil {
		// The text rendition carries the same lines; the caller just gets
		// a different content type.
		slog.Warn("payslip PDF rendering failed, serving text fallback", "payslip_id", id, "error", err)
		doc = document.RenderText(data)
	}

	s.archiveCopy(ctx, detail, doc)

	return doc, nil
}

// archiveCopy keeps the latest rendered file on disk and records its path.
// Best-effort only: the download already holds the rendered bytes.
func (s *PayslipServiceImpl) archiveCopy(ctx context.Context, detail payslip.Detail, doc document.Document) {
	if s.archive == nil {
		return
	}

	path := fmt.Sprintf("%d/%s", detail.EmployeeID, doc.Filename)
	stored, err := s.archive.Upload(ctx, bytes.NewReader(doc.Data), path)
	if err != nil {
		slog.Warn("failed to archive rendered payslip", "payslip_id", detail.ID, "error", err)
		return
	}

	if err := s.payslipRepo.UpdateDocumentPath(ctx, detail.ID, stored); err != nil {
		slog.Warn("failed to record payslip document path", "payslip_id", detail.ID, "error", err)
	}
}
