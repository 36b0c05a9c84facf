package payslip

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wageflow/payroll-backend-go/internal/domain/employee"
	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/pkg/jwt"
)

type fakePayslipRepo struct {
	details      map[int64]payslip.Detail
	byEmployee   map[int64][]payslip.Payslip
	updatedPaths map[int64]string
}

func (f *fakePayslipRepo) ListByEmployeeID(ctx context.Context, employeeID int64) ([]payslip.Payslip, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakePayslipRepo) GetDetail(ctx context.Context, id int64) (payslip.Detail, error) {
	d, ok := f.details[id]
	if !ok {
		return payslip.Detail{}, pgx.ErrNoRows
	}
	return d, nil
}

func (f *fakePayslipRepo) UpdateDocumentPath(ctx context.Context, id int64, path string) error {
	if f.updatedPaths == nil {
		f.updatedPaths = map[int64]string{}
	}
	f.updatedPaths[id] = path
	return nil
}

func (f *fakePayslipRepo) Upsert(ctx context.Context, p payslip.Payslip) (int64, error) {
	panic("not used in tests")
}

type fakeEmployeeRepo struct {
	byUser map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	panic("not used in tests")
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	e, ok := f.byUser[userID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, fullName, email string, rate decimal.Decimal, userID int64) (int64, error) {
	panic("not used in tests")
}

type fakeArchive struct {
	uploads map[string][]byte
}

func (f *fakeArchive) Upload(ctx context.Context, file io.Reader, path string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[path] = data
	return path, nil
}

func (f *fakeArchive) GetURL(ctx context.Context, path string) (string, error) {
	return "http://localhost:5050/storage/payslips/" + path, nil
}

func (f *fakeArchive) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.uploads[path]
	return ok, nil
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func sampleDetail() payslip.Detail {
	owner := int64(2)
	return payslip.Detail{
		Payslip: payslip.Payslip{
			ID:          3,
			EmployeeID:  7,
			PeriodStart: date("2025-10-01"),
			PeriodEnd:   date("2025-10-14"),
			Gross:       decimal.RequireFromString("1000.00"),
			Net:         decimal.RequireFromString("800.00"),
		},
		EmployeeName: "Abby Gingell",
		OwnerUserID:  &owner,
	}
}

func authedContext(t *testing.T, userID int64, email, role string) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	token, _, err := jwtService.GenerateAccessToken(userID, email, role)
	require.NoError(t, err)
	decoded, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), decoded, nil)
}

func TestPayslipService_ListMine_NoProfileIsEmptyList(t *testing.T) {
	svc := NewPayslipService(&fakePayslipRepo{}, &fakeEmployeeRepo{}, nil)

	out, err := svc.ListMine(authedContext(t, 9, "noprofile@wageflow.com", "employee"))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestPayslipService_ListMine_OrdersAndSummarizes(t *testing.T) {
	emp := employee.Employee{ID: 7, FullName: "Abby Gingell"}
	repo := &fakePayslipRepo{byEmployee: map[int64][]payslip.Payslip{
		7: {
			{ID: 3, EmployeeID: 7, PeriodStart: date("2025-10-01"), PeriodEnd: date("2025-10-14"), Gross: decimal.RequireFromString("1000.00"), Net: decimal.RequireFromString("800.00")},
			{ID: 4, EmployeeID: 7, PeriodStart: date("2025-10-15"), PeriodEnd: date("2025-10-28"), Gross: decimal.RequireFromString("940.00"), Net: decimal.RequireFromString("752.00")},
		},
	}}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{byUser: map[int64]employee.Employee{2: emp}}, nil)

	out, err := svc.ListMine(authedContext(t, 2, "abby.gingell@wageflow.com", "employee"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-10-01 to 2025-10-14", out[0].Period)
	assert.InDelta(t, 1000.00, out[0].Gross, 0.001)
	assert.InDelta(t, 800.00, out[0].Net, 0.001)
	assert.Equal(t, "/api/payslips/3/pdf", out[0].PDFURL)
}

func TestPayslipService_RenderDocument_NotFound(t *testing.T) {
	svc := NewPayslipService(&fakePayslipRepo{}, &fakeEmployeeRepo{}, nil)

	_, err := svc.RenderDocument(authedContext(t, 1, "manager@company.com", "manager"), 404)
	assert.ErrorIs(t, err, payslip.ErrPayslipNotFound)
}

func TestPayslipService_RenderDocument_EmployeeCannotFetchOthers(t *testing.T) {
	repo := &fakePayslipRepo{details: map[int64]payslip.Detail{3: sampleDetail()}}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{}, nil)

	_, err := svc.RenderDocument(authedContext(t, 5, "alex.white@wageflow.com", "employee"), 3)
	assert.ErrorIs(t, err, payslip.ErrForbidden)
}

func TestPayslipService_RenderDocument_OwnerAllowed(t *testing.T) {
	repo := &fakePayslipRepo{details: map[int64]payslip.Detail{3: sampleDetail()}}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{}, nil)

	doc, err := svc.RenderDocument(authedContext(t, 2, "abby.gingell@wageflow.com", "employee"), 3)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
}

func TestPayslipService_RenderDocument_ManagerAllowed(t *testing.T) {
	repo := &fakePayslipRepo{details: map[int64]payslip.Detail{3: sampleDetail()}}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{}, nil)

	doc, err := svc.RenderDocument(authedContext(t, 1, "manager@company.com", "manager"), 3)
	require.NoError(t, err)
	assert.Equal(t, "payslip_3.pdf", doc.Filename)
}

func TestPayslipService_RenderDocument_UnlinkedOwnerForbidden(t *testing.T) {
	detail := sampleDetail()
	detail.OwnerUserID = nil
	repo := &fakePayslipRepo{details: map[int64]payslip.Detail{3: detail}}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{}, nil)

	_, err := svc.RenderDocument(authedContext(t, 2, "abby.gingell@wageflow.com", "employee"), 3)
	assert.ErrorIs(t, err, payslip.ErrForbidden)
}

func TestPayslipService_RenderDocument_ArchivesCopy(t *testing.T) {
	repo := &fakePayslipRepo{details: map[int64]payslip.Detail{3: sampleDetail()}}
	archive := &fakeArchive{}
	svc := NewPayslipService(repo, &fakeEmployeeRepo{}, archive)

	_, err := svc.RenderDocument(authedContext(t, 1, "manager@company.com", "manager"), 3)
	require.NoError(t, err)

	stored, ok := archive.uploads["7/payslip_3.pdf"]
	require.True(t, ok, "rendered copy should be archived under the employee directory")
	assert.True(t, bytes.HasPrefix(stored, []byte("%PDF")))
	assert.Equal(t, "7/payslip_3.pdf", repo.updatedPaths[3])
}
