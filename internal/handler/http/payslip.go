package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/payslip"
	"github.com/wageflow/payroll-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// ListMine implements PayslipHandler.
func (h *PayslipHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	payslips, err := h.payslipService.ListMine(r.Context())
	if err != nil {
		slog.Error("Payslip list mine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// Download implements PayslipHandler. The document is streamed inline when
// it is a PDF; the text fallback goes out as an attachment.
func (h *PayslipHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.HandleError(w, payslip.ErrPayslipNotFound)
		return
	}

	doc, err := h.payslipService.RenderDocument(r.Context(), id)
	if err != nil {
		slog.Error("Payslip render service error", "payslip_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	disposition := "inline"
	if doc.ContentType != "application/pdf" {
		disposition = "attachment"
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		slog.Error("Payslip write error", "payslip_id", id, "error", err)
	}
}
