package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wageflow/payroll-backend-go/internal/domain/timesheet"
	"github.com/wageflow/payroll-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// List implements TimesheetHandler.
func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	latestOnly := isTruthy(r.URL.Query().Get("latest"))

	timesheets, err := h.timesheetService.List(r.Context(), latestOnly)
	if err != nil {
		slog.Error("Timesheet list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListMine implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	timesheets, err := h.timesheetService.ListMine(r.Context())
	if err != nil {
		slog.Error("Timesheet list mine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// Approve implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.HandleError(w, timesheet.ErrTimesheetNotFound)
		return
	}

	result, err := h.timesheetService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Timesheet approve service error", "timesheet_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Timesheet approved", "timesheet_id", id, "already", result.Already)
	response.Success(w, result)
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}
