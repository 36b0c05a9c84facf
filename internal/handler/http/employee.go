package http

import (
	"log/slog"
	"net/http"

	"github.com/wageflow/payroll-backend-go/internal/domain/employee"
	"github.com/wageflow/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
