package employee

type EmployeeResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Rate  float64 `json:"rate"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.ID,
		Name:  e.FullName,
		Email: e.Email,
		Rate:  e.Rate.InexactFloat64(),
	}
}
