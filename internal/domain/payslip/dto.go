package payslip

import "fmt"

type PayslipResponse struct {
	ID     int64   `json:"id"`
	Period string  `json:"period"`
	Gross  float64 `json:"gross"`
	Net    float64 `json:"net"`
	PDFURL string  `json:"pdfUrl"`
}

func ToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:     p.ID,
		Period: fmt.Sprintf("%s to %s", p.PeriodStart.Format("2006-01-02"), p.PeriodEnd.Format("2006-01-02")),
		Gross:  p.Gross.InexactFloat64(),
		Net:    p.Net.InexactFloat64(),
		PDFURL: fmt.Sprintf("/api/payslips/%d/pdf", p.ID),
	}
}
