package employee

import "github.com/shopspring/decimal"

type EmployeeFilter struct {
	Site   string `json:"site,omitempty"`
	Search string `json:"q,omitempty"`
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CurrentSite string          `json:"current_site"`
	Role        string          `json:"role"`
	RateFactory decimal.Decimal `json:"rate_factory"`
	RateOffsite decimal.Decimal `json:"rate_offsite"`
	RateOT      decimal.Decimal `json:"rate_ot"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int                `json:"total_count"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		CurrentSite: e.CurrentSite,
		Role:        e.Role,
		RateFactory: e.RateFactory,
		RateOffsite: e.RateOffsite,
		RateOT:      e.RateOT,
	}
}
