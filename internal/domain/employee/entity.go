package employee

import "github.com/shopspring/decimal"

const (
	// SiteAll disables site filtering.
	SiteAll = "All"
	// SiteUnassigned labels employees without a current site.
	SiteUnassigned = "Unassigned"
)

// Employee - Staff member as stored in the employees sheet
type Employee struct {
	ID          string
	Name        string
	CurrentSite string
	Role        string
	RateFactory decimal.Decimal
	RateOffsite decimal.Decimal
	RateOT      decimal.Decimal
}

// SiteLabel returns the current site, or SiteUnassigned when blank.
func (e Employee) SiteLabel() string {
	if e.CurrentSite == "" {
		return SiteUnassigned
	}
	return e.CurrentSite
}
