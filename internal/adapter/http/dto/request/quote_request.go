package request

import (
	"strings"

	"tradehub/internal/usecase"
)

// SubmitQuoteRequest is a tradesperson's offer against an open job. Amounts
// are integer minor units (pence); deposit_minor_units of zero means the
// platform default deposit applies at charge time.
type SubmitQuoteRequest struct {
	PriceMinor    int64  `json:"price_minor_units" binding:"required"`
	DepositMinor  int64  `json:"deposit_minor_units"`
	Description   string `json:"description"`
	EstimatedDays int    `json:"estimated_days"`
	AvailableDate string `json:"available_date"`
}

func (r SubmitQuoteRequest) ToTerms() usecase.QuoteTerms {
	return usecase.QuoteTerms{
		PriceMinor:    r.PriceMinor,
		DepositMinor:  r.DepositMinor,
		Description:   strings.TrimSpace(r.Description),
		EstimatedDays: r.EstimatedDays,
		AvailableDate: strings.TrimSpace(r.AvailableDate),
	}
}
