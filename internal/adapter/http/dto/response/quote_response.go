package response

import (
	"time"

	"tradehub/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	TradespersonID string    `json:"tradesperson_id"`
	PriceMinor     int64     `json:"price_minor_units"`
	DepositMinor   int64     `json:"deposit_minor_units,omitempty"`
	Description    string    `json:"description,omitempty"`
	EstimatedDays  int       `json:"estimated_days,omitempty"`
	AvailableDate  string    `json:"available_date,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		JobID:          q.JobID,
		TradespersonID: q.TradespersonID,
		PriceMinor:     q.PriceMinor,
		DepositMinor:   q.DepositMinor,
		Description:    q.Description,
		EstimatedDays:  q.EstimatedDays,
		AvailableDate:  q.AvailableDate,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
