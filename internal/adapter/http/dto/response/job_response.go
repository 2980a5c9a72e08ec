package response

import (
	"time"

	"tradehub/internal/domain/entities"
)

type JobResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id"`
	TradespersonID string `json:"tradesperson_id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ServiceType    string `json:"service_type"`
	Urgency        string `json:"urgency,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status"`

	AcceptedQuoteID    string     `json:"accepted_quote_id,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		TradespersonID:     j.TradespersonID,
		Title:              j.Title,
		Description:        j.Description,
		ServiceType:        j.ServiceType,
		Urgency:            j.Urgency,
		Location:           j.Location,
		Status:             string(j.Status),
		AcceptedQuoteID:    j.AcceptedQuoteID,
		CancellationReason: j.CancellationReason,
		CancelledBy:        j.CancelledBy,
		CancelledAt:        j.CancelledAt,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
