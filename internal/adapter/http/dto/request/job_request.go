package request

import (
	"strings"

	"tradehub/internal/usecase"
)

// PostJobRequest is the customer-facing payload for posting a job.
type PostJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ServiceType string `json:"service_type" binding:"required"`
	Urgency     string `json:"urgency"`
	Location    string `json:"location"`
}

func (r PostJobRequest) ToInput() usecase.PostJobInput {
	return usecase.PostJobInput{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		ServiceType: strings.TrimSpace(r.ServiceType),
		Urgency:     strings.TrimSpace(r.Urgency),
		Location:    strings.TrimSpace(r.Location),
	}
}

// CancelJobRequest carries the optional cancellation reason.
type CancelJobRequest struct {
	Reason string `json:"reason"`
}
