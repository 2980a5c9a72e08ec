package response

import (
	"time"

	"tradehub/internal/domain/entities"
)

type ReviewResponse struct {
	JobID          string    `json:"job_id"`
	CustomerID     string    `json:"customer_id"`
	TradespersonID string    `json:"tradesperson_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		JobID:          r.JobID,
		CustomerID:     r.CustomerID,
		TradespersonID: r.TradespersonID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}

type SavedJobResponse struct {
	JobID   string    `json:"job_id"`
	SavedAt time.Time `json:"saved_at"`
}

func FromSavedJob(s entities.SavedJob) SavedJobResponse {
	return SavedJobResponse{JobID: s.JobID, SavedAt: s.CreatedAt}
}

func FromSavedJobs(saved []entities.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(saved))
	for _, s := range saved {
		out = append(out, FromSavedJob(s))
	}
	return out
}
