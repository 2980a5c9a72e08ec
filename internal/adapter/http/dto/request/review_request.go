package request

// LeaveReviewRequest is the customer's rating of a completed job.
type LeaveReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
