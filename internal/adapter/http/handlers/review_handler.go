package handlers

import (
	"errors"
	"log"
	"net/http"

	"tradehub/internal/adapter/http/dto/request"
	response "tradehub/internal/adapter/http/dto/response"
	"tradehub/internal/adapter/http/middleware"
	"tradehub/internal/usecase"
	"tradehub/pkg"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for job reviews.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
	gate    *usecase.AuthorizationGate
}

func NewReviewHandler(uc usecase.IReviewUseCase, gate *usecase.AuthorizationGate) *ReviewHandler {
	return &ReviewHandler{usecase: uc, gate: gate}
}

// LeaveReview records the customer's rating of a completed job.
//
//	@Summary		Leave a review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"
//	@Param			review	body		request.LeaveReviewRequest	true	"Rating and comment"
//	@Success		201		{object}	response.ReviewResponse
//	@Failure		403		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/review [post]
func (h *ReviewHandler) LeaveReview(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	log.Printf("[review][handler] create start job_id=%s user_id=%s", jobID, ident.UserID)

	var req request.LeaveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[review][handler] invalid payload job_id=%s err=%v", jobID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpLeaveReview, jobID); err != nil {
		writeError(c, mapReviewError(err))
		return
	}

	created, err := h.usecase.LeaveReview(c.Request.Context(), jobID, ident.UserID, req.Rating, req.Comment)
	if err != nil {
		log.Printf("[review][handler] create failed job_id=%s err=%v", jobID, err)
		writeError(c, mapReviewError(err))
		return
	}
	log.Printf("[review][handler] create success job_id=%s rating=%d", jobID, created.Rating)

	c.JSON(http.StatusCreated, response.FromReview(created))
}

// GetReview returns the review on a job.
//
//	@Summary		Get a job's review
//	@Tags			reviews
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	response.ReviewResponse
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/review [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	jobID := c.Param("job_id")

	review, err := h.usecase.GetByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[review][handler] get failed job_id=%s err=%v", jobID, err)
		writeError(c, mapReviewError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReview(review))
}

// ListTradespersonReviews returns every review left for a tradesperson.
//
//	@Summary		List a tradesperson's reviews
//	@Tags			reviews
//	@Produce		json
//	@Param			tradesperson_id	path	string	true	"Tradesperson ID"
//	@Success		200				{array}	response.ReviewResponse
//	@Router			/v1/tradespeople/{tradesperson_id}/reviews [get]
func (h *ReviewHandler) ListTradespersonReviews(c *gin.Context) {
	tradespersonID := c.Param("tradesperson_id")

	reviews, err := h.usecase.ListByTradespersonID(c.Request.Context(), tradespersonID)
	if err != nil {
		log.Printf("[review][handler] list failed tradesperson_id=%s err=%v", tradespersonID, err)
		writeError(c, mapReviewError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller is not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrNotJobOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotCompleted), errors.Is(err, usecase.ErrAlreadyReviewed):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidReviewData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
