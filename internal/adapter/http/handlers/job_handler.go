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

// JobHandler handles HTTP requests for jobs and quotes.

type JobHandler struct {
	usecase usecase.IJobUseCase
	gate    *usecase.AuthorizationGate
}

func NewJobHandler(uc usecase.IJobUseCase, gate *usecase.AuthorizationGate) *JobHandler {
	return &JobHandler{usecase: uc, gate: gate}
}

// PostJob creates an open job for the calling customer.
//
//	@Summary		Post a job
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		request.PostJobRequest	true	"Job details"
//	@Success		201	{object}	response.JobResponse
//	@Failure		400	{object}	pkg.HTTPError
//	@Failure		401	{object}	pkg.HTTPError
//	@Failure		403	{object}	pkg.HTTPError
//	@Router			/v1/jobs [post]
func (h *JobHandler) PostJob(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	log.Printf("[job][handler] post start user_id=%s", ident.UserID)

	var req request.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[job][handler] post invalid payload user_id=%s err=%v", ident.UserID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpPostJob, ""); err != nil {
		writeError(c, mapJobError(err))
		return
	}

	created, err := h.usecase.PostJob(c.Request.Context(), ident.UserID, req.ToInput())
	if err != nil {
		log.Printf("[job][handler] post failed user_id=%s err=%v", ident.UserID, err)
		writeError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] post success job_id=%s user_id=%s", created.ID, ident.UserID)

	c.JSON(http.StatusCreated, response.FromJob(created))
}

// GetJob returns one job by id.
//
//	@Summary		Get a job
//	@Tags			jobs
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	response.JobResponse
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.usecase.GetJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[job][handler] get failed job_id=%s err=%v", jobID, err)
		writeError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListMyJobs returns the calling customer's jobs.
//
//	@Summary		List my jobs
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}	response.JobResponse
//	@Failure		401	{object}	pkg.HTTPError
//	@Router			/v1/jobs [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	ident, _ := middleware.Identity(c)

	jobs, err := h.usecase.ListJobsByCustomer(c.Request.Context(), ident.UserID)
	if err != nil {
		log.Printf("[job][handler] list failed user_id=%s err=%v", ident.UserID, err)
		writeError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// SubmitQuote records a tradesperson's offer on an open job.
//
//	@Summary		Submit a quote
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"
//	@Param			quote	body		request.SubmitQuoteRequest	true	"Quote terms"
//	@Success		201		{object}	response.QuoteResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		403		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/quotes [post]
func (h *JobHandler) SubmitQuote(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	log.Printf("[quote][handler] submit start job_id=%s user_id=%s", jobID, ident.UserID)

	var req request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[quote][handler] submit invalid payload job_id=%s err=%v", jobID, err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpSubmitQuote, ""); err != nil {
		writeError(c, mapJobError(err))
		return
	}

	created, err := h.usecase.SubmitQuote(c.Request.Context(), jobID, ident.UserID, req.ToTerms())
	if err != nil {
		log.Printf("[quote][handler] submit failed job_id=%s user_id=%s err=%v", jobID, ident.UserID, err)
		writeError(c, mapJobError(err))
		return
	}
	log.Printf("[quote][handler] submit success quote_id=%s job_id=%s", created.ID, jobID)

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// ListQuotes returns every quote on a job.
//
//	@Summary		List quotes for a job
//	@Tags			quotes
//	@Produce		json
//	@Param			job_id	path	string	true	"Job ID"
//	@Success		200		{array}	response.QuoteResponse
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/quotes [get]
func (h *JobHandler) ListQuotes(c *gin.Context) {
	jobID := c.Param("job_id")

	quotes, err := h.usecase.ListQuotesByJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[quote][handler] list failed job_id=%s err=%v", jobID, err)
		writeError(c, mapJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// AcceptQuote picks the winning quote and assigns the job.
//
//	@Summary		Accept a quote
//	@Tags			quotes
//	@Produce		json
//	@Param			job_id		path		string	true	"Job ID"
//	@Param			quote_id	path		string	true	"Quote ID"
//	@Success		200			{object}	response.JobResponse
//	@Failure		403			{object}	pkg.HTTPError
//	@Failure		404			{object}	pkg.HTTPError
//	@Failure		409			{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/quotes/{quote_id}/accept [post]
func (h *JobHandler) AcceptQuote(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	quoteID := c.Param("quote_id")
	log.Printf("[quote][handler] accept start job_id=%s quote_id=%s user_id=%s", jobID, quoteID, ident.UserID)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpAcceptQuote, jobID); err != nil {
		writeError(c, mapJobError(err))
		return
	}

	job, err := h.usecase.AcceptQuote(c.Request.Context(), jobID, quoteID, ident.UserID)
	if err != nil {
		log.Printf("[quote][handler] accept failed job_id=%s quote_id=%s err=%v", jobID, quoteID, err)
		writeError(c, mapJobError(err))
		return
	}
	log.Printf("[quote][handler] accept success job_id=%s quote_id=%s status=%s", jobID, quoteID, job.Status)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// CancelJob cancels an open or assigned job.
//
//	@Summary		Cancel a job
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job_id	path		string					true	"Job ID"
//	@Param			body	body		request.CancelJobRequest	false	"Cancellation reason"
//	@Success		200		{object}	response.JobResponse
//	@Failure		403		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	log.Printf("[job][handler] cancel start job_id=%s user_id=%s", jobID, ident.UserID)

	var req request.CancelJobRequest
	// Body is optional; a bare POST cancels without a reason.
	_ = c.ShouldBindJSON(&req)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpCancelJob, jobID); err != nil {
		writeError(c, mapJobError(err))
		return
	}

	job, err := h.usecase.CancelJob(c.Request.Context(), jobID, ident.UserID, ident.Role, req.Reason)
	if err != nil {
		log.Printf("[job][handler] cancel failed job_id=%s user_id=%s err=%v", jobID, ident.UserID, err)
		writeError(c, mapJobError(err))
		return
	}
	log.Printf("[job][handler] cancel success job_id=%s cancelled_by=%s", jobID, job.CancelledBy)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ExpireQuotes forces expiry evaluation for a job's pending quotes.
//
//	@Summary		Expire stale quotes on a job
//	@Tags			quotes
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	map[string]int
//	@Failure		403		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/jobs/{job_id}/expire-quotes [post]
func (h *JobHandler) ExpireQuotes(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpExpireQuotes, ""); err != nil {
		writeError(c, mapJobError(err))
		return
	}

	expired, err := h.usecase.ExpireQuotesForJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[quote][handler] expire failed job_id=%s err=%v", jobID, err)
		writeError(c, mapJobError(err))
		return
	}
	log.Printf("[quote][handler] expire success job_id=%s expired=%d", jobID, expired)

	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller is not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, usecase.ErrNotJobOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotOpen),
		errors.Is(err, usecase.ErrJobNotCancellable),
		errors.Is(err, usecase.ErrJobNotAssigned),
		errors.Is(err, usecase.ErrJobNotInProgress),
		errors.Is(err, usecase.ErrQuoteNotPending),
		errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
