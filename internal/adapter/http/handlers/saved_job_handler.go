package handlers

import (
	"errors"
	"log"
	"net/http"

	response "tradehub/internal/adapter/http/dto/response"
	"tradehub/internal/adapter/http/middleware"
	"tradehub/internal/usecase"
	"tradehub/pkg"

	"github.com/gin-gonic/gin"
)

// SavedJobHandler handles the pro-tier saved-job list.

type SavedJobHandler struct {
	usecase usecase.ISavedJobUseCase
	gate    *usecase.AuthorizationGate
}

func NewSavedJobHandler(uc usecase.ISavedJobUseCase, gate *usecase.AuthorizationGate) *SavedJobHandler {
	return &SavedJobHandler{usecase: uc, gate: gate}
}

// SaveJob adds a job to the caller's saved list.
//
//	@Summary		Save a job
//	@Tags			saved-jobs
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	response.SavedJobResponse
//	@Failure		403		{object}	pkg.HTTPError
//	@Failure		404		{object}	pkg.HTTPError
//	@Router			/v1/saved-jobs/{job_id} [put]
func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")
	log.Printf("[saved-job][handler] save start job_id=%s user_id=%s", jobID, ident.UserID)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpSaveJob, ""); err != nil {
		writeError(c, mapSavedJobError(err))
		return
	}

	saved, err := h.usecase.SaveJob(c.Request.Context(), ident.UserID, jobID)
	if err != nil {
		log.Printf("[saved-job][handler] save failed job_id=%s user_id=%s err=%v", jobID, ident.UserID, err)
		writeError(c, mapSavedJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSavedJob(saved))
}

// UnsaveJob removes a job from the caller's saved list.
//
//	@Summary		Unsave a job
//	@Tags			saved-jobs
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		204		{object}	nil
//	@Failure		403		{object}	pkg.HTTPError
//	@Router			/v1/saved-jobs/{job_id} [delete]
func (h *SavedJobHandler) UnsaveJob(c *gin.Context) {
	ident, _ := middleware.Identity(c)
	jobID := c.Param("job_id")

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpSaveJob, ""); err != nil {
		writeError(c, mapSavedJobError(err))
		return
	}

	if err := h.usecase.UnsaveJob(c.Request.Context(), ident.UserID, jobID); err != nil {
		log.Printf("[saved-job][handler] unsave failed job_id=%s user_id=%s err=%v", jobID, ident.UserID, err)
		writeError(c, mapSavedJobError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSavedJobs returns the caller's saved list.
//
//	@Summary		List saved jobs
//	@Tags			saved-jobs
//	@Produce		json
//	@Success		200	{array}	response.SavedJobResponse
//	@Failure		403	{object}	pkg.HTTPError
//	@Router			/v1/saved-jobs [get]
func (h *SavedJobHandler) ListSavedJobs(c *gin.Context) {
	ident, _ := middleware.Identity(c)

	if err := h.gate.Authorize(c.Request.Context(), ident, usecase.OpListSavedJobs, ""); err != nil {
		writeError(c, mapSavedJobError(err))
		return
	}

	saved, err := h.usecase.ListSavedJobs(c.Request.Context(), ident.UserID)
	if err != nil {
		log.Printf("[saved-job][handler] list failed user_id=%s err=%v", ident.UserID, err)
		writeError(c, mapSavedJobError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSavedJobs(saved))
}

func mapSavedJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller is not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidJobInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
