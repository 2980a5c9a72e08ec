package routes

import (
	"tradehub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs         = "/jobs"
	PathPayments     = "/payments"
	PathSavedJobs    = "/saved-jobs"
	PathTradespeople = "/tradespeople"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, paymentHandler *handlers.PaymentHandler, reviewHandler *handlers.ReviewHandler, savedJobHandler *handlers.SavedJobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.PostJob)
		jobs.GET("", jobHandler.ListMyJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)
		jobs.POST("/:job_id/expire-quotes", jobHandler.ExpireQuotes)

		jobs.POST("/:job_id/quotes", jobHandler.SubmitQuote)
		jobs.GET("/:job_id/quotes", jobHandler.ListQuotes)
		jobs.POST("/:job_id/quotes/:quote_id/accept", jobHandler.AcceptQuote)

		jobs.POST("/:job_id/quotes/:quote_id/deposit", paymentHandler.InitiateDeposit)
		jobs.POST("/:job_id/quotes/:quote_id/final-payment", paymentHandler.InitiateFinalPayment)
		jobs.GET("/:job_id/payments", paymentHandler.ListPaymentsByJob)

		jobs.POST("/:job_id/review", reviewHandler.LeaveReview)
		jobs.GET("/:job_id/review", reviewHandler.GetReview)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/refund", paymentHandler.Refund)
	}

	saved := rg.Group(PathSavedJobs)
	{
		saved.GET("", savedJobHandler.ListSavedJobs)
		saved.PUT("/:job_id", savedJobHandler.SaveJob)
		saved.DELETE("/:job_id", savedJobHandler.UnsaveJob)
	}

	rg.GET(PathTradespeople+"/:tradesperson_id/reviews", reviewHandler.ListTradespersonReviews)
}
