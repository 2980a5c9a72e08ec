package routes

import (
	"log"
	"os"
	"strconv"

	_ "tradehub/docs" // This will be auto-generated
	"tradehub/internal/adapter/http/handlers"
	"tradehub/internal/adapter/http/middleware"
	repository2 "tradehub/internal/adapter/persistence/repository"
	"tradehub/internal/domain/fees"
	"tradehub/internal/infrastructure/database"
	"tradehub/internal/infrastructure/identity"
	"tradehub/internal/infrastructure/payments"
	"tradehub/internal/infrastructure/telemetry"
	"tradehub/internal/usecase"
	"tradehub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(telemetry.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.Connect()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	eventRepo := repository2.NewProcessedEventDynamoRepository(ddb)
	accountRepo := repository2.NewAccountDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	savedJobRepo := repository2.NewSavedJobDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	sessionAuthority, err := identity.NewSessionAuthority()
	if err != nil {
		log.Fatalf("Session authority not configured: %v", err)
	}

	gate := usecase.NewAuthorizationGate(jobRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, quoteRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, eventRepo, jobRepo, quoteRepo, accountRepo, paymentGateway, jobUseCase, fees.ScheduleFromEnv())
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, jobRepo)
	savedJobUseCase := usecase.NewSavedJobUseCase(savedJobRepo, jobRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase, gate)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, gate)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase, gate)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobUseCase, gate)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// The webhook receiver authenticates by signature, not by session.
	v1.POST("/webhooks/payments", webhookHandler.HandleGatewayEvent)

	authed := v1.Group("", middleware.RequireIdentity(sessionAuthority))
	addMarketplaceRoutes(authed, jobHandler, paymentHandler, reviewHandler, savedJobHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
