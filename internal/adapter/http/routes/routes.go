package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "storefront/docs" // This will be auto-generated
	"storefront/internal/adapter/http/handlers"
	"storefront/internal/adapter/http/middleware"
	repository2 "storefront/internal/adapter/persistence/repository"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/payments"
	"storefront/internal/infrastructure/workers"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	legacyRepo := repository2.NewUserOrdersDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	outboxRepo := repository2.NewOutboxDynamoRepository(ddb)

	dispatcher := usecase.NewNotificationDispatcher(outboxRepo)
	lifecycleUseCase := usecase.NewOrderLifecycleUseCase(orderRepo, legacyRepo, dispatcher, isLegacyPromotionEnabled())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(lifecycleUseCase, orderRepo, paymentGateway, usecase.CheckoutConfigFromEnv())
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, dispatcher)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	orderHandler := handlers.NewOrderHandler(lifecycleUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	go workers.NewOutboxWorker(outboxRepo, notificationRepo).Run(context.Background())

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.RequireActor())
	addStorefrontRoutes(authed, orderHandler, checkoutHandler, quoteHandler, notificationHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func isLegacyPromotionEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LEGACY_PROMOTION"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
