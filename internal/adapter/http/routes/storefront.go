package routes

import (
	"storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathCheckout      = "/checkout"
	PathQuotes        = "/quotes"
	PathNotifications = "/notifications"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	checkoutHandler *handlers.CheckoutHandler,
	quoteHandler *handlers.QuoteHandler,
	notificationHandler *handlers.NotificationHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.Transition)
		orders.POST("/:order_id/refund", orderHandler.Refund)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/sessions", checkoutHandler.CreateSession)
		// Gateway return callback; retried by the provider until 2xx.
		checkout.POST("/outcome", checkoutHandler.SessionOutcome)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/response", quoteHandler.Respond)
		quotes.PATCH("/:quote_id/status", quoteHandler.Transition)
		quotes.POST("/:quote_id/messages", quoteHandler.AppendMessage)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkRead)
	}
}
