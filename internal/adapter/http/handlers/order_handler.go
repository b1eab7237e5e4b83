package handlers

import (
	"errors"
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler exposes the order half of the lifecycle engine.

type OrderHandler struct {
	usecase usecase.IOrderLifecycleUseCase
}

func NewOrderHandler(uc usecase.IOrderLifecycleUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder handles cash-on-delivery order creation. Gateway orders are
// created through the checkout session endpoint.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	cmd := usecase.CreateOrderCommand{
		CustomerID:      actor.ID,
		CustomerEmail:   payload.CustomerEmail,
		Items:           payload.ToItems(),
		PaymentMethod:   entities.PaymentMethodCashOnDelivery,
		ShippingAddress: payload.ShippingAddress.ToAddress(),
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), cmd, actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	result, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"), middleware.ActorFrom(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

// Transition applies one lifecycle edge to the order.
func (h *OrderHandler) Transition(c *gin.Context) {
	var payload request.OrderTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	status, ok := payload.ResolveStatus()
	if !ok {
		appErr := mapOrderError(usecase.ErrInvalidTransition)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.ApplyTransition(c.Request.Context(), c.Param("order_id"), status, payload.Note, middleware.ActorFrom(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

// Refund moves a paid order to refunded. Admin only.
func (h *OrderHandler) Refund(c *gin.Context) {
	var payload request.RefundRequest
	// The body is optional; a missing or empty body means no note.
	_ = c.ShouldBindJSON(&payload)

	result, err := h.usecase.Refund(c.Request.Context(), c.Param("order_id"), payload.Note, middleware.ActorFrom(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested transition is not allowed from the current state", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid actor headers", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor may not perform this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Storage is unavailable, retry later", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
