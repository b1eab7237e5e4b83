package handlers

import (
	"errors"
	"net/http"

	request "storefront/internal/adapter/http/dto/request"
	response "storefront/internal/adapter/http/dto/response"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/usecase"
	"storefront/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler exposes the payment session coordinator.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateSession starts a hosted checkout session, creating the gateway order
// first when the payload carries a cart instead of an order id.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateSessionCommand{
		OrderID:         payload.OrderID,
		Items:           request.CreateOrderRequest{Items: payload.Items}.ToItems(),
		CustomerEmail:   payload.CustomerEmail,
		ShippingAddress: payload.ShippingAddress.ToAddress(),
		SuccessURL:      payload.SuccessURL,
		CancelURL:       payload.CancelURL,
	}

	session, err := h.usecase.CreateSession(c.Request.Context(), cmd, middleware.ActorFrom(c))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

// SessionOutcome is the gateway return callback: it reconciles the reported
// outcome into the order's payment state. Safe to retry.
func (h *CheckoutHandler) SessionOutcome(c *gin.Context) {
	var payload request.SessionOutcomeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	outcome, ok := payload.ResolveOutcome()
	if !ok {
		appErr := mapCheckoutError(usecase.ErrInvalidSessionOutcome)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.ReconcileCommand{
		OrderID:   payload.OrderID,
		SessionID: payload.SessionID,
		Outcome:   outcome,
	}

	result, err := h.usecase.Reconcile(c.Request.Context(), cmd, middleware.ActorFrom(c))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutInput), errors.Is(err, usecase.ErrInvalidSessionOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountBelowMinimum):
		return pkg.NewDomainErrorSimple("AMOUNT_BELOW_MINIMUM", "Order total is below the gateway minimum charge", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotVisible):
		// The order write has not become visible yet; the gateway retries
		// the callback.
		return pkg.NewDomainErrorSimple("ORDER_NOT_VISIBLE", "Order not yet visible, retry", http.StatusServiceUnavailable)
	default:
		return mapOrderError(err)
	}
}
