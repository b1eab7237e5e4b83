package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/adapter/http/handlers/mocks"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func actorRequest(method, target string, body string, id string, role entities.Role) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.HeaderActorID, id)
	req.Header.Set(middleware.HeaderActorRole, string(role))
	return req
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/orders", h.CreateOrder)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/orders", "{", "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"items":[{"product_id":"p-1","quantity":1,"unit_price":10}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/orders", h.CreateOrder)

		now := time.Now().UTC()
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateOrderCommand, _ entities.Actor) (entities.Order, error) {
				if cmd.PaymentMethod != entities.PaymentMethodCashOnDelivery {
					t.Fatalf("order endpoint must force cash on delivery, got %s", cmd.PaymentMethod)
				}
				return entities.Order{ID: "ord-1", CustomerID: "cust-1", Status: entities.OrderStatusPending, PaymentState: entities.PaymentStatePending, TotalAmount: 10, Version: 1, CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/orders", `{"items":[{"product_id":"p-1","quantity":1,"unit_price":10}]}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ord-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "ord-x", gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodGet, "/v1/orders/ord-x", "", "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("consistency warning passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.GET("/v1/orders/:order_id", h.GetOrder)

		uc.EXPECT().GetOrder(gomock.Any(), "ord-1", gomock.Any()).Return(usecase.TransitionResult{
			Order:              entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed},
			ConsistencyWarning: "canonical and legacy records disagree on status (canonical=confirmed legacy=pending); canonical preferred",
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodGet, "/v1/orders/ord-1", "", "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["consistency_warning"] == "" || body["consistency_warning"] == nil {
			t.Fatalf("expected consistency_warning in body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_Transition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/orders/:order_id/status", h.Transition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"teleported"}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("version conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/orders/:order_id/status", h.Transition)

		uc.EXPECT().ApplyTransition(gomock.Any(), "ord-1", entities.OrderStatusConfirmed, "", gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrVersionConflict)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"confirmed"}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/orders/:order_id/status", h.Transition)

		uc.EXPECT().ApplyTransition(gomock.Any(), "ord-1", entities.OrderStatusCancelled, "", gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrForbidden)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"cancelled"}`, "ff-1", entities.RoleFulfillment))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/orders/:order_id/status", h.Transition)

		uc.EXPECT().ApplyTransition(gomock.Any(), "ord-1", entities.OrderStatusReady, "packed", gomock.Any()).Return(usecase.TransitionResult{
			Order: entities.Order{ID: "ord-1", Status: entities.OrderStatusReady},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/orders/ord-1/status", `{"status":"ready","note":"packed"}`, "ff-1", entities.RoleFulfillment))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Refund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body is fine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/orders/:order_id/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "ord-1", "", gomock.Any()).Return(usecase.TransitionResult{
			Order: entities.Order{ID: "ord-1", PaymentState: entities.PaymentStateRefunded},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/orders/ord-1/refund", "", "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/orders/:order_id/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "ord-1", "", gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrForbidden)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/orders/ord-1/refund", "", "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrUnauthenticated); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapOrderError(usecase.ErrForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(usecase.ErrServiceUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
