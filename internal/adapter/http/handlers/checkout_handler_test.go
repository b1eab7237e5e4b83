package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapter/http/handlers/mocks"
	"storefront/internal/adapter/http/middleware"
	"storefront/internal/domain/entities"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/sessions", h.CreateSession)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/sessions", "{", "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("below minimum maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/sessions", h.CreateSession)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Session{}, usecase.ErrAmountBelowMinimum)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/sessions", `{"order_id":"ord-1"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "AMOUNT_BELOW_MINIMUM" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/sessions", h.CreateSession)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.Session{
			SessionID:   "sess-1",
			RedirectURL: "https://mp.example/redirect/sess-1",
			OrderID:     "ord-1",
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/sessions", `{"order_id":"ord-1"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess-1" || body["redirect_url"] != "https://mp.example/redirect/sess-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_SessionOutcome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/outcome", h.SessionOutcome)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/outcome", `{"order_id":"ord-1","outcome":"maybe"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not visible maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/outcome", h.SessionOutcome)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TransitionResult{}, usecase.ErrOrderNotVisible)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/outcome", `{"order_id":"ord-ghost","outcome":"success"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success outcome returns the updated order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/checkout/outcome", h.SessionOutcome)

		uc.EXPECT().Reconcile(gomock.Any(), usecase.ReconcileCommand{
			OrderID:   "ord-1",
			SessionID: "sess-1",
			Outcome:   entities.SessionOutcomeSuccess,
		}, gomock.Any()).Return(usecase.TransitionResult{
			Order: entities.Order{ID: "ord-1", PaymentState: entities.PaymentStatePaid},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/checkout/outcome", `{"order_id":"ord-1","session_id":"sess-1","outcome":"success"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_state"] != "paid" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
