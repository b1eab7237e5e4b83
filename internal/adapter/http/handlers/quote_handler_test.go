package handlers

import (
	"encoding/json"
	"errors"
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

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes", h.CreateQuote)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes", "{", "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Quote{
			ID:          "qt-1",
			RequesterID: "cust-1",
			Status:      entities.QuoteStatusPending,
			Version:     1,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes", `{"description":"need winter tyres"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "qt-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing response text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes/:quote_id/response", h.Respond)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes/qt-1/response", `{}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal quote maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes/:quote_id/response", h.Respond)

		uc.EXPECT().Respond(gomock.Any(), "qt-1", "too late", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteTerminal)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes/qt-1/response", `{"response":"too late"}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "QUOTE_TERMINAL" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes/:quote_id/response", h.Respond)

		uc.EXPECT().Respond(gomock.Any(), "qt-1", "120 all in", gomock.Any()).Return(entities.Quote{
			ID:            "qt-1",
			Status:        entities.QuoteStatusResponded,
			AdminResponse: "120 all in",
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes/qt-1/response", `{"response":"120 all in"}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Transition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/quotes/:quote_id/status", h.Transition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/quotes/qt-1/status", `{"status":"shredded"}`, "adm-1", entities.RoleAdmin))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer accepts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.PATCH("/v1/quotes/:quote_id/status", h.Transition)

		uc.EXPECT().ApplyTransition(gomock.Any(), "qt-1", entities.QuoteStatusAccepted, gomock.Any()).Return(entities.Quote{
			ID:     "qt-1",
			Status: entities.QuoteStatusAccepted,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPatch, "/v1/quotes/qt-1/status", `{"status":"accepted"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_AppendMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes/:quote_id/messages", h.AppendMessage)

		uc.EXPECT().AppendMessage(gomock.Any(), "qt-1", "does that include fitting?", gomock.Any()).Return(entities.Quote{
			ID:     "qt-1",
			Status: entities.QuoteStatusNegotiation,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes/qt-1/messages", `{"text":"does that include fitting?"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("forbidden outside negotiation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.Use(middleware.RequireActor())
		r.POST("/v1/quotes/:quote_id/messages", h.AppendMessage)

		uc.EXPECT().AppendMessage(gomock.Any(), "qt-1", "counter offer", gomock.Any()).Return(entities.Quote{}, usecase.ErrForbidden)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, actorRequest(http.MethodPost, "/v1/quotes/qt-1/messages", `{"text":"counter offer"}`, "cust-1", entities.RoleCustomer))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteTerminal); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
