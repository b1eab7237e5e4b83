package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted checkout sessions through the Mercado
// Pago preference API. The preference id is our session id and InitPoint is
// the redirect URL the storefront sends the customer to.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) fabricates sessions
// locally so the rest of the flow can run without credentials.
type MercadoPagoGateway struct {
	client   preference.Client
	currency string
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	currency := getenvDefault("GATEWAY_CURRENCY", "BRL")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{currency: currency, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currency: currency}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock session created order_id=%s session_id=%s", req.OrderID, id)
		return entities.CheckoutSession{
			SessionID:   id,
			RedirectURL: "https://checkout.local/session/" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, preference.ItemRequest{
			ID:         it.ID,
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: g.currency,
		})
	}

	prefReq := preference.Request{
		Items:             items,
		ExternalReference: req.OrderID,
		Metadata:          req.Metadata,
	}
	if req.SuccessURL != "" || req.CancelURL != "" {
		prefReq.BackURLs = &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.SuccessURL,
			Failure: req.CancelURL,
		}
	}

	log.Printf("[payment][gateway] session create start order_id=%s items=%d", req.OrderID, len(items))
	resp, err := g.client.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", req.OrderID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] session create success order_id=%s session_id=%s", req.OrderID, resp.ID)

	return entities.CheckoutSession{
		SessionID:   resp.ID,
		RedirectURL: resp.InitPoint,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
