package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotVisible: the reconcile raced the order's creation; the
	// caller should retry, not treat this as a hard miss.
	ErrOrderNotVisible = errors.New("order not yet visible")
	// ErrAmountBelowMinimum: the converted total is below the gateway's
	// minimum chargeable amount. Rejected before any external call.
	ErrAmountBelowMinimum    = errors.New("amount below gateway minimum")
	ErrInvalidCheckoutInput  = errors.New("invalid checkout input")
	ErrInvalidSessionOutcome = errors.New("invalid session outcome")
)

// CheckoutConfig carries the gateway conversion parameters. The conversion
// factor is fixed; amounts stored on the order stay currency-neutral and only
// the session sees converted values.
type CheckoutConfig struct {
	CurrencyFactor decimal.Decimal
	MinCharge      decimal.Decimal
	SuccessURL     string
	CancelURL      string
}

// CheckoutConfigFromEnv reads GATEWAY_CURRENCY_FACTOR (default 1),
// GATEWAY_MIN_CHARGE (default 0.50) and the return URLs.
func CheckoutConfigFromEnv() CheckoutConfig {
	return CheckoutConfig{
		CurrencyFactor: envDecimal("GATEWAY_CURRENCY_FACTOR", "1"),
		MinCharge:      envDecimal("GATEWAY_MIN_CHARGE", "0.50"),
		SuccessURL:     getenvDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		CancelURL:      getenvDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/checkout/cancel"),
	}
}

// CreateSessionCommand either points at an existing gateway order or carries
// the cart to create one from.
type CreateSessionCommand struct {
	OrderID         string
	Items           []entities.OrderItem
	CustomerEmail   string
	ShippingAddress entities.Address
	SuccessURL      string
	CancelURL       string
}

// Session is the created checkout session handle.
type Session struct {
	SessionID   string
	RedirectURL string
	OrderID     string
}

// ReconcileCommand is the gateway return-callback payload.
type ReconcileCommand struct {
	OrderID   string
	SessionID string
	Outcome   entities.SessionOutcome
}

// ICheckoutUseCase is the payment session coordinator.

type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, cmd CreateSessionCommand, actor entities.Actor) (Session, error)
	Reconcile(ctx context.Context, cmd ReconcileCommand, actor entities.Actor) (TransitionResult, error)
}

type CheckoutUseCase struct {
	lifecycle *OrderLifecycleUseCase
	orders    interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	cfg       CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(lifecycle *OrderLifecycleUseCase, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, cfg CheckoutConfig) *CheckoutUseCase {
	return &CheckoutUseCase{lifecycle: lifecycle, orders: orders, gateway: gateway, cfg: cfg}
}

func (u *CheckoutUseCase) CreateSession(ctx context.Context, cmd CreateSessionCommand, actor entities.Actor) (Session, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return Session{}, ErrUnauthenticated
	}
	if actor.Role != entities.RoleAdmin && actor.Role != entities.RoleCustomer {
		return Session{}, ErrForbidden
	}
	if u.gateway == nil {
		return Session{}, errors.New("payment gateway not configured")
	}

	var order entities.Order
	if id := strings.TrimSpace(cmd.OrderID); id != "" {
		cctx, cancel := storeCtx(ctx)
		existing, err := u.orders.GetByID(cctx, id)
		cancel()
		if err != nil {
			return Session{}, mapStoreErr(err)
		}
		if existing.ID == "" {
			return Session{}, ErrOrderNotFound
		}
		if actor.Role == entities.RoleCustomer && existing.CustomerID != actor.ID {
			return Session{}, ErrForbidden
		}
		if existing.PaymentMethod != entities.PaymentMethodGateway {
			return Session{}, ErrInvalidCheckoutInput
		}
		if existing.PaymentState != entities.PaymentStatePending {
			return Session{}, ErrInvalidTransition
		}
		order = existing
	} else {
		if len(cmd.Items) == 0 {
			return Session{}, ErrInvalidCheckoutInput
		}
		// a sub-minimum cart is rejected before any order exists
		if total := cartConvertedTotal(cmd.Items, u.cfg.CurrencyFactor); total.LessThan(u.cfg.MinCharge) {
			log.Printf("[checkout][usecase] below gateway minimum converted=%s min=%s", total, u.cfg.MinCharge)
			return Session{}, ErrAmountBelowMinimum
		}
		// a session must always trace back to exactly one order, so the cart
		// becomes a pending/pending-payment canonical order first
		created, err := u.lifecycle.CreateOrder(ctx, CreateOrderCommand{
			CustomerEmail:   cmd.CustomerEmail,
			Items:           cmd.Items,
			PaymentMethod:   entities.PaymentMethodGateway,
			ShippingAddress: cmd.ShippingAddress,
		}, actor)
		if err != nil {
			return Session{}, err
		}
		order = created
	}

	items, convertedTotal := buildSessionItems(order, u.cfg.CurrencyFactor)
	if convertedTotal.LessThan(u.cfg.MinCharge) {
		log.Printf("[checkout][usecase] below gateway minimum order_id=%s converted=%s min=%s", order.ID, convertedTotal, u.cfg.MinCharge)
		return Session{}, ErrAmountBelowMinimum
	}

	successURL := cmd.SuccessURL
	if successURL == "" {
		successURL = u.cfg.SuccessURL
	}
	cancelURL := cmd.CancelURL
	if cancelURL == "" {
		cancelURL = u.cfg.CancelURL
	}

	gctx, gcancel := storeCtx(ctx)
	sess, err := u.gateway.CreateCheckoutSession(gctx, entities.CheckoutSessionRequest{
		OrderID:    order.ID,
		Items:      items,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata:   map[string]any{"order_id": order.ID},
	})
	gcancel()
	if err != nil {
		log.Printf("[checkout][usecase] gateway session failed order_id=%s err=%v", order.ID, err)
		return Session{}, mapStoreErr(err)
	}
	log.Printf("[checkout][usecase] session created order_id=%s session_id=%s", order.ID, sess.SessionID)

	// bookkeeping; losing this write never invalidates the session because
	// the order id travels in the session metadata
	withSession := order
	withSession.CheckoutSessionID = sess.SessionID
	withSession.Version = order.Version + 1
	bctx, bcancel := storeCtx(context.WithoutCancel(ctx))
	saved, err := u.orders.UpdateWithVersion(bctx, withSession, order.Version)
	bcancel()
	if err != nil || saved.ID == "" {
		log.Printf("[checkout][usecase] session id bookkeeping skipped order_id=%s err=%v", order.ID, err)
	}

	return Session{SessionID: sess.SessionID, RedirectURL: sess.RedirectURL, OrderID: order.ID}, nil
}

func (u *CheckoutUseCase) Reconcile(ctx context.Context, cmd ReconcileCommand, actor entities.Actor) (TransitionResult, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return TransitionResult{}, ErrUnauthenticated
	}
	orderID := strings.TrimSpace(cmd.OrderID)
	if orderID == "" {
		return TransitionResult{}, ErrInvalidCheckoutInput
	}
	if !cmd.Outcome.IsValid() {
		return TransitionResult{}, ErrInvalidSessionOutcome
	}

	target := entities.PaymentStatePaid
	if cmd.Outcome == entities.SessionOutcomeFailure {
		target = entities.PaymentStateFailed
	}
	note := "gateway session " + cmd.SessionID + " reported " + string(cmd.Outcome)

	res, err := u.lifecycle.ReconcilePayment(ctx, orderID, target, note, actor)
	if errors.Is(err, ErrOrderNotFound) {
		// the callback can race order creation; retryable by the client
		return TransitionResult{}, ErrOrderNotVisible
	}
	return res, err
}

// buildSessionItems converts the order's line items into gateway currency.
// When item-level data is unusable the whole order collapses into a single
// aggregate line.
func buildSessionItems(o entities.Order, factor decimal.Decimal) ([]entities.SessionLineItem, decimal.Decimal) {
	usable := len(o.Items) > 0
	for _, it := range o.Items {
		if it.Quantity <= 0 || it.UnitPrice <= 0 {
			usable = false
			break
		}
	}

	if !usable {
		unit := decimal.NewFromFloat(o.TotalAmount).Mul(factor).Round(2)
		return []entities.SessionLineItem{{
			ID:        o.ID,
			Title:     "Order " + o.ID,
			Quantity:  1,
			UnitPrice: unit.InexactFloat64(),
		}}, unit
	}

	items := make([]entities.SessionLineItem, 0, len(o.Items))
	total := decimal.Zero
	for _, it := range o.Items {
		unit := decimal.NewFromFloat(it.UnitPrice).Mul(factor).Round(2)
		items = append(items, entities.SessionLineItem{
			ID:        it.ProductID,
			Title:     it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: unit.InexactFloat64(),
		})
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return items, total
}

// cartConvertedTotal prices a raw cart in gateway currency with the same
// per-unit rounding as buildSessionItems.
func cartConvertedTotal(items []entities.OrderItem, factor decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		unit := decimal.NewFromFloat(it.UnitPrice).Mul(factor).Round(2)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func envDecimal(key, def string) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		d, _ = decimal.NewFromString(def)
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
