package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/notify"
	"go-hena-store/internal/order"
	"go-hena-store/internal/supabase"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Session(sessionID string) *Session
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResponse, error)
}

// PlaceOrderInput carries everything one submission needs. UserID and
// AccessToken come from the auth middleware, the engine from the cart
// session.
type PlaceOrderInput struct {
	SessionID   string
	UserID      string
	AccessToken string
	Engine      *cart.Engine
	Request     PlaceOrderRequest
}

type service struct {
	notifier notify.Client
	gateway  supabase.Client
	orders   order.Service
	validate *validator.Validate
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

type Deps struct {
	Notifier notify.Client
	Gateway  supabase.Client
	Orders   order.Service
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Notifier == nil {
		panic("notify client cannot be nil")
	}
	if deps.Gateway == nil {
		panic("supabase client cannot be nil")
	}
	if deps.Orders == nil {
		panic("order service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		notifier: deps.Notifier,
		gateway:  deps.Gateway,
		orders:   deps.Orders,
		validate: validator.New(),
		logger:   deps.Logger,
		sessions: make(map[string]*Session),
	}
}

func (s *service) Session(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = NewSession()
		s.sessions[sessionID] = sess
	}
	return sess
}

// PlaceOrder runs one submission attempt end to end. On any failure the
// cart is left untouched and the session returns to collecting so the
// user can retry; the cart is cleared only after the notification
// service confirms the order.
func (s *service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResponse, error) {
	logger := s.logger.With(
		zap.String("session_id", in.SessionID),
		zap.String("user_id", in.UserID),
	)

	if err := s.validate.Struct(in.Request); err != nil {
		return PlaceOrderResponse{}, ErrInvalidCheckout.WithMessage(err.Error())
	}

	items := in.Engine.Items()
	if len(items) == 0 {
		return PlaceOrderResponse{}, ErrCartEmpty
	}

	sess := s.Session(in.SessionID)
	if err := sess.beginSubmit(); err != nil {
		return PlaceOrderResponse{}, err
	}

	if in.Request.SaveInfo {
		info := shippingInfo(in.Request.Shipping)
		if err := s.gateway.UpsertShippingInfo(ctx, in.AccessToken, in.UserID, info); err != nil {
			logger.Error("failed to save shipping info", zap.Error(err))
			sess.fail(ErrShippingInfoSave.Message)
			return PlaceOrderResponse{}, ErrShippingInfoSave
		}
	}

	subtotal := cart.ComputeTotals(items).Subtotal
	fee := ShippingFee(Zone(in.Request.DeliveryZone))
	total := subtotal.Add(fee)

	details := buildOrderDetails(items, in.Request, fee, total)

	if err := s.notifier.SendOrderNotification(ctx, details); err != nil {
		logger.Error("order notification failed", zap.Error(err))
		sess.fail(err.Error())
		return PlaceOrderResponse{}, err
	}

	orderNumber := order.NewOrderNumber(time.Now())
	logger = logger.With(zap.String("order_number", orderNumber))

	rec := buildOrderRecord(orderNumber, in.UserID, items, in.Request, subtotal, fee, total)
	if err := s.orders.Record(ctx, rec); err != nil {
		// The order is already confirmed downstream; history is
		// best-effort at this point.
		logger.Warn("failed to record order history", zap.Error(err))
	}

	if err := in.Engine.ClearCart(ctx); err != nil {
		logger.Warn("failed to clear cart after order", zap.Error(err))
	}

	sess.confirm()
	logger.Info("order placed")

	return PlaceOrderResponse{
		State:        string(StateConfirmed),
		OrderNumber:  orderNumber,
		Subtotal:     subtotal.InexactFloat64(),
		ShippingCost: fee.InexactFloat64(),
		Total:        total.InexactFloat64(),
	}, nil
}

func shippingInfo(f ShippingForm) supabase.ShippingInfo {
	return supabase.ShippingInfo{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
	}
}
