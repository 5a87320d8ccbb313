package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-hena-store/internal/outbox"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]OrderResponse, error)
	Detail(ctx context.Context, userID, orderNumber string) (OrderResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	logger     *zap.Logger
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		logger:     deps.Logger,
	}
}

// NewOrderNumber mints a human-readable order reference.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("HC-%d-%s", now.Unix(), strings.ToUpper(uuid.New().String()[:4]))
}

// Record persists a confirmed order together with its outbox event in
// one transaction. The order history and the event stream never
// disagree about which orders exist.
func (s *service) Record(ctx context.Context, o *Order) error {
	logger := s.logger.With(
		zap.String("user_id", o.UserID),
		zap.String("order_number", o.OrderNumber),
	)

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.PlacedAt.IsZero() {
		o.PlacedAt = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = StatusConfirmed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return ErrOrderPersistence
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.repo.WithTx(tx).Create(ctx, o); err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return err
	}

	payload, _ := json.Marshal(map[string]any{
		"order_id":     o.ID.String(),
		"order_number": o.OrderNumber,
		"user_id":      o.UserID,
		"total":        o.Total,
		"placed_at":    o.PlacedAt,
	})

	if err := s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.EventOrderPlaced, payload); err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return ErrOrderPersistence
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return ErrOrderPersistence
	}
	committed = true

	logger.Info("order recorded", zap.String("order_id", o.ID.String()))
	return nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]OrderResponse, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list orders", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrOrderPersistence
	}

	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, userID, orderNumber string) (OrderResponse, error) {
	o, err := s.repo.GetByNumber(ctx, userID, orderNumber)
	if err != nil {
		return OrderResponse{}, err
	}
	return toOrderResponse(o), nil
}
