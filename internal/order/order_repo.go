package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *Order) error
	GetByNumber(ctx context.Context, userID, orderNumber string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}

type repository struct {
	db dbtx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

const orderColumns = `id, order_number, user_id, status, payment_method, delivery_zone,
	          shipping, items, subtotal, shipping_cost, total, placed_at`

func (r *repository) Create(ctx context.Context, o *Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	shippingJSON, err := json.Marshal(o.Shipping)
	if err != nil {
		return fmt.Errorf("marshal shipping snapshot: %w", err)
	}

	query := `INSERT INTO orders (` + orderColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, insertErr := r.db.ExecContext(ctx, query,
		o.ID,
		o.OrderNumber,
		o.UserID,
		o.Status,
		o.PaymentMethod,
		o.DeliveryZone,
		shippingJSON,
		itemsJSON,
		o.Subtotal,
		o.ShippingCost,
		o.Total,
		o.PlacedAt,
	)
	if insertErr != nil {
		var pqErr *pq.Error
		if errors.As(insertErr, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", insertErr)
	}
	return nil
}

func (r *repository) GetByNumber(
	ctx context.Context,
	userID, orderNumber string,
) (*Order, error) {
	query := `SELECT ` + orderColumns + `
	          FROM orders WHERE user_id = $1 AND order_number = $2`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, userID, orderNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query order by number: %w", err)
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	query := `SELECT ` + orderColumns + `
	          FROM orders WHERE user_id = $1 ORDER BY placed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders by user: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order row iteration: %w", err)
	}
	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*Order, error) {
	var o Order
	var shippingJSON, itemsJSON []byte

	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.Status,
		&o.PaymentMethod,
		&o.DeliveryZone,
		&shippingJSON,
		&itemsJSON,
		&o.Subtotal,
		&o.ShippingCost,
		&o.Total,
		&o.PlacedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(shippingJSON, &o.Shipping); err != nil {
		return nil, fmt.Errorf("unmarshal shipping snapshot: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}
