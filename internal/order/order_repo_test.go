package order_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hena-store/internal/order"
)

var repoColumns = []string{
	"id", "order_number", "user_id", "status", "payment_method", "delivery_zone",
	"shipping", "items", "subtotal", "shipping_cost", "total", "placed_at",
}

func TestRepository_Create(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := order.NewRepository(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		o := sampleOrder()
		o.ID = uuid.New()
		o.Status = order.StatusConfirmed
		o.PlacedAt = time.Now().UTC()

		mockDB.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, o))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unique_violation_maps_to_duplicate", func(t *testing.T) {
		o := sampleOrder()
		o.ID = uuid.New()

		mockDB.ExpectExec("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, o)
		assert.ErrorIs(t, err, order.ErrDuplicateOrder)
	})
}

func TestRepository_GetByNumber(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := order.NewRepository(db)
	ctx := context.Background()

	t.Run("success_unmarshals_json_columns", func(t *testing.T) {
		id := uuid.New()
		placedAt := time.Now().UTC()

		rows := sqlmock.NewRows(repoColumns).AddRow(
			id, "HC-1700000000-AB12", "user-1", "CONFIRMED", "cash", "sylhet",
			[]byte(`{"firstName":"Amina","city":"Sylhet"}`),
			[]byte(`[{"productId":"dress-2","name":"Jorjet Borkha","unitPrice":"1600","quantity":1}]`),
			"1600", "80", "1680", placedAt,
		)

		mockDB.ExpectQuery("SELECT .+ FROM orders WHERE user_id").
			WithArgs("user-1", "HC-1700000000-AB12").
			WillReturnRows(rows)

		o, err := repo.GetByNumber(ctx, "user-1", "HC-1700000000-AB12")

		require.NoError(t, err)
		assert.Equal(t, id, o.ID)
		assert.Equal(t, "Amina", o.Shipping.FirstName)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "dress-2", o.Items[0].ProductID)
		assert.True(t, o.Total.Equal(decimal.NewFromInt(1680)))
	})

	t.Run("not_found", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT .+ FROM orders WHERE user_id").
			WithArgs("user-1", "HC-404").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByNumber(ctx, "user-1", "HC-404")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := order.NewRepository(db)
	ctx := context.Background()

	t.Run("returns_orders_newest_first", func(t *testing.T) {
		rows := sqlmock.NewRows(repoColumns).
			AddRow(
				uuid.New(), "HC-2", "user-1", "CONFIRMED", "bkash", "outside",
				[]byte(`{}`), []byte(`[]`), "40", "130", "170", time.Now().UTC(),
			).
			AddRow(
				uuid.New(), "HC-1", "user-1", "CONFIRMED", "cash", "sylhet",
				[]byte(`{}`), []byte(`[]`), "680", "80", "760", time.Now().UTC().Add(-time.Hour),
			)

		mockDB.ExpectQuery("SELECT .+ FROM orders WHERE user_id .+ ORDER BY placed_at DESC").
			WithArgs("user-1").
			WillReturnRows(rows)

		orders, err := repo.ListByUser(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "HC-2", orders[0].OrderNumber)
		assert.Equal(t, "HC-1", orders[1].OrderNumber)
	})

	t.Run("no_orders_is_empty_not_error", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT .+ FROM orders WHERE user_id").
			WithArgs("user-2").
			WillReturnRows(sqlmock.NewRows(repoColumns))

		orders, err := repo.ListByUser(ctx, "user-2")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
