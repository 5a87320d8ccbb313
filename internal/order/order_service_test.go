package order_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockorder "go-hena-store/internal/mock/order"
	mockoutbox "go-hena-store/internal/mock/outbox"
	"go-hena-store/internal/order"
	"go-hena-store/internal/outbox"
)

func sampleOrder() *order.Order {
	return &order.Order{
		OrderNumber:   "HC-1700000000-AB12",
		UserID:        "user-1",
		PaymentMethod: "cash",
		DeliveryZone:  "sylhet",
		Shipping:      order.ShippingSnapshot{FirstName: "Amina", City: "Sylhet"},
		Items: []order.Item{
			{ProductID: "dress-2", Name: "Jorjet Borkha", UnitPrice: decimal.NewFromInt(1600), Quantity: 1},
		},
		Subtotal:     decimal.NewFromInt(1600),
		ShippingCost: decimal.NewFromInt(80),
		Total:        decimal.NewFromInt(1680),
	}
}

func TestOrderService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := mockorder.NewMockRepository(ctrl)
	outboxRepo := mockoutbox.NewMockRepository(ctrl)
	svc := order.NewService(order.Deps{
		DB:         db,
		Repo:       repo,
		OutboxRepo: outboxRepo,
	})
	ctx := context.Background()

	t.Run("success_writes_order_and_outbox_event_in_one_tx", func(t *testing.T) {
		o := sampleOrder()

		mockDB.ExpectBegin()
		mockDB.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, o).Return(nil)
		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().CreateEvent(ctx, outbox.EventOrderPlaced, gomock.Any()).Return(nil)

		err := svc.Record(ctx, o)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, o.ID)
		assert.Equal(t, order.StatusConfirmed, o.Status)
		assert.False(t, o.PlacedAt.IsZero())
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("repo_error_rolls_back", func(t *testing.T) {
		o := sampleOrder()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, o).Return(assert.AnError)

		err := svc.Record(ctx, o)

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("outbox_error_rolls_back", func(t *testing.T) {
		o := sampleOrder()

		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().Create(ctx, o).Return(nil)
		outboxRepo.EXPECT().WithTx(gomock.Any()).Return(outboxRepo)
		outboxRepo.EXPECT().CreateEvent(ctx, outbox.EventOrderPlaced, gomock.Any()).Return(assert.AnError)

		err := svc.Record(ctx, o)

		assert.ErrorIs(t, err, order.ErrOrderPersistence)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestOrderService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := mockorder.NewMockRepository(ctrl)
	outboxRepo := mockoutbox.NewMockRepository(ctrl)
	svc := order.NewService(order.Deps{DB: db, Repo: repo, OutboxRepo: outboxRepo})
	ctx := context.Background()

	t.Run("success_maps_responses", func(t *testing.T) {
		o := sampleOrder()
		o.ID = uuid.New()

		repo.EXPECT().ListByUser(ctx, "user-1").Return([]*order.Order{o}, nil)

		res, err := svc.ListByUser(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "HC-1700000000-AB12", res[0].OrderNumber)
		assert.Equal(t, 1680.0, res[0].Total)
		require.Len(t, res[0].Items, 1)
		assert.Equal(t, 1600.0, res[0].Items[0].Subtotal)
	})

	t.Run("repo_error", func(t *testing.T) {
		repo.EXPECT().ListByUser(ctx, "user-1").Return(nil, assert.AnError)

		_, err := svc.ListByUser(ctx, "user-1")
		assert.ErrorIs(t, err, order.ErrOrderPersistence)
	})
}

func TestOrderService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := mockorder.NewMockRepository(ctrl)
	outboxRepo := mockoutbox.NewMockRepository(ctrl)
	svc := order.NewService(order.Deps{DB: db, Repo: repo, OutboxRepo: outboxRepo})
	ctx := context.Background()

	t.Run("not_found_passes_through", func(t *testing.T) {
		repo.EXPECT().
			GetByNumber(ctx, "user-1", "HC-404").
			Return(nil, order.ErrOrderNotFound)

		_, err := svc.Detail(ctx, "user-1", "HC-404")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
