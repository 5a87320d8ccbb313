package checkout_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/catalog"
	"go-hena-store/internal/checkout"
	mocknotify "go-hena-store/internal/mock/notify"
	mockorder "go-hena-store/internal/mock/order"
	mocksupabase "go-hena-store/internal/mock/supabase"
	"go-hena-store/internal/notify"
	"go-hena-store/internal/pkg/apperror"
)

type fixtures struct {
	notifier *mocknotify.MockClient
	gateway  *mocksupabase.MockClient
	orders   *mockorder.MockService
	svc      checkout.Service
}

func setup(t *testing.T) fixtures {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixtures{
		notifier: mocknotify.NewMockClient(ctrl),
		gateway:  mocksupabase.NewMockClient(ctrl),
		orders:   mockorder.NewMockService(ctrl),
	}
	f.svc = checkout.NewService(checkout.Deps{
		Notifier: f.notifier,
		Gateway:  f.gateway,
		Orders:   f.orders,
	})
	return f
}

func cartWithJorjet(t *testing.T) *cart.Engine {
	t.Helper()
	eng := cart.NewEngine(context.Background(), cart.NewMemoryStore(), nil)
	p := catalog.Product{
		ID:      "dress-2",
		Name:    "Jorjet Borkha",
		Price:   decimal.NewFromInt(1600),
		InStock: true,
	}
	require.NoError(t, eng.AddToCart(context.Background(), p, 1, "", nil))
	return eng
}

func validRequest(zone string) checkout.PlaceOrderRequest {
	return checkout.PlaceOrderRequest{
		Shipping: checkout.ShippingForm{
			FirstName:  "Amina",
			LastName:   "Rahman",
			Email:      "amina@example.com",
			Phone:      "01700000000",
			Address:    "12 Zindabazar Road",
			City:       "Sylhet",
			PostalCode: "3100",
		},
		PaymentMethod: "cash",
		DeliveryZone:  zone,
	}
}

func input(eng *cart.Engine, req checkout.PlaceOrderRequest) checkout.PlaceOrderInput {
	return checkout.PlaceOrderInput{
		SessionID:   "sess-1",
		UserID:      "user-1",
		AccessToken: "token-1",
		Engine:      eng,
		Request:     req,
	}
}

func TestService_PlaceOrder_ZoneFees(t *testing.T) {
	ctx := context.Background()

	t.Run("sylhet_zone_adds_80", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		f.notifier.EXPECT().
			SendOrderNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, details notify.OrderDetails) error {
				assert.Equal(t, 80.0, details.ShippingCost)
				assert.Equal(t, 1680.0, details.Total)
				assert.Equal(t, "sylhet", details.DeliveryZone)
				assert.Equal(t, "cash", details.PaymentMethod)
				require.Len(t, details.Items, 1)
				assert.Equal(t, "dress-2", details.Items[0].ProductID)
				return nil
			})
		f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))
		require.NoError(t, err)
		assert.Equal(t, 1680.0, res.Total)
		assert.Equal(t, "CONFIRMED", res.State)
	})

	t.Run("outside_zone_adds_130", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		f.notifier.EXPECT().
			SendOrderNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, details notify.OrderDetails) error {
				assert.Equal(t, 130.0, details.ShippingCost)
				assert.Equal(t, 1730.0, details.Total)
				return nil
			})
		f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("outside")))
		require.NoError(t, err)
		assert.Equal(t, 1730.0, res.Total)
	})

	t.Run("unknown_zone_pays_outside_rate", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		f.notifier.EXPECT().
			SendOrderNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, details notify.OrderDetails) error {
				assert.Equal(t, 130.0, details.ShippingCost)
				return nil
			})
		f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("dhaka")))
		require.NoError(t, err)
	})
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	f := setup(t)
	eng := cart.NewEngine(context.Background(), cart.NewMemoryStore(), nil)

	// No notifier or gateway expectations: an empty cart never leaves
	// the process.
	_, err := f.svc.PlaceOrder(context.Background(), input(eng, validRequest("sylhet")))

	assert.ErrorIs(t, err, checkout.ErrCartEmpty)
	assert.Equal(t, checkout.StateCollecting, f.svc.Session("sess-1").State())
}

func TestService_PlaceOrder_Validation(t *testing.T) {
	t.Run("missing_shipping_fields", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		req := validRequest("sylhet")
		req.Shipping.Email = ""

		_, err := f.svc.PlaceOrder(context.Background(), input(eng, req))
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("unknown_payment_method", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		req := validRequest("sylhet")
		req.PaymentMethod = "card"

		_, err := f.svc.PlaceOrder(context.Background(), input(eng, req))
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestService_PlaceOrder_NotifierFailure(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	eng := cartWithJorjet(t)

	failure := notify.ErrNotificationFailed.WithMessage("Email service is not configured")

	f.notifier.EXPECT().
		SendOrderNotification(gomock.Any(), gomock.Any()).
		Return(failure)

	_, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))
	require.Error(t, err)
	assert.Equal(t, "Email service is not configured", err.Error())

	// Cart stays intact and the session allows a second attempt.
	assert.Len(t, eng.Items(), 1)
	sess := f.svc.Session("sess-1")
	assert.Equal(t, checkout.StateCollecting, sess.State())
	assert.Equal(t, "Email service is not configured", sess.LastError())

	f.notifier.EXPECT().SendOrderNotification(gomock.Any(), gomock.Any()).Return(nil)
	f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", res.State)
	assert.Empty(t, eng.Items())
}

func TestService_PlaceOrder_SaveInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts_shipping_info_before_submitting", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		req := validRequest("sylhet")
		req.SaveInfo = true

		gomock.InOrder(
			f.gateway.EXPECT().
				UpsertShippingInfo(gomock.Any(), "token-1", "user-1", gomock.Any()).
				Return(nil),
			f.notifier.EXPECT().
				SendOrderNotification(gomock.Any(), gomock.Any()).
				Return(nil),
		)
		f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.PlaceOrder(ctx, input(eng, req))
		require.NoError(t, err)
	})

	t.Run("upsert_failure_fails_the_submission", func(t *testing.T) {
		f := setup(t)
		eng := cartWithJorjet(t)

		req := validRequest("sylhet")
		req.SaveInfo = true

		f.gateway.EXPECT().
			UpsertShippingInfo(gomock.Any(), "token-1", "user-1", gomock.Any()).
			Return(assert.AnError)

		_, err := f.svc.PlaceOrder(ctx, input(eng, req))
		assert.ErrorIs(t, err, checkout.ErrShippingInfoSave)
		assert.Len(t, eng.Items(), 1)
		assert.Equal(t, checkout.StateCollecting, f.svc.Session("sess-1").State())
	})
}

func TestService_PlaceOrder_InFlightGuard(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	eng := cartWithJorjet(t)

	f.notifier.EXPECT().
		SendOrderNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ notify.OrderDetails) error {
			// A second submission while this one is in flight must
			// be refused.
			_, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))
			assert.ErrorIs(t, err, checkout.ErrSubmissionInFlight)
			return nil
		})
	f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))
	require.NoError(t, err)
}

func TestService_PlaceOrder_HistoryIsBestEffort(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	eng := cartWithJorjet(t)

	f.notifier.EXPECT().SendOrderNotification(gomock.Any(), gomock.Any()).Return(nil)
	f.orders.EXPECT().Record(gomock.Any(), gomock.Any()).Return(assert.AnError)

	res, err := f.svc.PlaceOrder(ctx, input(eng, validRequest("sylhet")))

	// The customer's order is already confirmed downstream; a history
	// write failure must not surface as a checkout failure.
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", res.State)
	assert.Empty(t, eng.Items())
}
