//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/domain/order"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/infra/pgquery"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/pkg/ptr"
	"leather-sandals-store/internal/usecase/commands"
	"leather-sandals-store/internal/usecase/queries"
	"leather-sandals-store/internal/usecase/shared"
	"leather-sandals-store/tests/common/builder"
	commandsmock "leather-sandals-store/tests/mock/commands"
	queriesmock "leather-sandals-store/tests/mock/queries"
	sharedmock "leather-sandals-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlaceOrderTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	orders        *sharedmock.MockOrderRepository
	coupons       *sharedmock.MockCouponRepository
	products      *sharedmock.MockProductRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	checkout      *commandsmock.MockCheckoutCommands
	orderQueries  *queriesmock.MockOrderQueries
	clock         *clock.MockClock
	cmds          commands.OrderCommands

	userID    uuid.UUID
	key       uuid.UUID
	productID uuid.UUID
}

func TestPlaceOrderSuite(t *testing.T) {
	suite.Run(t, new(PlaceOrderTestSuite))
}

func (s *PlaceOrderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.coupons = sharedmock.NewMockCouponRepository(s.ctrl)
	s.products = sharedmock.NewMockProductRepository(s.ctrl)
	s.idempotency = sharedmock.NewMockIdempotencyRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.checkout = commandsmock.NewMockCheckoutCommands(s.ctrl)
	s.orderQueries = queriesmock.NewMockOrderQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Coupons().Return(s.coupons).AnyTimes()
	s.tx.EXPECT().Products().Return(s.products).AnyTimes()
	s.tx.EXPECT().Idempotency().Return(s.idempotency).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()

	s.cmds = commands.NewOrderCommands(s.uow, s.checkout, s.orderQueries, s.clock, discardLogger())

	s.userID = uuid.New()
	s.key = uuid.New()
	s.productID = uuid.New()
}

func (s *PlaceOrderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlaceOrderTestSuite) request(couponCode *string) reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		Items:      []reqdto.OrderItemRequest{{ProductID: s.productID, Quantity: 2}},
		CouponCode: couponCode,
	}
}

func (s *PlaceOrderTestSuite) expectFreshKey() {
	s.idempotency.EXPECT().
		TryInsert(gomock.Any(), gomock.Any(), s.key, s.userID, "POST /api/orders", gomock.Any(), s.clock.Now().Add(24*time.Hour)).
		Return(true, nil)
}

func (s *PlaceOrderTestSuite) expectCatalog(stock int) {
	s.reads.EXPECT().ProductsByIDs(gomock.Any(), []uuid.UUID{s.productID}).
		Return(map[uuid.UUID]*shared.ProductSnapshot{
			s.productID: {ID: s.productID, Name: "Bodrum Sandalet", Price: decimal.RequireFromString("1499.95"), Stock: stock, IsActive: true},
		}, nil)
}

func (s *PlaceOrderTestSuite) expectReadyCheckout() {
	s.checkout.EXPECT().Get(gomock.Any(), testSID).Return(builder.ReadySession(), nil)
}

func (s *PlaceOrderTestSuite) expectCommitted() {
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "order_placed", gomock.Any(), s.clock.Now()).Return(nil)
	s.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any()).Return(nil)
	s.checkout.EXPECT().CompleteOrder(gomock.Any(), testSID).Return(nil)
	s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
			return &queries.OrderView{ID: id, UserID: s.userID}, nil
		})
}

func (s *PlaceOrderTestSuite) TestPlacesOrderWithoutCoupon() {
	s.expectFreshKey()
	s.expectReadyCheckout()
	s.expectCatalog(5)
	s.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), s.productID, 2).Return(nil)

	var placed *order.Order
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, o *order.Order) error {
			placed = o
			return nil
		})
	s.expectCommitted()

	result, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, testSID)

	s.Require().NoError(err)
	s.False(result.IsReplayed)
	s.Require().NotNil(placed)
	s.Equal(placed.ID(), result.Order.ID)
	s.True(decimal.RequireFromString("2999.90").Equal(placed.Total()))
	s.Equal(checkout.PaymentCard, placed.PaymentMethod())
	s.Nil(placed.CouponID())
}

func (s *PlaceOrderTestSuite) TestPlacesOrderWithCoupon() {
	c := builder.NewCouponBuilder().WithUsage(100, 3).BuildStored()

	s.expectFreshKey()
	s.expectReadyCheckout()
	s.expectCatalog(5)
	s.reads.EXPECT().CouponByCodeForUpdate(gomock.Any(), "BULTEN10").Return(c, nil)
	s.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), s.productID, 2).Return(nil)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.coupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any(), c.ID(), s.userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, _, _, _ uuid.UUID, discount decimal.Decimal) error {
			s.True(decimal.RequireFromString("299.99").Equal(discount), "discount %s", discount)
			return nil
		})
	s.coupons.EXPECT().IncrementUsage(gomock.Any(), gomock.Any(), c.ID()).Return(nil)
	s.expectCommitted()

	_, err := s.cmds.PlaceOrder(context.Background(), s.request(ptr.To(" bulten10 ")), s.userID, s.key, testSID)

	s.Require().NoError(err)
}

func (s *PlaceOrderTestSuite) TestRequiresIdempotencyKey() {
	_, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, uuid.Nil, testSID)

	s.ErrorIs(err, errs.ErrIdempotencyKeyRequired)
}

func (s *PlaceOrderTestSuite) TestMissingCheckoutSessionIsIncomplete() {
	s.expectFreshKey()
	s.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), s.key, s.userID).Return(nil)

	_, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, "")

	s.ErrorIs(err, errs.ErrCheckoutIncomplete)
}

func (s *PlaceOrderTestSuite) TestReplaysCompletedRequest() {
	orderID := uuid.New()
	var hash string
	s.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
			hash = requestHash
			return false, nil
		})
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				Key:           s.key,
				UserID:        s.userID,
				Status:        shared.IdempotencyStatusCompleted,
				RequestHash:   hash,
				ResultOrderID: &orderID,
				ExpiresAt:     s.clock.Now().Add(time.Hour),
			}, nil
		})
	s.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), orderID).Return(&queries.OrderView{ID: orderID}, nil)

	result, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, testSID)

	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(orderID, result.Order.ID)
}

func (s *PlaceOrderTestSuite) TestRejectsReusedKeyWithDifferentPayload() {
	s.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusCompleted,
		RequestHash: "something-else",
		ExpiresAt:   s.clock.Now().Add(time.Hour),
	}, nil)

	_, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, testSID)

	s.ErrorIs(err, errs.ErrIdempotencyConflict)
}

func (s *PlaceOrderTestSuite) TestReportsInProgress() {
	var hash string
	s.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
			hash = requestHash
			return false, nil
		})
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				Status:      shared.IdempotencyStatusProcessing,
				RequestHash: hash,
				ExpiresAt:   s.clock.Now().Add(time.Hour),
			}, nil
		})

	_, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, testSID)

	s.ErrorIs(err, errs.ErrIdempotencyInProgress)
}

func (s *PlaceOrderTestSuite) TestReclaimsExpiredKey() {
	s.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.reads.EXPECT().IdempotencyByKey(gomock.Any(), s.key, s.userID).Return(&shared.IdempotencyRecord{
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: "stale",
		ExpiresAt:   s.clock.Now().Add(-time.Minute),
	}, nil)
	s.idempotency.EXPECT().ClaimExpiredIdempotencyKey(gomock.Any(), gomock.Any(), s.key, s.userID, gomock.Any(), gomock.Any()).Return(int64(1), nil)
	s.expectReadyCheckout()
	s.expectCatalog(5)
	s.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), s.productID, 2).Return(nil)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.expectCommitted()

	result, err := s.cmds.PlaceOrder(context.Background(), s.request(nil), s.userID, s.key, testSID)

	s.Require().NoError(err)
	s.False(result.IsReplayed)
}

func (s *PlaceOrderTestSuite) TestFailuresReleaseTheKey() {
	cases := []struct {
		name    string
		arrange func()
		coupon  *string
		check   func(t *testing.T, err error)
	}{
		{
			name: "checkout incomplete",
			arrange: func() {
				s.checkout.EXPECT().Get(gomock.Any(), testSID).Return(checkout.NewSession(), nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, errs.ErrCheckoutIncomplete) },
		},
		{
			name: "inactive product",
			arrange: func() {
				s.expectReadyCheckout()
				s.reads.EXPECT().ProductsByIDs(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]*shared.ProductSnapshot{
					s.productID: {ID: s.productID, Name: "Eski", Price: decimal.NewFromInt(10), Stock: 5, IsActive: false},
				}, nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, errs.ErrProductNotFound) },
		},
		{
			name: "stock taken concurrently",
			arrange: func() {
				s.expectReadyCheckout()
				s.expectCatalog(5)
				s.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), s.productID, 2).
					Return(infra.RepositoryError{Kind: infra.KindConflict})
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, errs.ErrOutOfStock) },
		},
		{
			name:   "coupon expired",
			coupon: ptr.To("BULTEN10"),
			arrange: func() {
				expired := s.clock.Now().Add(-time.Hour)
				c := builder.NewCouponBuilder().WithWindow(nil, &expired).BuildStored()
				s.expectReadyCheckout()
				s.expectCatalog(5)
				s.reads.EXPECT().CouponByCodeForUpdate(gomock.Any(), "BULTEN10").Return(c, nil)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrCouponRejected))
				assert.ErrorIs(t, err, coupon.ErrExpired)
			},
		},
		{
			name:   "per-user limit reached",
			coupon: ptr.To("BULTEN10"),
			arrange: func() {
				c := builder.NewCouponBuilder().WithPerUserLimit(1).BuildStored()
				s.expectReadyCheckout()
				s.expectCatalog(5)
				s.reads.EXPECT().CouponByCodeForUpdate(gomock.Any(), "BULTEN10").Return(c, nil)
				s.reads.EXPECT().CouponRedemptionCount(gomock.Any(), c.ID(), s.userID).Return(1, nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, errs.ErrPerUserLimitReached) },
		},
		{
			name:   "usage limit lost at increment",
			coupon: ptr.To("BULTEN10"),
			arrange: func() {
				c := builder.NewCouponBuilder().WithUsage(10, 9).BuildStored()
				s.expectReadyCheckout()
				s.expectCatalog(5)
				s.reads.EXPECT().CouponByCodeForUpdate(gomock.Any(), "BULTEN10").Return(c, nil)
				s.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), s.productID, 2).Return(nil)
				s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				s.coupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any(), c.ID(), s.userID, gomock.Any(), gomock.Any()).Return(nil)
				s.coupons.EXPECT().IncrementUsage(gomock.Any(), gomock.Any(), c.ID()).
					Return(infra.RepositoryError{Kind: infra.KindConflict})
			},
			check: func(t *testing.T, err error) {
				rej, ok := coupon.AsRejection(err)
				require.True(t, ok)
				assert.Equal(t, coupon.ReasonUsageLimitReached, rej.Reason)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectFreshKey()
			tc.arrange()
			s.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), s.key, s.userID).Return(nil)

			_, err := s.cmds.PlaceOrder(context.Background(), s.request(tc.coupon), s.userID, s.key, testSID)

			s.Require().Error(err)
			tc.check(s.T(), err)
		})
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
