package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/domain/coupon"
	"leather-sandals-store/internal/domain/order"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/usecase/queries"
	"leather-sandals-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	placeOrderEndpoint = "POST /api/orders"
	idempotencyTTL     = 24 * time.Hour
)

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, userID uuid.UUID, idempotencyKey uuid.UUID, checkoutSID string) (*PlaceOrderResult, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	checkout     CheckoutCommands
	orderQueries queries.OrderQueries
	clock        clock.Clock
	logger       *slog.Logger
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	checkoutCmds CheckoutCommands,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		checkout:     checkoutCmds,
		orderQueries: orderQueries,
		clock:        clk,
		logger:       logger,
	}
}

func (o *orderCommandsImpl) PlaceOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
	checkoutSID string,
) (*PlaceOrderResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	requestHash := calculateRequestHash(req)

	replayed, err := o.claimIdempotencyKey(ctx, idempotencyKey, userID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &PlaceOrderResult{Order: replayed, IsReplayed: true}, nil
	}

	orderID, err := o.placeNewOrder(ctx, req, userID, idempotencyKey, checkoutSID)
	if err != nil {
		o.releaseIdempotencyKey(ctx, idempotencyKey, userID)
		return nil, err
	}

	// The order is committed; a stale wizard is recoverable by the client
	if completeErr := o.checkout.CompleteOrder(ctx, checkoutSID); completeErr != nil {
		o.logger.Warn("failed to reset checkout after order", "order_id", orderID, "error", completeErr.Error())
	}

	// Read-after-write: Get the complete order view from read store
	view, err := o.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &PlaceOrderResult{Order: view, IsReplayed: false}, nil
}

// claimIdempotencyKey returns the stored order for a completed replay, nil
// when the caller now owns the key, or an error.
func (o *orderCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
) (*queries.OrderView, error) {
	now := o.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	var created bool
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var insertErr error
		created, insertErr = tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, placeOrderEndpoint, requestHash, expiresAt)
		return insertErr
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if created {
		return nil, nil
	}

	existing, err := o.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(now) {
		return nil, o.reclaimExpiredKey(ctx, key, userID, requestHash, expiresAt)
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.New("completed request missing result order ID")
		}
		// Use system-level access for idempotency replay
		return o.orderQueries.GetByIDSystem(ctx, *existing.ResultOrderID)

	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (o *orderCommandsImpl) reclaimExpiredKey(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) error {
	var claimed int64
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var claimErr error
		claimed, claimErr = tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		return claimErr
	})
	if err != nil {
		return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	// Another request reclaimed it first
	if claimed == 0 {
		return errs.ErrIdempotencyInProgress
	}
	return nil
}

func (o *orderCommandsImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		o.logger.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func (o *orderCommandsImpl) placeNewOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	userID, idempotencyKey uuid.UUID,
	checkoutSID string,
) (uuid.UUID, error) {
	// No wizard to read without a session id
	if checkoutSID == "" {
		return uuid.Nil, errs.ErrCheckoutIncomplete
	}
	session, err := o.checkout.Get(ctx, checkoutSID)
	if err != nil {
		return uuid.Nil, err
	}
	if !session.CanPlaceOrder() {
		return uuid.Nil, errs.ErrCheckoutIncomplete
	}

	items, err := o.priceItems(ctx, req.Items)
	if err != nil {
		return uuid.Nil, err
	}

	var orderID uuid.UUID
	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := o.executeOrderTransaction(ctx, tx, userID, idempotencyKey, items, session, req.GetCouponCode())
		orderID = id
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return orderID, nil
}

func (o *orderCommandsImpl) priceItems(ctx context.Context, lines []reqdto.OrderItemRequest) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, errs.ErrEmptyOrder
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	products, err := o.uow.CommandReads().ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.ProductID]
		if !ok || !p.IsActive {
			return nil, errs.ErrProductNotFound
		}
		if p.Stock < l.Quantity {
			return nil, errs.ErrOutOfStock
		}
		item, itemErr := order.NewItem(p.ID, p.Name, p.Price, l.Quantity)
		if itemErr != nil {
			return nil, errs.Mark(itemErr, errs.ErrDomainValidation)
		}
		items = append(items, item)
	}
	return items, nil
}

func (o *orderCommandsImpl) executeOrderTransaction(
	ctx context.Context,
	tx shared.Tx,
	userID, idempotencyKey uuid.UUID,
	items []order.Item,
	session *checkout.Session,
	couponCode *string,
) (uuid.UUID, error) {
	now := o.clock.Now()

	applied, err := o.applyCoupon(ctx, tx, userID, couponCode, order.Subtotal(items), now)
	if err != nil {
		return uuid.Nil, err
	}

	newOrder, err := order.NewOrder(userID, items, session.ShippingInfo(), session.PaymentMethod(), applied, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	for _, it := range newOrder.Items() {
		if err := tx.Products().ReserveStock(ctx, tx.DB(), it.ProductID(), it.Quantity()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return uuid.Nil, errs.ErrOutOfStock
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := tx.Orders().Create(ctx, tx.DB(), newOrder); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if applied != nil {
		if err := o.redeemCoupon(ctx, tx, applied, userID, newOrder); err != nil {
			return uuid.Nil, err
		}
	}

	if err := o.createNotificationJob(ctx, tx, newOrder); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	err = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, calculateIDHash(newOrder.ID()), newOrder.ID())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return newOrder.ID(), nil
}

// applyCoupon locks the coupon row and evaluates it against the final
// subtotal. A nil code means no coupon.
func (o *orderCommandsImpl) applyCoupon(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	code *string,
	subtotal decimal.Decimal,
	now time.Time,
) (*order.AppliedCoupon, error) {
	if code == nil {
		return nil, nil
	}

	c, err := tx.Reads().CouponByCodeForUpdate(ctx, *code)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	evaluation, err := coupon.Evaluate(c, subtotal, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponRejected)
	}

	if limit := c.PerUserLimit(); limit != nil {
		used, countErr := tx.Reads().CouponRedemptionCount(ctx, c.ID(), userID)
		if countErr != nil {
			return nil, errs.Mark(countErr, errs.ErrDatabaseOperationFailed)
		}
		if used >= *limit {
			return nil, errs.ErrPerUserLimitReached
		}
	}

	return &order.AppliedCoupon{ID: c.ID(), Evaluation: evaluation}, nil
}

func (o *orderCommandsImpl) redeemCoupon(ctx context.Context, tx shared.Tx, applied *order.AppliedCoupon, userID uuid.UUID, placed *order.Order) error {
	if err := tx.Coupons().RecordRedemption(ctx, tx.DB(), applied.ID, userID, placed.ID(), placed.Discount()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Coupons().IncrementUsage(ctx, tx.DB(), applied.ID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(coupon.Reject(coupon.ReasonUsageLimitReached), errs.ErrCouponRejected)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (o *orderCommandsImpl) createNotificationJob(ctx context.Context, tx shared.Tx, placed *order.Order) error {
	payload, err := json.Marshal(map[string]any{
		"order_id": placed.ID(),
		"user_id":  placed.UserID(),
		"total":    placed.Total().StringFixed(2),
		"type":     "order_placed",
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "order_placed", payload, o.clock.Now())
}

func calculateRequestHash(req reqdto.PlaceOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
