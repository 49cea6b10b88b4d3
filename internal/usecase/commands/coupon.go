package commands

import (
	"context"

	"github.com/google/uuid"

	"leather-sandals-store/internal/domain/coupon"
	reqdto "leather-sandals-store/internal/handler/dto/request"
	"leather-sandals-store/internal/infra"
	"leather-sandals-store/internal/pkg/clock"
	"leather-sandals-store/internal/pkg/errs"
	"leather-sandals-store/internal/usecase/queries"
	"leather-sandals-store/internal/usecase/shared"
)

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest) (*queries.CouponView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) (*queries.CouponView, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*queries.CouponView, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest) (*queries.CouponView, error) {
	attrs, err := req.ToAttributes()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := coupon.NewCoupon(attrs, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var saved *coupon.Coupon
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		saved, createErr = tx.Coupons().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, mapCouponWriteErr(err)
	}
	return queries.ToCouponView(saved), nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) (*queries.CouponView, error) {
	return c.modify(ctx, id, func(entity *coupon.Coupon) error {
		attrs, err := req.ApplyTo(entity.Attributes())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := entity.Update(attrs, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil
	})
}

func (c *couponCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	return c.modify(ctx, id, func(entity *coupon.Coupon) error {
		entity.Deactivate(c.clock.Now())
		return nil
	})
}

// modify loads the coupon, applies fn and writes it back in one transaction.
func (c *couponCommandsImpl) modify(ctx context.Context, id uuid.UUID, fn func(entity *coupon.Coupon) error) (*queries.CouponView, error) {
	var saved *coupon.Coupon
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reads().CouponByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(entity); err != nil {
			return err
		}
		saved, err = tx.Coupons().Update(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return nil, mapCouponWriteErr(err)
	}
	return queries.ToCouponView(saved), nil
}

func mapCouponWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrCouponNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.ErrCouponCodeTaken
	case errs.Is(err, errs.ErrDomainValidation):
		return err
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
