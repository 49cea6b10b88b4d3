package commands

import (
	"context"

	"leather-sandals-store/internal/domain/checkout"
	"leather-sandals-store/internal/pkg/errs"
)

var (
	ErrStepNotAllowed    = errs.New("checkout step not allowed")
	ErrInvalidAddress    = errs.New("invalid shipping address")
	ErrInvalidPayment    = errs.New("invalid payment method")
	ErrCheckoutStoreFail = errs.New("checkout store failure")
)

// CheckoutStore persists checkout sessions by session id.
type CheckoutStore interface {
	Load(ctx context.Context, sid string) (*checkout.Session, error)
	Save(ctx context.Context, sid string, s *checkout.Session) error
}

// CheckoutCommands drives the checkout wizard for one session id. Every
// method returns the session as stored after the change.
type CheckoutCommands interface {
	Get(ctx context.Context, sid string) (*checkout.Session, error)
	Start(ctx context.Context, sid string) (*checkout.Session, error)
	SetShipping(ctx context.Context, sid string, address checkout.Address) (*checkout.Session, error)
	SetPayment(ctx context.Context, sid string, method string) (*checkout.Session, error)
	SetConsents(ctx context.Context, sid string, terms, kvkk bool) (*checkout.Session, error)
	Next(ctx context.Context, sid string) (*checkout.Session, error)
	Prev(ctx context.Context, sid string) (*checkout.Session, error)
	GoTo(ctx context.Context, sid string, step int) (*checkout.Session, error)
	Reset(ctx context.Context, sid string) (*checkout.Session, error)
	// CompleteOrder marks the order placed and resets the wizard.
	CompleteOrder(ctx context.Context, sid string) error
}

type checkoutCommandsImpl struct {
	store CheckoutStore
}

func NewCheckoutCommands(store CheckoutStore) CheckoutCommands {
	return &checkoutCommandsImpl{store: store}
}

func (c *checkoutCommandsImpl) Get(ctx context.Context, sid string) (*checkout.Session, error) {
	s, err := c.store.Load(ctx, sid)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutStoreFail)
	}
	return s, nil
}

func (c *checkoutCommandsImpl) Start(ctx context.Context, sid string) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.StartNew()
		return nil
	})
}

func (c *checkoutCommandsImpl) SetShipping(ctx context.Context, sid string, address checkout.Address) (*checkout.Session, error) {
	validated, err := checkout.NewAddress(address)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAddress)
	}
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.SetShippingInfo(validated)
		return nil
	})
}

func (c *checkoutCommandsImpl) SetPayment(ctx context.Context, sid string, method string) (*checkout.Session, error) {
	m, err := checkout.NewPaymentMethod(method)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.SetPaymentMethod(m)
		return nil
	})
}

func (c *checkoutCommandsImpl) SetConsents(ctx context.Context, sid string, terms, kvkk bool) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.SetConsents(terms, kvkk)
		return nil
	})
}

func (c *checkoutCommandsImpl) Next(ctx context.Context, sid string) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		if !s.CanEnter(s.CurrentStep() + 1) {
			return ErrStepNotAllowed
		}
		s.NextStep()
		return nil
	})
}

func (c *checkoutCommandsImpl) Prev(ctx context.Context, sid string) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.PrevStep()
		return nil
	})
}

// GoTo allows jumping backwards freely; forward jumps need the predicate of
// the target step.
func (c *checkoutCommandsImpl) GoTo(ctx context.Context, sid string, step int) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		target := checkout.Step(step)
		if target > s.CurrentStep() && !s.CanEnter(target) {
			return ErrStepNotAllowed
		}
		s.GoToStep(target)
		return nil
	})
}

func (c *checkoutCommandsImpl) Reset(ctx context.Context, sid string) (*checkout.Session, error) {
	return c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.Reset()
		return nil
	})
}

func (c *checkoutCommandsImpl) CompleteOrder(ctx context.Context, sid string) error {
	_, err := c.mutate(ctx, sid, func(s *checkout.Session) error {
		s.MarkOrderCompleted()
		s.Reset()
		return nil
	})
	return err
}

func (c *checkoutCommandsImpl) mutate(ctx context.Context, sid string, fn func(s *checkout.Session) error) (*checkout.Session, error) {
	s, err := c.store.Load(ctx, sid)
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutStoreFail)
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	if err := c.store.Save(ctx, sid, s); err != nil {
		return nil, errs.Mark(err, ErrCheckoutStoreFail)
	}
	return s, nil
}
