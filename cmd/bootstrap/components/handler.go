package components

import (
	"leather-sandals-store/internal/handler"
	"leather-sandals-store/internal/handler/api"
	"leather-sandals-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Coupon   *api.CouponHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Product  *api.ProductHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Coupon:   p.Coupon,
		Checkout: p.Checkout,
		Order:    p.Order,
		Product:  p.Product,
	}
}
