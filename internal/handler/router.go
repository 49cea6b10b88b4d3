package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/handler/api"
	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Coupon   *api.CouponHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Product  *api.ProductHandler
}

// RateLimiters holds one limiter per throttled endpoint.
type RateLimiters struct {
	Login          middleware.RateLimiter
	CouponValidate middleware.RateLimiter
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	handlers Handlers,
	limiters RateLimiters,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, limiters, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Locale(cfg.Locale))
}

func setupRoutes(engine *gin.Engine, h Handlers, limiters RateLimiters, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login,
					Mw: []gin.HandlerFunc{middleware.RateLimit(limiters.Login, "login")}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListProducts},
			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate,
				Mw: []gin.HandlerFunc{
					middleware.RateLimit(limiters.CouponValidate, "coupon_validate"),
					authMiddleware.OptionalAuth(),
				}},
		})

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Checkout.Get},
				{Method: http.MethodPost, Path: "/start", Handler: h.Checkout.Start},
				{Method: http.MethodPut, Path: "/shipping", Handler: h.Checkout.SetShipping},
				{Method: http.MethodPut, Path: "/payment", Handler: h.Checkout.SetPayment},
				{Method: http.MethodPut, Path: "/consents", Handler: h.Checkout.SetConsents},
				{Method: http.MethodPost, Path: "/next", Handler: h.Checkout.Next},
				{Method: http.MethodPost, Path: "/prev", Handler: h.Checkout.Prev},
				{Method: http.MethodPost, Path: "/step", Handler: h.Checkout.GoTo},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Checkout.Reset},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.PlaceOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodGet, Path: "/coupons/:id", Handler: h.Coupon.Get},
				{Method: http.MethodPatch, Path: "/coupons/:id", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Deactivate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
