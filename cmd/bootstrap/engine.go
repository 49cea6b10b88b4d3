package bootstrap

import (
	"fmt"

	"leather-sandals-store/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		NewEngine,
	),
)

// NewEngine builds the gin engine. Rate limits key on c.ClientIP(), so only
// the configured proxies may speak for the client through forwarding headers.
func NewEngine(cfg config.Config) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return engine, nil
}
