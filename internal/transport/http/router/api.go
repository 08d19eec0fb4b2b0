package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-mock-backend/internal/core/config"
	"go-gin-mock-backend/internal/core/server"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
	mdw "go-gin-mock-backend/internal/transport/http/middleware"
)

// NewAPIEngine 对外的 mock API；资源路由全部交给 ez.Router（挂在 NoRoute 上）
func NewAPIEngine(l *zap.Logger, cfg *config.Config, mock *httpez.Router) *gin.Engine {
	r := server.NewRouter(l, server.Options{CORS: true, AllowOrigins: cfg.CORS.AllowOrigins})

	limit := mdw.RateLimit(rate.Limit(cfg.Limits.RPS), cfg.Limits.Burst)
	if cfg.Limits.PerIP {
		limit = mdw.RateLimitPerIP(rate.Limit(cfg.Limits.RPS), cfg.Limits.Burst)
	}

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.AccessLog(l),
		mdw.Metrics(),
		limit,
		mdw.ConcurrencyLimit(cfg.Limits.Concurrency),
		mdw.MaxBodyBytes(cfg.Limits.MaxBodyBytes),
		mdw.Timeout(time.Duration(cfg.Limits.TimeoutSec)*time.Second),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	// users / products / orders
	r.NoRoute(mock.GinHandler(l, cfg.Mock.BasePath))

	return r
}
