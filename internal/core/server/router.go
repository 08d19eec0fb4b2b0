package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "go-gin-mock-backend/internal/transport/http/response"
)

type Options struct {
	// AllowOrigins 为空时允许所有来源
	AllowOrigins []string
	// CORS 关闭后不挂 cors 中间件（admin 端用）
	CORS bool
}

// NewRouter 基础 engine：zap 兜底 panic + 可选 CORS
func NewRouter(l *zap.Logger, o Options) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp.ErrorCode(resp.CodeServerError, ""))
	}))
	if o.CORS {
		cfg := cors.DefaultConfig()
		if len(o.AllowOrigins) == 0 {
			cfg.AllowAllOrigins = true
		} else {
			cfg.AllowOrigins = o.AllowOrigins
		}
		cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
		cfg.AddAllowHeaders("X-Request-ID")
		cfg.AddExposeHeaders("X-Request-ID")
		r.Use(cors.New(cfg))
	}
	return r
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    rt,
		WriteTimeout:   wt,
		IdleTimeout:    it,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
