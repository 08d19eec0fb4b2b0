package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-gin-mock-backend/internal/core/server"
	"go-gin-mock-backend/internal/transport/http/handler"
	mdw "go-gin-mock-backend/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, adminH *handler.AdminHandler) *gin.Engine {
	r := server.NewRouter(l, server.Options{})

	r.Use(
		mdw.RequestID(),
		mdw.AccessLog(l),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 管理端 v1：测试辅助
	admin := r.Group("/admin/v1")
	admin.GET("/state", adminH.State)
	admin.GET("/routes", adminH.Routes)
	admin.POST("/reset", adminH.Reset)

	return r
}
