package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"go-gin-mock-backend/internal/core/config"
	"go-gin-mock-backend/internal/core/logger"
	"go-gin-mock-backend/internal/core/server"
	"go-gin-mock-backend/internal/repo"
	"go-gin-mock-backend/internal/transport/http/handler"
	"go-gin-mock-backend/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)

	// 种子数据（失败会直接 Fatal）
	seed, err := repo.LoadSeed(cfg.Mock.SeedFile)
	if err != nil {
		log.Fatal("load seed", zap.Error(err))
	}
	store := repo.NewStore(seed)
	log.Info("store seeded",
		zap.String("seed", seedName(cfg.Mock.SeedFile)),
		zap.Int("users", len(seed.Users)),
		zap.Int("products", len(seed.Products)),
		zap.Int("orders", len(seed.Orders)),
	)

	// 路由：对外 mock API + 管理端，共享同一个 store
	mock := router.NewMock(store, cfg.Mock)
	api := router.NewAPIEngine(log, cfg, mock)
	admin := router.NewAdminEngine(log, handler.NewAdminHandler(store, mock, log))

	errLog, _ := logger.ToStdLogger(log, zapcore.ErrorLevel)
	apiSrv := server.BuildServer(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port), api,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	apiSrv.ErrorLog = errLog
	adminSrv := server.BuildServer(server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port), admin, 5*time.Second, 10*time.Second, 60*time.Second)
	adminSrv.ErrorLog = errLog

	// 启动日志
	log.Info("mock api starting",
		zap.String("addr", apiSrv.Addr),
		zap.String("open", baseURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)+cfg.Mock.BasePath),
		zap.String("admin", baseURL(cfg.App.Admin.Host, cfg.App.Admin.Port)+"/admin/v1/state"),
		zap.Bool("strict_transitions", cfg.Mock.StrictTransitions),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range []*http.Server{apiSrv, adminSrv} {
		srv := srv
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	// 优雅关闭
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return errors.Join(apiSrv.Shutdown(sctx), adminSrv.Shutdown(sctx))
	})

	if err := g.Wait(); err != nil {
		log.Error("mock api stopped with error", zap.Error(err))
		return
	}
	log.Info("mock api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func baseURL(host string, port int) string {
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return "http://" + host + ":" + fmt.Sprint(port)
}

func seedName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
