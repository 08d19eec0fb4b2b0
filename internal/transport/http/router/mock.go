package router

import (
	"time"

	"go-gin-mock-backend/internal/core/config"
	"go-gin-mock-backend/internal/repo"
	"go-gin-mock-backend/internal/service"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
	"go-gin-mock-backend/internal/transport/http/handler"
)

// NewMock 组装 store -> repo -> service -> handler，返回挂好全部资源接口的 Router
func NewMock(st *repo.Store, m config.Mock) *httpez.Router {
	r := httpez.NewRouter(httpez.WithLatency(httpez.Latency{
		Min: time.Duration(m.Latency.MinMs) * time.Millisecond,
		Max: time.Duration(m.Latency.MaxMs) * time.Millisecond,
	}))

	users := service.NewUserService(repo.NewUserRepo(st))
	products := service.NewProductService(repo.NewProductRepo(st), m.DefaultLimit)
	orders := service.NewOrderService(repo.NewOrderRepo(st), service.OrderOptions{
		DefaultUnitPrice:  m.DefaultUnitPrice,
		StrictTransitions: m.StrictTransitions,
		Now:               st.Now,
	})

	handler.Mount(r,
		handler.NewUserHandler(users),
		handler.NewProductHandler(products),
		handler.NewOrderHandler(orders),
	)
	return r
}
