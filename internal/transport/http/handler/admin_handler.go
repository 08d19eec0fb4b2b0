package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-mock-backend/internal/domain"
	"go-gin-mock-backend/internal/repo"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
	mdw "go-gin-mock-backend/internal/transport/http/middleware"
)

// AdminHandler 测试辅助接口：查看 / 重置 store
type AdminHandler struct {
	store  *repo.Store
	router *httpez.Router
	log    *zap.Logger
}

func NewAdminHandler(store *repo.Store, router *httpez.Router, l *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, router: router, log: l}
}

type stateOut struct {
	Counts   map[string]int   `json:"counts"`
	Users    []domain.User    `json:"users"`
	Products []domain.Product `json:"products"`
	Orders   []domain.Order   `json:"orders"`
}

// State GET /admin/v1/state
func (h *AdminHandler) State(c *gin.Context) {
	s := h.store.Snapshot()
	c.JSON(http.StatusOK, stateOut{
		Counts: map[string]int{
			"users":    len(s.Users),
			"products": len(s.Products),
			"orders":   len(s.Orders),
		},
		Users:    nonNil(s.Users),
		Products: nonNil(s.Products),
		Orders:   nonNil(s.Orders),
	})
}

// Reset POST /admin/v1/reset
func (h *AdminHandler) Reset(c *gin.Context) {
	h.store.Reset()
	h.log.Info("store reset to seed", zap.String("rid", c.GetString(mdw.KeyRequestID)))
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// Routes GET /admin/v1/routes  按匹配优先级列出已注册路由
func (h *AdminHandler) Routes(c *gin.Context) {
	out := gin.H{}
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		if rs := h.router.Routes(m); len(rs) > 0 {
			out[m] = rs
		}
	}
	c.JSON(http.StatusOK, out)
}

// Mount 把资源接口挂到同一个 Router 上
func Mount(r *httpez.Router, users *UserHandler, products *ProductHandler, orders *OrderHandler) {
	users.Mount(r)
	products.Mount(r)
	orders.Mount(r)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
