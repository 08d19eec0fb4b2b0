package handler

import (
	"context"
	"net/http"

	"go-gin-mock-backend/internal/domain"
	"go-gin-mock-backend/internal/service"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Mount(r *httpez.Router) {
	type listQ struct {
		Limit int    `form:"limit"` // <= 0 用默认值
		Q     string `form:"q"`     // 名称子串，大小写不敏感
	}
	type searchQ struct {
		Q string `form:"q"`
	}

	// --- GET /products?limit=&q= ---
	httpez.RegisterAction(r, httpez.Action[listQ, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: httpez.BindQuery,
		Handler: func(ctx context.Context, _ *httpez.Call, in *listQ) ([]domain.Product, error) {
			ps, err := h.svc.List(ctx, in.Limit, in.Q)
			return ps, mapErr(err)
		},
	})

	// --- GET /products/search?q= （字面量段，优先于 /products/:id）---
	httpez.RegisterAction(r, httpez.Action[searchQ, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/search",
		Binder: httpez.BindQuery,
		Handler: func(ctx context.Context, _ *httpez.Call, in *searchQ) ([]domain.Product, error) {
			ps, err := h.svc.Search(ctx, in.Q)
			return ps, mapErr(err)
		},
	})

	// --- GET /products/:id ---
	httpez.RegisterAction(r, httpez.Action[struct{}, domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: httpez.BindNone,
		Handler: func(ctx context.Context, call *httpez.Call, _ *struct{}) (domain.Product, error) {
			id, err := pathID(call)
			if err != nil {
				return domain.Product{}, err
			}
			p, err := h.svc.Get(ctx, id)
			return p, mapErr(err)
		},
	})

	// --- PATCH /products/:id  只合并给出的字段 ---
	httpez.RegisterAction(r, httpez.Action[domain.ProductPatch, domain.Product]{
		Method: http.MethodPatch,
		Path:   "/products/:id",
		Binder: httpez.BindJSON,
		Handler: func(ctx context.Context, call *httpez.Call, in *domain.ProductPatch) (domain.Product, error) {
			id, err := pathID(call)
			if err != nil {
				return domain.Product{}, err
			}
			p, err := h.svc.Update(ctx, id, *in)
			return p, mapErr(err)
		},
	})
}
