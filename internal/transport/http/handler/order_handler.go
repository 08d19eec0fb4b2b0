package handler

import (
	"context"
	"net/http"

	"go-gin-mock-backend/internal/domain"
	"go-gin-mock-backend/internal/service"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) Mount(r *httpez.Router) {
	type listQ struct {
		Status domain.OrderStatus `form:"status"`
	}

	// --- GET /orders?status= ---
	httpez.RegisterAction(r, httpez.Action[listQ, []domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: httpez.BindQuery,
		Handler: func(ctx context.Context, _ *httpez.Call, in *listQ) ([]domain.Order, error) {
			orders, err := h.svc.List(ctx, in.Status)
			return orders, mapErr(err)
		},
	})

	// --- GET /orders/:id ---
	httpez.RegisterAction(r, httpez.Action[struct{}, domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders/:id",
		Binder: httpez.BindNone,
		Handler: func(ctx context.Context, call *httpez.Call, _ *struct{}) (domain.Order, error) {
			id, err := pathID(call)
			if err != nil {
				return domain.Order{}, err
			}
			o, err := h.svc.Get(ctx, id)
			return o, mapErr(err)
		},
	})

	// --- POST /orders ---
	httpez.RegisterAction(r, httpez.Action[domain.NewOrder, domain.Order]{
		Method: http.MethodPost,
		Path:   "/orders",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(ctx context.Context, _ *httpez.Call, in *domain.NewOrder) (domain.Order, error) {
			o, err := h.svc.Create(ctx, *in)
			return o, mapErr(err)
		},
	})

	// --- PUT / PATCH /orders/:id  两者语义相同：部分合并 ---
	update := func(ctx context.Context, call *httpez.Call, in *domain.OrderPatch) (domain.Order, error) {
		id, err := pathID(call)
		if err != nil {
			return domain.Order{}, err
		}
		o, err := h.svc.Update(ctx, id, *in)
		return o, mapErr(err)
	}
	for _, m := range []string{http.MethodPut, http.MethodPatch} {
		httpez.RegisterAction(r, httpez.Action[domain.OrderPatch, domain.Order]{
			Method:  m,
			Path:    "/orders/:id",
			Binder:  httpez.BindJSON,
			Handler: update,
		})
	}
}
