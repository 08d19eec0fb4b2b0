package handler

import (
	"context"
	"net/http"

	"go-gin-mock-backend/internal/domain"
	"go-gin-mock-backend/internal/service"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Mount(r *httpez.Router) {
	// --- GET /users ---
	httpez.RegisterAction(r, httpez.Action[struct{}, []domain.User]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindNone,
		Handler: func(ctx context.Context, _ *httpez.Call, _ *struct{}) ([]domain.User, error) {
			us, err := h.svc.List(ctx)
			return us, mapErr(err)
		},
	})

	// --- GET /users/:id ---
	httpez.RegisterAction(r, httpez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(ctx context.Context, call *httpez.Call, _ *struct{}) (domain.User, error) {
			id, err := pathID(call)
			if err != nil {
				return domain.User{}, err
			}
			u, err := h.svc.Get(ctx, id)
			return u, mapErr(err)
		},
	})

	// --- POST /users ---
	httpez.RegisterAction(r, httpez.Action[domain.NewUser, domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(ctx context.Context, _ *httpez.Call, in *domain.NewUser) (domain.User, error) {
			u, err := h.svc.Create(ctx, *in)
			return u, mapErr(err)
		},
	})
}
