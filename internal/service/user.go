package service

import (
	"context"
	"strings"

	"go-gin-mock-backend/internal/domain"
)

// 创建用户时缺省字段的固定占位值
const (
	DefaultUsername  = "newuser"
	DefaultEmail     = "newuser@example.com"
	DefaultFirstName = "New"
	DefaultLastName  = "User"
)

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(r domain.UserRepository) *UserService { return &UserService{repo: r} }

func (s *UserService) List(ctx context.Context) ([]domain.User, error) { return s.repo.List(ctx) }

func (s *UserService) Get(ctx context.Context, id int) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in domain.NewUser) (domain.User, error) {
	u := domain.User{
		Username:  orDefault(in.Username, DefaultUsername),
		Email:     orDefault(in.Email, DefaultEmail),
		FirstName: orDefault(in.FirstName, DefaultFirstName),
		LastName:  orDefault(in.LastName, DefaultLastName),
	}
	return s.repo.Create(ctx, u)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
