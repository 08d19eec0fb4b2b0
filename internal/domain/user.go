package domain

import "context"

type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// NewUser 创建用户时的可选字段，缺省值由 service 填充
type NewUser struct {
	Username  string `json:"username"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Count(ctx context.Context) int
}
