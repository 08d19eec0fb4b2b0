package repo

import (
	"context"

	"go-gin-mock-backend/internal/domain"
)

type UserRepo struct{ st *Store }

func NewUserRepo(st *Store) *UserRepo { return &UserRepo{st: st} }

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return append([]domain.User{}, r.st.users...), nil
}

func (r *UserRepo) FindByID(_ context.Context, id int) (domain.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, u := range r.st.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFound("user", id)
}

// Create 忽略传入的 ID，统一分配
func (r *UserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u.ID = nextID(r.st.users, func(u domain.User) int { return u.ID })
	r.st.users = append(r.st.users, u)
	return u, nil
}

func (r *UserRepo) Count(_ context.Context) int {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return len(r.st.users)
}
