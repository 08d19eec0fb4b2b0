package repo

import (
	"context"

	"go-gin-mock-backend/internal/domain"
)

type OrderRepo struct{ st *Store }

func NewOrderRepo(st *Store) *OrderRepo { return &OrderRepo{st: st} }

// List status 为空时返回全部，保持插入顺序
func (r *OrderRepo) List(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.st.orders))
	for _, o := range r.st.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *OrderRepo) FindByID(_ context.Context, id int) (domain.Order, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, o := range r.st.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return domain.Order{}, domain.NotFound("order", id)
}

func (r *OrderRepo) Create(_ context.Context, o domain.Order) (domain.Order, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	o = o.Clone()
	o.ID = nextID(r.st.orders, func(o domain.Order) int { return o.ID })
	r.st.orders = append(r.st.orders, o)
	return o.Clone(), nil
}

// Update 校验与合并在同一临界区内完成；mutate 返回错误时不落库
func (r *OrderRepo) Update(_ context.Context, id int, mutate func(o *domain.Order) error) (domain.Order, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.orders {
		if r.st.orders[i].ID != id {
			continue
		}
		o := r.st.orders[i].Clone()
		if err := mutate(&o); err != nil {
			return domain.Order{}, err
		}
		o.ID = id
		r.st.orders[i] = o
		return o.Clone(), nil
	}
	return domain.Order{}, domain.NotFound("order", id)
}

func (r *OrderRepo) Count(_ context.Context) int {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return len(r.st.orders)
}
