package repo

import (
	"context"

	"go-gin-mock-backend/internal/domain"
)

type ProductRepo struct{ st *Store }

func NewProductRepo(st *Store) *ProductRepo { return &ProductRepo{st: st} }

func (r *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return append([]domain.Product{}, r.st.products...), nil
}

func (r *ProductRepo) FindByID(_ context.Context, id int) (domain.Product, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	for _, p := range r.st.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NotFound("product", id)
}

// Update 在锁内对副本执行 mutate，mutate 出错则原记录不变
func (r *ProductRepo) Update(_ context.Context, id int, mutate func(p *domain.Product) error) (domain.Product, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range r.st.products {
		if r.st.products[i].ID != id {
			continue
		}
		p := r.st.products[i]
		if err := mutate(&p); err != nil {
			return domain.Product{}, err
		}
		p.ID = id
		r.st.products[i] = p
		return p, nil
	}
	return domain.Product{}, domain.NotFound("product", id)
}
