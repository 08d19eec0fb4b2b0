package service

import (
	"context"

	"go-gin-mock-backend/internal/domain"
)

const DefaultProductLimit = 10

type ProductService struct {
	repo         domain.ProductRepository
	defaultLimit int
}

func NewProductService(r domain.ProductRepository, defaultLimit int) *ProductService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultProductLimit
	}
	return &ProductService{repo: r, defaultLimit: defaultLimit}
}

// List 先按名称过滤，再截取前 limit 条；limit <= 0 用默认值
func (s *ProductService) List(ctx context.Context, limit int, q string) ([]domain.Product, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	out, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Search 与 List 相同的匹配规则，不截断
func (s *ProductService) Search(ctx context.Context, q string) ([]domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.MatchName(q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update 不存在优先报 NotFound；校验失败时记录保持原样
func (s *ProductService) Update(ctx context.Context, id int, patch domain.ProductPatch) (domain.Product, error) {
	return s.repo.Update(ctx, id, func(p *domain.Product) error {
		if err := patch.Validate(); err != nil {
			return err
		}
		patch.Apply(p)
		return nil
	})
}
