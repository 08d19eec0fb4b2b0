package domain

import (
	"context"
	"encoding/json"
	"strings"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// InStock 由库存推导，不单独存储
func (p Product) InStock() bool { return p.Stock > 0 }

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		InStock bool `json:"inStock"`
	}{plain(p), p.InStock()})
}

// MatchName 名称大小写不敏感的子串匹配；空串匹配全部
func (p Product) MatchName(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(q))
}

// ProductPatch 只合并显式给出的字段
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

func (p ProductPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return Invalid("name must not be empty")
	}
	if p.Price != nil && *p.Price <= 0 {
		return Invalid("price must be greater than 0")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return Invalid("stock must not be negative")
	}
	return nil
}

func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
}

type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int) (Product, error)
	Update(ctx context.Context, id int, mutate func(p *Product) error) (Product, error)
}
