// Package repo 内存存储：每个进程 / 每个测试各自构造一个 Store，没有全局单例。
package repo

import (
	"sync"
	"time"

	"go-gin-mock-backend/internal/domain"
)

// Seed 初始数据，Reset 时按它恢复
type Seed struct {
	Users    []domain.User
	Products []domain.Product
	Orders   []domain.Order
}

func (s Seed) clone() Seed {
	out := Seed{
		Users:    append([]domain.User(nil), s.Users...),
		Products: append([]domain.Product(nil), s.Products...),
		Orders:   make([]domain.Order, 0, len(s.Orders)),
	}
	for _, o := range s.Orders {
		out.Orders = append(out.Orders, o.Clone())
	}
	return out
}

type Store struct {
	mu   sync.RWMutex
	seed Seed
	now  func() time.Time

	users    []domain.User
	products []domain.Product
	orders   []domain.Order
}

type Option func(*Store)

// WithClock 测试里固定时间用
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func NewStore(seed Seed, opts ...Option) *Store {
	s := &Store{seed: seed.clone(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	s.Reset()
	return s
}

// Reset 丢弃所有运行期改动，恢复到种子数据
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.seed.clone()
	now := s.now().UTC()
	for i := range data.Orders {
		if data.Orders[i].Status == "" {
			data.Orders[i].Status = domain.StatusPending
		}
		if data.Orders[i].Total == 0 {
			data.Orders[i].Total = domain.OrderTotal(data.Orders[i].Items)
		}
		if data.Orders[i].CreatedAt.IsZero() {
			data.Orders[i].CreatedAt = now
		}
		if data.Orders[i].UpdatedAt.IsZero() {
			data.Orders[i].UpdatedAt = data.Orders[i].CreatedAt
		}
	}
	s.users, s.products, s.orders = data.Users, data.Products, data.Orders
}

// Snapshot 当前全部数据的深拷贝
func (s *Store) Snapshot() Seed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Seed{Users: s.users, Products: s.products, Orders: s.orders}.clone()
}

func (s *Store) Now() time.Time { return s.now().UTC() }

// nextID = 现有最大 id + 1，空集合从 1 开始
func nextID[T any](items []T, id func(T) int) int {
	top := 0
	for _, it := range items {
		if v := id(it); v > top {
			top = v
		}
	}
	return top + 1
}
