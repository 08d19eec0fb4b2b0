package service

import (
	"context"
	"time"

	"go-gin-mock-backend/internal/core/metrics"
	"go-gin-mock-backend/internal/domain"
)

type OrderOptions struct {
	// DefaultUnitPrice 调用方未给 unitPrice 时使用，默认 0
	DefaultUnitPrice float64
	// StrictTransitions 开启后只允许状态向前流转
	StrictTransitions bool
	Now               func() time.Time
}

type OrderService struct {
	repo domain.OrderRepository
	opt  OrderOptions
}

func NewOrderService(r domain.OrderRepository, opt OrderOptions) *OrderService {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &OrderService{repo: r, opt: opt}
}

// List status 为空返回全部订单
func (s *OrderService) List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return s.repo.List(ctx, status)
}

func (s *OrderService) Get(ctx context.Context, id int) (domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, in domain.NewOrder) (domain.Order, error) {
	items, err := s.validateNew(in)
	if err != nil {
		return domain.Order{}, err
	}
	now := s.opt.Now().UTC()
	o, err := s.repo.Create(ctx, domain.Order{
		UserID:    in.UserID,
		Items:     items,
		Total:     domain.OrderTotal(items),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.Order{}, err
	}
	metrics.OrdersCreated.Inc()
	return o, nil
}

func (s *OrderService) validateNew(in domain.NewOrder) ([]domain.OrderItem, error) {
	if in.UserID <= 0 {
		return nil, domain.Invalid("userId is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items must not be empty")
	}
	items := make([]domain.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.Invalid("items[%d].quantity must be greater than 0", i)
		}
		price := s.opt.DefaultUnitPrice
		if it.UnitPrice != nil {
			price = *it.UnitPrice
		}
		if price < 0 {
			return nil, domain.Invalid("items[%d].unitPrice must not be negative", i)
		}
		items = append(items, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: price})
	}
	return items, nil
}

// Update 只合并 patch 中给出的字段，total 不重算
func (s *OrderService) Update(ctx context.Context, id int, patch domain.OrderPatch) (domain.Order, error) {
	var from domain.OrderStatus
	o, err := s.repo.Update(ctx, id, func(o *domain.Order) error {
		if err := patch.Validate(); err != nil {
			return err
		}
		if s.opt.StrictTransitions && patch.Status != nil && !o.Status.CanTransitionTo(*patch.Status) {
			return domain.Invalid("cannot move order from %s to %s", o.Status, *patch.Status)
		}
		from = o.Status
		patch.Apply(o)
		o.UpdatedAt = s.opt.Now().UTC()
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	if from != o.Status {
		metrics.OrderStatusChanges.WithLabelValues(string(from), string(o.Status)).Inc()
	}
	return o, nil
}
