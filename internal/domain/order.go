package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// 订单状态闭集：pending 为初始态，completed / cancelled 为终态
const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool { return s == StatusCompleted || s == StatusCancelled }

// CanTransitionTo 只允许向前流转；同状态视为 no-op
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCompleted || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type OrderItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Clone 深拷贝，避免调用方改到 store 内部的 items
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}

// OrderTotal Σ quantity * unitPrice，用 decimal 避免浮点累加误差
func OrderTotal(items []OrderItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.InexactFloat64()
}

// NewOrderItem unitPrice 可缺省（nil），由 service 用默认单价补齐
type NewOrderItem struct {
	ProductID int      `json:"productId"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
}

type NewOrder struct {
	UserID int            `json:"userId"`
	Items  []NewOrderItem `json:"items"`
}

// OrderPatch items / total 创建后不可变，这里不接收
type OrderPatch struct {
	Status *OrderStatus `json:"status"`
	UserID *int         `json:"userId"`
}

func (p OrderPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return Invalid("status %q is not one of %v", *p.Status, OrderStatuses)
	}
	if p.UserID != nil && *p.UserID <= 0 {
		return Invalid("userId must be a positive integer")
	}
	return nil
}

func (p OrderPatch) Apply(dst *Order) {
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.UserID != nil {
		dst.UserID = *p.UserID
	}
}

type OrderRepository interface {
	List(ctx context.Context, status OrderStatus) ([]Order, error)
	FindByID(ctx context.Context, id int) (Order, error)
	Create(ctx context.Context, o Order) (Order, error)
	Update(ctx context.Context, id int, mutate func(o *Order) error) (Order, error)
	Count(ctx context.Context) int
}
