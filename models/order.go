package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Order is created only at checkout and is immutable afterwards except for the
// one-directional status transition.
type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference   string      `gorm:"uniqueIndex;size:64" json:"reference"`
	UserID      uint        `gorm:"index;not null" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem is a frozen copy of a cart line at checkout time.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	VariantID uint    `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// TransitionTo advances the status along Pending -> Shipped -> Delivered.
// Any other move is rejected.
func (o *Order) TransitionTo(next OrderStatus) error {
	allowed := map[OrderStatus]OrderStatus{
		OrderStatusPending: OrderStatusShipped,
		OrderStatusShipped: OrderStatusDelivered,
	}
	if allowed[o.Status] != next {
		return fmt.Errorf("invalid order status transition: %s -> %s", o.Status, next)
	}
	o.Status = next
	return nil
}
