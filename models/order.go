package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled
)

// ParseOrderStatus maps a client-supplied string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// StatusPolicy lists the statuses reachable from each status. A nil policy
// allows any transition, which matches how the store is operated today
// (manual corrections by admins included).
type StatusPolicy map[OrderStatus][]OrderStatus

func (p StatusPolicy) Allows(from, to OrderStatus) bool {
	if p == nil {
		return true
	}
	for _, s := range p[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ForwardOnlyPolicy is the stricter alternative: orders only move forward
// through the fulfilment flow, cancellation is possible until shipping.
func ForwardOnlyPolicy() StatusPolicy {
	return StatusPolicy{
		OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:    {OrderStatusDelivered},
	}
}

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        string      `gorm:"index;not null" json:"user_id"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `gorm:"not null" json:"customer_email"`
	Total         float64     `gorm:"not null" json:"total"`
	Items         string      `gorm:"type:text;not null" json:"-"` // JSON snapshot of OrderLine
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderLine is one entry of the immutable snapshot stored on an order.
// Price and subtotal are frozen at purchase time and never re-read from
// the product catalog.
type OrderLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
