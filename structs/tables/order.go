package tables

import (
	"encoding/json"
	"time"
)

type Order struct {
	tableName struct{} `bun:"table:orders,alias:o"`
	ID        string   `bun:"id,pk" json:"id"`

	// Customer data
	CustomerName  string `bun:"customer_name,notnull" json:"customerName"`
	CustomerPhone string `bun:"customer_phone" json:"customerPhone"`

	// Order data
	Date          string          `bun:"date" json:"date"`
	Time          string          `bun:"time" json:"time"`
	Items         json.RawMessage `bun:"items,type:jsonb" json:"items"`
	Total         float64         `bun:"total" json:"total"`
	PaymentMethod string          `bun:"payment_method" json:"paymentMethod"`
	Status        OrderStatus     `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt     time.Time       `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     *time.Time      `bun:"updated_at,nullzero" json:"updatedAt,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)
