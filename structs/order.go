package structs

import "encoding/json"

// OrderInput is the loose wire shape of an order. The same payload may carry
// external camelCase fields, storage snake_case fields, or both; the storage
// field wins when both are present.
type OrderInput struct {
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     string          `json:"createdAt"`
	Items         json.RawMessage `json:"items"`
	Total         any             `json:"total"`
	Status        string          `json:"status"`

	// Storage-shape aliases
	CustomerNameStored  string `json:"customer_name"`
	CustomerPhoneStored string `json:"customer_phone"`
	PaymentMethodStored string `json:"payment_method"`
	CreatedAtStored     string `json:"created_at"`
}

type SubmitOrderRequest struct {
	OrderData OrderInput `json:"orderData"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
