package handling

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"elsabor_server/structs"
	"elsabor_server/structs/tables"
)

var emptyItems = json.RawMessage("[]")

// NormalizeOrder maps a loose order payload to the external shape. Payloads
// may carry storage snake_case fields, external camelCase fields, or both;
// the storage field wins when both are present. Total is coerced to a float
// (0 on failure) and items defaults to an empty array.
func NormalizeOrder(in structs.OrderInput) tables.Order {
	order := tables.Order{
		Date:          in.Date,
		Time:          in.Time,
		CustomerName:  pick(in.CustomerNameStored, in.CustomerName),
		CustomerPhone: pick(in.CustomerPhoneStored, in.CustomerPhone),
		PaymentMethod: pick(in.PaymentMethodStored, in.PaymentMethod),
		Items:         normalizeItems(in.Items),
		Total:         CoerceFloat(in.Total),
		Status:        tables.OrderStatus(in.Status),
	}

	if order.Status == "" {
		order.Status = tables.OrderStatusPending
	}

	if ts := pick(in.CreatedAtStored, in.CreatedAt); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			order.CreatedAt = t
		}
	}

	return order
}

// NormalizeOrders maps a loose array payload to order records; non-array
// input yields an empty set, and an undecodable element is skipped rather
// than discarding the rest.
func NormalizeOrders(raw json.RawMessage) []tables.Order {
	var elements []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return []tables.Order{}
	}

	orders := make([]tables.Order, 0, len(elements))
	for _, el := range elements {
		var in structs.OrderInput
		if err := json.Unmarshal(el, &in); err != nil {
			continue
		}
		orders = append(orders, NormalizeOrder(in))
	}
	return orders
}

// NormalizeOrderRows re-normalizes rows coming back from the store before
// they are shaped into a response.
func NormalizeOrderRows(orders []tables.Order) []tables.Order {
	for i := range orders {
		orders[i].Items = normalizeItems(orders[i].Items)
		if orders[i].Status == "" {
			orders[i].Status = tables.OrderStatusPending
		}
	}
	return orders
}

// CoerceFloat converts a decoded JSON value to a float64, defaulting to 0
// when the value cannot be parsed as a number.
func CoerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

func normalizeItems(raw json.RawMessage) json.RawMessage {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return emptyItems
	}
	return raw
}

func pick(storage, external string) string {
	if storage != "" {
		return storage
	}
	return external
}
