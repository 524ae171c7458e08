package services

import (
	"context"
	"fmt"
	"time"

	"elsabor_server/database"
	"elsabor_server/handling"
	"elsabor_server/structs"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type OrderService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewOrderService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *OrderService {
	return &OrderService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// GetOrders retrieves every order, newest created first. A missing orders
// table degrades to an empty list instead of an error.
func (os *OrderService) GetOrders(ctx context.Context) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		if database.IsMissingTable(err) {
			os.logger.Warn("Orders table missing, returning empty list", gecho.Field("error", err))
			return []tables.Order{}, nil
		}
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return handling.NormalizeOrderRows(orders), nil
}

// SubmitOrder normalizes and stores a new order. The id and creation time are
// assigned here, and a notification email goes out asynchronously; email
// failures never affect the stored order or the response.
func (os *OrderService) SubmitOrder(ctx context.Context, input structs.OrderInput) (*tables.Order, error) {
	order := handling.NormalizeOrder(input)
	order.ID = uuid.NewString()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	if _, err := database.Query[tables.Order](os.db).Insert(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	os.logger.Info("Order submitted",
		gecho.Field("order_id", order.ID),
		gecho.Field("customer", order.CustomerName),
		gecho.Field("total", order.Total),
	)

	go func(o tables.Order) {
		if err := os.emailService.SendOrderNotification(&o); err != nil {
			os.logger.Warn("Failed to send order notification", gecho.Field("error", err), gecho.Field("order_id", o.ID))
		}
	}(order)

	return &order, nil
}

// UpdateOrderStatus sets the status and the server-assigned update timestamp
// on one order. Orders are never deleted through this layer.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	updated, err := database.UpdateByID[tables.Order](os.db, ctx, orderID, map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderID),
		gecho.Field("status", status),
		gecho.Field("rows", updated),
	)
	return nil
}
