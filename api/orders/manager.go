package orders

import (
	"context"

	"elsabor_server/structs"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// OrderService is the slice of the service layer these handlers need.
type OrderService interface {
	GetOrders(ctx context.Context) ([]tables.Order, error)
	SubmitOrder(ctx context.Context, input structs.OrderInput) (*tables.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService OrderService
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService OrderService) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orm.FetchOrders)
		r.Post("/", orm.SubmitOrder)
		r.Post("/update-status", orm.UpdateOrderStatus)
	})
}
