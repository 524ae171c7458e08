package api

import (
	"elsabor_server/api/auth"
	"elsabor_server/api/categories"
	"elsabor_server/api/health"
	"elsabor_server/api/orders"
	"elsabor_server/api/products"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	authRoutes     *auth.AuthRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	productRoutes *products.ProductRoutesManager,
	categoryRoutes *categories.CategoryRoutesManager,
	orderRoutes *orders.OrderRoutesManager,
	authRoutes *auth.AuthRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes:  productRoutes,
		categoryRoutes: categoryRoutes,
		orderRoutes:    orderRoutes,
		authRoutes:     authRoutes,
		healthRoutes:   healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
