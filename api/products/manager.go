package products

import (
	"context"

	"elsabor_server/api/middleware"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ProductService is the slice of the service layer these handlers need.
type ProductService interface {
	GetProducts(ctx context.Context) ([]tables.Product, error)
	ReplaceProducts(ctx context.Context, products []tables.Product) error
}

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", prm.FetchProducts)

		// Admin-only bulk replace
		r.Group(func(r chi.Router) {
			r.Use(prm.mw.BearerAuthMiddleware)
			r.Post("/", prm.SaveProducts)
		})
	})
}
