package categories

import (
	"context"

	"elsabor_server/api/middleware"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// CategoryService is the slice of the service layer these handlers need.
type CategoryService interface {
	GetCategories(ctx context.Context) ([]tables.Category, error)
	ReplaceCategories(ctx context.Context, categories []tables.Category) error
	AddCategory(ctx context.Context, category tables.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService CategoryService
	mw              *middleware.Middleware
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	categoryService CategoryService,
	mw *middleware.Middleware,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
		mw:              mw,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", crm.FetchCategories)

		// Admin-only writes
		r.Group(func(r chi.Router) {
			r.Use(crm.mw.BearerAuthMiddleware)
			r.Post("/", crm.SaveCategories)
			r.Post("/add", crm.AddCategory)
			r.Post("/delete", crm.DeleteCategory)
		})
	})
}
