package api

import (
	"net/http"
	"time"

	"elsabor_server/api/auth"
	"elsabor_server/api/categories"
	"elsabor_server/api/health"
	"elsabor_server/api/middleware"
	"elsabor_server/api/orders"
	"elsabor_server/api/products"
	"elsabor_server/config"
	"elsabor_server/database"
	"elsabor_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// db
	db := database.GetInstance()

	// config
	cfg := config.GetConfig()

	// services
	sm := services.NewServiceManager(standardLogger, cfg, db)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.AuthService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())
	r.Use(mw.RateLimitMiddleware())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	rm := NewRouterManager(
		products.NewProductRoutesManager(standardLogger, sm.ProductService, mw),
		categories.NewCategoryRoutesManager(standardLogger, sm.CategoryService, mw),
		orders.NewOrderRoutesManager(standardLogger, sm.OrderService),
		auth.NewAuthRoutesManager(standardLogger, sm.AuthService),
		health.NewHealthRoutesManager(standardLogger, sm.HealthService),
	)

	r.Route("/api", func(r chi.Router) {
		rm.RegisterRoutes(r)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"message":   "El Sabor API",
				"status":    "running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			}),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
