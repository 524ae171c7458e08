package services

import (
	"elsabor_server/database"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	HealthService   *HealthService
	ProductService  *ProductService
	CategoryService *CategoryService
	OrderService    *OrderService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(logger, db)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db)
	categoryService := NewCategoryService(logger, db)
	orderService := NewOrderService(logger, db, emailService)

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		HealthService:   healthService,
		ProductService:  productService,
		CategoryService: categoryService,
		OrderService:    orderService,
	}
}
