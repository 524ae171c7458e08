package services

import (
	"context"
	"fmt"

	"elsabor_server/database"
	"elsabor_server/handling"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductService(logger *gecho.Logger, db *database.DB) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
	}
}

// GetProducts retrieves every product ordered by display order, re-normalizing
// flavors on the way out. A missing or empty products table degrades to the
// sample menu instead of an error.
func (ps *ProductService) GetProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		OrderBy("display_order", database.ASC).
		All(ctx)
	if err != nil {
		if database.IsMissingTable(err) {
			ps.logger.Warn("Products table missing, serving sample data", gecho.Field("error", err))
			return SampleProducts(), nil
		}
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if len(products) == 0 {
		return SampleProducts(), nil
	}

	return handling.NormalizeProductRows(products), nil
}

// ReplaceProducts replaces the whole product set: delete every row, then bulk
// insert the supplied set with fresh store-assigned ids. The two steps are not
// wrapped in a transaction; a concurrent reader can observe the empty window.
func (ps *ProductService) ReplaceProducts(ctx context.Context, products []tables.Product) error {
	deleted, err := database.Query[tables.Product](ps.db).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	if len(products) == 0 {
		ps.logger.Info("Product set replaced with empty set", gecho.Field("deleted", deleted))
		return nil
	}

	for i := range products {
		products[i].ID = uuid.NewString()
	}

	if _, err := database.Query[tables.Product](ps.db).InsertMany(ctx, products); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}

	ps.logger.Info("Product set replaced",
		gecho.Field("deleted", deleted),
		gecho.Field("inserted", len(products)),
	)
	return nil
}
