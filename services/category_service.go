package services

import (
	"context"
	"fmt"

	"elsabor_server/database"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// DefaultCategoryID receives every product orphaned by a category delete.
const DefaultCategoryID = "default"

// categoryStore is the slice of the table store the category service needs.
type categoryStore interface {
	All(ctx context.Context) ([]tables.Category, error)
	DeleteNotIn(ctx context.Context, ids []any) (int, error)
	UpsertMany(ctx context.Context, categories []tables.Category) error
	UpsertOne(ctx context.Context, category *tables.Category) error
	DeleteByID(ctx context.Context, id string) (int, error)
	ReassignProducts(ctx context.Context, fromCategory, toCategory string) (int, error)
}

type CategoryService struct {
	logger *gecho.Logger
	store  categoryStore
}

func NewCategoryService(logger *gecho.Logger, db *database.DB) *CategoryService {
	return &CategoryService{
		logger: logger,
		store:  &bunCategoryStore{db: db},
	}
}

// GetCategories retrieves every category. A missing or empty categories table
// degrades to the sample set instead of an error.
func (cs *CategoryService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := cs.store.All(ctx)
	if err != nil {
		if database.IsMissingTable(err) {
			cs.logger.Warn("Categories table missing, serving sample data", gecho.Field("error", err))
			return SampleCategories(), nil
		}
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	if len(categories) == 0 {
		return SampleCategories(), nil
	}

	return categories, nil
}

// ReplaceCategories replaces the category set: delete every row whose id is
// not in the supplied set, then upsert the supplied set by id. Ids never pass
// through string interpolation; the NOT IN filter is parameterized.
func (cs *CategoryService) ReplaceCategories(ctx context.Context, categories []tables.Category) error {
	ids := make([]any, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	deleted, err := cs.store.DeleteNotIn(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to delete absent categories: %w", err)
	}

	if err := cs.store.UpsertMany(ctx, categories); err != nil {
		return fmt.Errorf("failed to upsert categories: %w", err)
	}

	cs.logger.Info("Category set replaced",
		gecho.Field("deleted", deleted),
		gecho.Field("upserted", len(categories)),
	)
	return nil
}

// AddCategory inserts or updates a single category by id.
func (cs *CategoryService) AddCategory(ctx context.Context, category tables.Category) error {
	if err := cs.store.UpsertOne(ctx, &category); err != nil {
		return fmt.Errorf("failed to upsert category: %w", err)
	}
	return nil
}

// DeleteCategory removes one category. Products still referencing it are
// reassigned to the default category before the row is deleted, so the
// reassignment survives even if the delete itself fails.
func (cs *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	reassigned, err := cs.store.ReassignProducts(ctx, categoryID, DefaultCategoryID)
	if err != nil && !database.IsMissingTable(err) {
		return fmt.Errorf("failed to reassign products: %w", err)
	}

	if _, err := cs.store.DeleteByID(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	cs.logger.Info("Category deleted",
		gecho.Field("category_id", categoryID),
		gecho.Field("reassigned_products", reassigned),
	)
	return nil
}

// bunCategoryStore backs categoryStore with the table-query layer.
type bunCategoryStore struct {
	db *database.DB
}

func (s *bunCategoryStore) All(ctx context.Context) ([]tables.Category, error) {
	return database.Query[tables.Category](s.db).
		OrderBy("id", database.ASC).
		All(ctx)
}

func (s *bunCategoryStore) DeleteNotIn(ctx context.Context, ids []any) (int, error) {
	return database.Query[tables.Category](s.db).
		WhereNotIn("id", ids).
		Delete(ctx)
}

func (s *bunCategoryStore) UpsertMany(ctx context.Context, categories []tables.Category) error {
	_, err := database.BulkUpsert(s.db, ctx, categories, "id", "name", "description")
	return err
}

func (s *bunCategoryStore) UpsertOne(ctx context.Context, category *tables.Category) error {
	_, err := database.Upsert(s.db, ctx, category, "id", "name", "description")
	return err
}

func (s *bunCategoryStore) DeleteByID(ctx context.Context, id string) (int, error) {
	return database.Query[tables.Category](s.db).
		Where("id", id).
		Delete(ctx)
}

func (s *bunCategoryStore) ReassignProducts(ctx context.Context, fromCategory, toCategory string) (int, error) {
	return database.Query[tables.Product](s.db).
		Where("category", fromCategory).
		Update(ctx, map[string]any{"category": toCategory})
}
