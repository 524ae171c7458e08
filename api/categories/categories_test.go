package categories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elsabor_server/api/middleware"
	"elsabor_server/lib"
	"elsabor_server/structs"
	"elsabor_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type stubCategoryService struct {
	getCategories     func(ctx context.Context) ([]tables.Category, error)
	replaceCategories func(ctx context.Context, categories []tables.Category) error
	addCategory       func(ctx context.Context, category tables.Category) error
	deleteCategory    func(ctx context.Context, categoryID string) error
}

func (s *stubCategoryService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	if s.getCategories != nil {
		return s.getCategories(ctx)
	}
	return nil, nil
}

func (s *stubCategoryService) ReplaceCategories(ctx context.Context, categories []tables.Category) error {
	if s.replaceCategories != nil {
		return s.replaceCategories(ctx, categories)
	}
	return nil
}

func (s *stubCategoryService) AddCategory(ctx context.Context, category tables.Category) error {
	if s.addCategory != nil {
		return s.addCategory(ctx, category)
	}
	return nil
}

func (s *stubCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if s.deleteCategory != nil {
		return s.deleteCategory(ctx, categoryID)
	}
	return nil
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*structs.AdminUser, bool) {
	if !lib.VerifyToken(token) {
		return nil, false
	}
	return &structs.AdminUser{Username: "admin", Role: "admin"}, true
}

func newCategoryRouter(svc CategoryService) chi.Router {
	cfg := &structs.Config{
		RateLimit: &structs.RateLimitConfig{},
		Cache:     &structs.CacheConfig{},
	}
	mw := middleware.NewMiddleware(cfg, gecho.NewDefaultLogger(), stubVerifier{})

	r := chi.NewRouter()
	NewCategoryRoutesManager(gecho.NewDefaultLogger(), svc, mw).RegisterRoutes(r)
	return r
}

func adminPost(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+lib.AdminToken)
	return req
}

func TestFetchCategories(t *testing.T) {
	svc := &stubCategoryService{
		getCategories: func(ctx context.Context) ([]tables.Category, error) {
			return []tables.Category{{ID: "postres", Name: "Postres"}}, nil
		},
	}

	resp := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/categories", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "postres") {
		t.Fatalf("category missing from response: %s", resp.Body.String())
	}
}

func TestSaveCategoriesRequiresToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"categories": ["postres"]}`))
	resp := httptest.NewRecorder()
	newCategoryRouter(&stubCategoryService{}).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestSaveCategoriesRejectsEmptySet(t *testing.T) {
	called := false
	svc := &stubCategoryService{
		replaceCategories: func(ctx context.Context, categories []tables.Category) error {
			called = true
			return nil
		},
	}

	for _, body := range []string{
		`{"categories": []}`,
		`{"categories": [null, {"name": "sin id"}]}`,
		`{"categories": {"id": "x"}}`,
	} {
		resp := httptest.NewRecorder()
		newCategoryRouter(svc).ServeHTTP(resp, adminPost("/categories", body))

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", body, resp.Code)
		}
	}
	if called {
		t.Fatal("service must not run for an empty category set")
	}
}

func TestSaveCategoriesSuccess(t *testing.T) {
	var saved []tables.Category
	svc := &stubCategoryService{
		replaceCategories: func(ctx context.Context, categories []tables.Category) error {
			saved = categories
			return nil
		},
	}

	resp := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(resp, adminPost("/categories", `{"categories": ["postres", {"id": "bebidas"}]}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(saved) != 2 || saved[0].Name != "Postres" || saved[1].ID != "bebidas" {
		t.Fatalf("unexpected saved categories: %+v", saved)
	}
}

func TestAddCategory(t *testing.T) {
	var added tables.Category
	svc := &stubCategoryService{
		addCategory: func(ctx context.Context, category tables.Category) error {
			added = category
			return nil
		},
	}

	resp := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(resp, adminPost("/categories/add", `{"category": "sopas"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if added.ID != "sopas" || added.Name != "Sopas" {
		t.Fatalf("unexpected category: %+v", added)
	}
}

func TestAddCategoryDefaultsMissingName(t *testing.T) {
	var added tables.Category
	svc := &stubCategoryService{
		addCategory: func(ctx context.Context, category tables.Category) error {
			added = category
			return nil
		},
	}

	// an object with an id but no name is accepted, with the name derived
	// from the id rather than rejected
	resp := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(resp, adminPost("/categories/add", `{"category": {"id": "bebidas"}}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if added.ID != "bebidas" || added.Name != "Bebidas" || added.Description != "Category of bebidas" {
		t.Fatalf("unexpected category: %+v", added)
	}
}

func TestAddCategoryUnusablePayload(t *testing.T) {
	for _, body := range []string{
		`{"category": null}`,
		`{"category": ""}`,
		`{"category": {"name": "sin id"}}`,
	} {
		resp := httptest.NewRecorder()
		newCategoryRouter(&stubCategoryService{}).ServeHTTP(resp, adminPost("/categories/add", body))

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 got %d", body, resp.Code)
		}
	}
}

func TestDeleteCategory(t *testing.T) {
	var deleted string
	svc := &stubCategoryService{
		deleteCategory: func(ctx context.Context, categoryID string) error {
			deleted = categoryID
			return nil
		},
	}

	resp := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(resp, adminPost("/categories/delete", `{"categoryId": "postres"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if deleted != "postres" {
		t.Fatalf("unexpected category id %q", deleted)
	}
}

func TestDeleteCategoryValidation(t *testing.T) {
	resp := httptest.NewRecorder()
	newCategoryRouter(&stubCategoryService{}).ServeHTTP(resp, adminPost("/categories/delete", `{"categoryId": ""}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
