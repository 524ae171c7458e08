package products

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

type stubProductService struct {
	getProducts     func(ctx context.Context) ([]tables.Product, error)
	replaceProducts func(ctx context.Context, products []tables.Product) error
}

func (s *stubProductService) GetProducts(ctx context.Context) ([]tables.Product, error) {
	if s.getProducts != nil {
		return s.getProducts(ctx)
	}
	return nil, nil
}

func (s *stubProductService) ReplaceProducts(ctx context.Context, products []tables.Product) error {
	if s.replaceProducts != nil {
		return s.replaceProducts(ctx, products)
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

func testMiddleware() *middleware.Middleware {
	cfg := &structs.Config{
		RateLimit: &structs.RateLimitConfig{},
		Cache:     &structs.CacheConfig{},
	}
	return middleware.NewMiddleware(cfg, gecho.NewDefaultLogger(), stubVerifier{})
}

func newProductRouter(svc ProductService) chi.Router {
	r := chi.NewRouter()
	NewProductRoutesManager(gecho.NewDefaultLogger(), svc, testMiddleware()).RegisterRoutes(r)
	return r
}

func TestFetchProducts(t *testing.T) {
	svc := &stubProductService{
		getProducts: func(ctx context.Context) ([]tables.Product, error) {
			return []tables.Product{{ID: "p-1", Title: "Empanadas"}}, nil
		},
	}

	resp := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/products", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Empanadas") {
		t.Fatalf("product missing from response: %s", resp.Body.String())
	}
}

func TestFetchProductsStoreError(t *testing.T) {
	svc := &stubProductService{
		getProducts: func(ctx context.Context) ([]tables.Product, error) {
			return nil, context.DeadlineExceeded
		},
	}

	resp := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/products", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Failed to fetch products") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestSaveProductsRequiresToken(t *testing.T) {
	called := false
	svc := &stubProductService{
		replaceProducts: func(ctx context.Context, products []tables.Product) error {
			called = true
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"products": []}`))
	resp := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if called {
		t.Fatal("service must not run without a token")
	}
}

func TestSaveProductsNormalizesLegacyColors(t *testing.T) {
	var saved []tables.Product
	svc := &stubProductService{
		replaceProducts: func(ctx context.Context, products []tables.Product) error {
			saved = products
			return nil
		},
	}

	body := `{"products": [{"title": "Empanadas", "colors": [{"name": "Carne", "sizes": [{"stock": 3}, {"stock": 2}]}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+lib.AdminToken)
	resp := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(saved) != 1 || len(saved[0].Flavors) != 1 {
		t.Fatalf("unexpected saved products: %+v", saved)
	}
	if saved[0].Flavors[0].Quantity != 5 {
		t.Fatalf("expected summed quantity 5 got %d", saved[0].Flavors[0].Quantity)
	}
}

func TestSaveProductsEmptySetAllowed(t *testing.T) {
	var saved []tables.Product
	svc := &stubProductService{
		replaceProducts: func(ctx context.Context, products []tables.Product) error {
			saved = products
			return nil
		},
	}

	// an empty (or unusable) payload clears the product set
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"products": []}`))
	req.Header.Set("Authorization", "Bearer "+lib.AdminToken)
	resp := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if saved == nil || len(saved) != 0 {
		t.Fatalf("expected empty replace, got %+v", saved)
	}
}
