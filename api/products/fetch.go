package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchProducts handles GET /api/products. The service already degrades to
// sample data when the table is missing or empty, so this never 404s.
func (prm *ProductRoutesManager) FetchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.GetProducts(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch products: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
		}),
		gecho.Send(),
	)
}
