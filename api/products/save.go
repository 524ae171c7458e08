package products

import (
	"net/http"

	"elsabor_server/handling"
	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// SaveProducts handles POST /api/products: the whole product set is replaced
// by the normalized payload. There is no per-product update endpoint.
func (prm *ProductRoutesManager) SaveProducts(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SaveProductsRequest](r)
	if err != nil {
		prm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product data and try again"), gecho.Send())
		return
	}

	products := handling.NormalizeProducts(body.Products)

	if err := prm.productService.ReplaceProducts(r.Context(), products); err != nil {
		prm.logger.Error("Failed to save products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to save products: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Products saved successfully"),
		gecho.WithData(map[string]any{
			"count": len(products),
		}),
		gecho.Send(),
	)
}
