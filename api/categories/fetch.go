package categories

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchCategories handles GET /api/categories.
func (crm *CategoryRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetCategories(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch categories: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}
