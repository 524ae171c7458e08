package categories

import (
	"net/http"

	"elsabor_server/handling"
	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// SaveCategories handles POST /api/categories: every category not in the
// supplied set is deleted, the supplied set is upserted by id.
func (crm *CategoryRoutesManager) SaveCategories(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SaveCategoriesRequest](r)
	if err != nil {
		crm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category data and try again"), gecho.Send())
		return
	}

	categories := handling.NormalizeCategories(body.Categories)
	if len(categories) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("No valid categories provided"), gecho.Send())
		return
	}

	if err := crm.categoryService.ReplaceCategories(r.Context(), categories); err != nil {
		crm.logger.Error("Failed to save categories", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to save categories: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Categories saved successfully"),
		gecho.WithData(map[string]any{
			"count": len(categories),
		}),
		gecho.Send(),
	)
}
